// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"

	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/logging"
)

// TransactionalCache holds tag invalidations issued inside a request transaction until it
// commits, so a concurrent reader cannot refill the cache with rows that are not visible yet.
// Invalidations of a rolled back transaction are dropped.
type TransactionalCache struct {
	CacheInterface

	logger logging.LoggerInterface
}

func (c *TransactionalCache) InvalidateTag(ctx context.Context, tag string) error {
	var err error

	deferred := db.AfterCommit(ctx, func() {
		err = c.CacheInterface.InvalidateTag(context.WithoutCancel(ctx), tag)
		if err != nil {
			c.logger.Errorf("failed to invalidate tag %s after commit: %v", tag, err)
		}
	})

	if deferred {
		return nil
	}

	return err
}

func NewTransactionalCache(c CacheInterface, logger logging.LoggerInterface) *TransactionalCache {
	return &TransactionalCache{CacheInterface: c, logger: logger}
}
