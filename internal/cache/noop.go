// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
)

type NoopCache struct{}

func (c *NoopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (c *NoopCache) Set(context.Context, string, []byte, ...string) error { return nil }

func (c *NoopCache) InvalidateTag(context.Context, string) error { return nil }

func (c *NoopCache) Close() error { return nil }

func NewNoopCache() *NoopCache {
	return new(NoopCache)
}
