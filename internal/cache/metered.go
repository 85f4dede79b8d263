// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"

	"github.com/canonical/workspace-service/internal/monitoring"
)

// MeteredCache counts hits and misses of the wrapped backend
type MeteredCache struct {
	CacheInterface

	backend string
	monitor monitoring.MonitorInterface
}

func (c *MeteredCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, found, err := c.CacheInterface.Get(ctx, key)

	result := "miss"
	switch {
	case err != nil:
		result = "error"
	case found:
		result = "hit"
	}

	_ = c.monitor.IncCacheLookup(map[string]string{"backend": c.backend, "result": result})

	return value, found, err
}

func NewMeteredCache(c CacheInterface, backend string, monitor monitoring.MonitorInterface) *MeteredCache {
	return &MeteredCache{CacheInterface: c, backend: backend, monitor: monitor}
}
