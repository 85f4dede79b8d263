// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
)

// CacheInterface is a tagged byte cache, entries are evicted by key expiry or by
// invalidating any tag they were stored with
type CacheInterface interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, tags ...string) error
	InvalidateTag(ctx context.Context, tag string) error
	Close() error
}
