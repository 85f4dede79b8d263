// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/tracing"
)

const defaultLRUSize = 4096

// LRUCache is the in process backend, tag membership is tracked beside the expirable LRU
// and guarded by mu
type LRUCache struct {
	entries *expirable.LRU[string, []byte]

	mu      sync.Mutex
	tags    map[string]map[string]struct{}
	keyTags map[string]map[string]struct{}

	// evicted is filled from the LRU eviction callback, which runs under the LRU lock,
	// so it sits behind its own mutex and is drained while mu is held
	evictMu sync.Mutex
	evicted []string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (c *LRUCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	_, span := c.tracer.Start(ctx, "cache.LRUCache.Get")
	defer span.End()

	v, ok := c.entries.Get(key)
	return v, ok, nil
}

func (c *LRUCache) Set(ctx context.Context, key string, value []byte, tags ...string) error {
	_, span := c.tracer.Start(ctx, "cache.LRUCache.Set")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.prune()

	c.entries.Add(key, value)
	for _, tag := range tags {
		keys, ok := c.tags[tag]
		if !ok {
			keys = make(map[string]struct{})
			c.tags[tag] = keys
		}
		keys[key] = struct{}{}

		owned, ok := c.keyTags[key]
		if !ok {
			owned = make(map[string]struct{})
			c.keyTags[key] = owned
		}
		owned[tag] = struct{}{}
	}

	return nil
}

// prune drops evicted keys from the tag index along with tags left empty, mu must be held
func (c *LRUCache) prune() {
	c.evictMu.Lock()
	evicted := c.evicted
	c.evicted = nil
	c.evictMu.Unlock()

	for _, key := range evicted {
		// the key may have been stored again after it was evicted
		if c.entries.Contains(key) {
			continue
		}

		for tag := range c.keyTags[key] {
			keys := c.tags[tag]
			delete(keys, key)
			if len(keys) == 0 {
				delete(c.tags, tag)
			}
		}
		delete(c.keyTags, key)
	}
}

func (c *LRUCache) onEvict(key string, _ []byte) {
	c.evictMu.Lock()
	defer c.evictMu.Unlock()

	c.evicted = append(c.evicted, key)
}

func (c *LRUCache) InvalidateTag(ctx context.Context, tag string) error {
	_, span := c.tracer.Start(ctx, "cache.LRUCache.InvalidateTag")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.tags[tag] {
		c.entries.Remove(key)
	}
	delete(c.tags, tag)
	c.prune()

	return nil
}

func (c *LRUCache) Close() error {
	c.entries.Purge()
	return nil
}

func NewLRUCache(size int, ttl time.Duration, tracer tracing.TracingInterface, logger logging.LoggerInterface) *LRUCache {
	if size <= 0 {
		size = defaultLRUSize
	}

	c := &LRUCache{
		tags:    make(map[string]map[string]struct{}),
		keyTags: make(map[string]map[string]struct{}),
		tracer:  tracer,
		logger:  logger,
	}
	c.entries = expirable.NewLRU[string, []byte](size, c.onEvict, ttl)

	return c
}
