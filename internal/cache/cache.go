// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"

	DefaultTTL = 60 * time.Second
)

type Config struct {
	Backend  string
	TTL      time.Duration
	Size     int
	RedisURL string
}

// Key joins parts into a cache key
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

// OrgTag, TeamTag, RoleTag and UserTag name the invalidation groups used by the services
func OrgTag(id string) string  { return "org:" + id }
func TeamTag(id string) string { return "team:" + id }
func RoleTag(id string) string { return "role:" + id }
func UserTag(id string) string { return "user:" + id }

// Fetch returns the cached value for key or loads it with fn and caches the result
// under tags, cache failures only degrade to a direct load
func Fetch[T any](ctx context.Context, c CacheInterface, logger logging.LoggerInterface, key string, tags []string, fn func(context.Context) (T, error)) (T, error) {
	var value T

	raw, found, err := c.Get(ctx, key)
	if err != nil {
		logger.Warnf("cache read failed for %s: %v", key, err)
	}

	if found {
		if err := json.Unmarshal(raw, &value); err == nil {
			return value, nil
		}
		logger.Warnf("dropping undecodable cache entry %s", key)
	}

	value, err = fn(ctx)
	if err != nil {
		return value, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		logger.Warnf("failed to encode cache entry %s: %v", key, err)
		return value, nil
	}

	if err := c.Set(ctx, key, encoded, tags...); err != nil {
		logger.Warnf("cache write failed for %s: %v", key, err)
	}

	return value, nil
}

// Invalidate drops every tag, stopping at the first failure
func Invalidate(ctx context.Context, c CacheInterface, tags ...string) error {
	for _, tag := range tags {
		if err := c.InvalidateTag(ctx, tag); err != nil {
			return fmt.Errorf("failed to invalidate tag %s: %w", tag, err)
		}
	}

	return nil
}

// NewCache builds the backend named in the configuration, it is meant to be
// constructed once per process and shared
func NewCache(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (CacheInterface, error) {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	switch cfg.Backend {
	case BackendRedis:
		c, err := NewRedisCache(cfg.RedisURL, ttl, tracer, monitor, logger)
		if err != nil {
			return nil, err
		}
		return NewTransactionalCache(NewMeteredCache(c, BackendRedis, monitor), logger), nil
	case BackendMemory, "":
		return NewTransactionalCache(NewMeteredCache(NewLRUCache(cfg.Size, ttl, tracer, logger), BackendMemory, monitor), logger), nil
	case BackendNone:
		return NewNoopCache(), nil
	}

	return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
}
