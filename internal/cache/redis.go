// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

const (
	entryPrefix = "cache:entry:"
	tagPrefix   = "cache:tag:"
)

// RedisCache stores entries as plain keys and keeps, per tag, a set with the keys stored under it
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, span := c.tracer.Start(ctx, "cache.RedisCache.Get")
	defer span.End()

	raw, err := c.client.Get(ctx, entryPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		c.setAvailability(0)
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	return raw, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, tags ...string) error {
	ctx, span := c.tracer.Start(ctx, "cache.RedisCache.Set")
	defer span.End()

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, entryPrefix+key, value, c.ttl)
		for _, tag := range tags {
			pipe.SAdd(ctx, tagPrefix+tag, key)
			// tag sets outlive their entries by one ttl so late writers still get indexed
			pipe.Expire(ctx, tagPrefix+tag, 2*c.ttl)
		}
		return nil
	})

	if err != nil {
		c.setAvailability(0)
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *RedisCache) InvalidateTag(ctx context.Context, tag string) error {
	ctx, span := c.tracer.Start(ctx, "cache.RedisCache.InvalidateTag")
	defer span.End()

	keys, err := c.client.SMembers(ctx, tagPrefix+tag).Result()
	if err != nil {
		c.setAvailability(0)
		return fmt.Errorf("redis smembers failed: %w", err)
	}

	toDelete := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		toDelete = append(toDelete, entryPrefix+k)
	}
	toDelete = append(toDelete, tagPrefix+tag)

	if err := c.client.Del(ctx, toDelete...).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}

	c.logger.Debugf("invalidated %d cache entries for tag %s", len(keys), tag)
	return nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	err := c.client.Ping(ctx).Err()
	if err != nil {
		c.setAvailability(0)
		return err
	}

	c.setAvailability(1)
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) setAvailability(v float64) {
	_ = c.monitor.SetDependencyAvailability(map[string]string{"component": "redis"}, v)
}

func NewRedisCache(url string, ttl time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	c := &RedisCache{
		client:  redis.NewClient(opts),
		ttl:     ttl,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx); err != nil {
		_ = c.client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return c, nil
}
