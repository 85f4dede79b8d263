// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

type lookupRecorder struct {
	*monitoring.NoopMonitor

	results map[string]int
}

func (r *lookupRecorder) IncCacheLookup(tags map[string]string) error {
	r.results[tags["backend"]+"/"+tags["result"]]++
	return nil
}

func TestMeteredCacheCountsLookups(t *testing.T) {
	ctx := context.Background()
	recorder := &lookupRecorder{NoopMonitor: monitoring.NewNoopMonitor("test"), results: map[string]int{}}
	c := NewMeteredCache(NewLRUCache(16, time.Minute, tracing.NewNoopTracer(), logging.NewNoopLogger()), BackendMemory, recorder)

	_, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), "team:1"))

	value, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v"), value)

	assert.Equal(t, map[string]int{"memory/miss": 1, "memory/hit": 1}, recorder.results)
}
