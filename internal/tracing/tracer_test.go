// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"testing"
)

func TestNoopTracerStart(t *testing.T) {
	tracer := NewNoopTracer()

	ctx, span := tracer.Start(context.Background(), "tracing.TestNoopTracerStart")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}

	if span.SpanContext().IsValid() {
		t.Fatal("noop tracer should not produce valid span contexts")
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(true, "grpc:4317", "", nil)

	if !cfg.Enabled || cfg.OtelGRPCEndpoint != "grpc:4317" || cfg.OtelHTTPEndpoint != "" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
