// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/pkg/authentication"
)

func TestHTTPMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
		found    bool
	}{
		{name: "no header"},
		{name: "valid identity", header: "6a1b1f2e-8a51-4c1f-9c8a-2b8d7f4e6a10", expected: "6a1b1f2e-8a51-4c1f-9c8a-2b8d7f4e6a10", found: true},
		{name: "malformed identity", header: "'; drop table profiles; --"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := NewMiddleware(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			var userID string
			var found bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userID, found = authentication.GetUserID(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/organizations", nil)
			if test.header != "" {
				req.Header.Set(HeaderName, test.header)
			}

			m.HTTPMiddleware(next).ServeHTTP(httptest.NewRecorder(), req)

			if found != test.found {
				t.Fatalf("expected found %v, got %v", test.found, found)
			}
			if userID != test.expected {
				t.Fatalf("expected user %q, got %q", test.expected, userID)
			}
		})
	}
}
