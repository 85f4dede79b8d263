// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_verifier.go -source=./interfaces.go

func TestMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name               string
		authHeader         string
		cookie             string
		setupMocks         func(*gomock.Controller, *MockLoggerInterface) TokenVerifierInterface
		expectedStatusCode int
		expectedUser       string
	}{
		{
			name:       "Missing token - continues anonymously",
			authHeader: "",
			setupMocks: func(ctrl *gomock.Controller, _ *MockLoggerInterface) TokenVerifierInterface {
				return NewMockTokenVerifierInterface(ctrl)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:       "Token verification fails - rejects request",
			authHeader: "Bearer invalid-token",
			setupMocks: func(ctrl *gomock.Controller, mockLogger *MockLoggerInterface) TokenVerifierInterface {
				mockSecurity := NewMockSecurityLoggerInterface(ctrl)
				mockSecurity.EXPECT().AuthnFailure("invalid token")
				mockLogger.EXPECT().Security().Return(mockSecurity)

				mockVerifier := NewMockTokenVerifierInterface(ctrl)
				mockVerifier.EXPECT().VerifyToken(gomock.Any(), "invalid-token").Return("", fmt.Errorf("invalid token"))
				return mockVerifier
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Valid bearer token",
			authHeader: "Bearer valid-token",
			setupMocks: func(ctrl *gomock.Controller, _ *MockLoggerInterface) TokenVerifierInterface {
				mockVerifier := NewMockTokenVerifierInterface(ctrl)
				mockVerifier.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return("user-123", nil)
				return mockVerifier
			},
			expectedStatusCode: http.StatusOK,
			expectedUser:       "user-123",
		},
		{
			name:   "Valid session cookie",
			cookie: "cookie-token",
			setupMocks: func(ctrl *gomock.Controller, _ *MockLoggerInterface) TokenVerifierInterface {
				mockVerifier := NewMockTokenVerifierInterface(ctrl)
				mockVerifier.EXPECT().VerifyToken(gomock.Any(), "cookie-token").Return("user-456", nil)
				return mockVerifier
			},
			expectedStatusCode: http.StatusOK,
			expectedUser:       "user-456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.Authenticate").Return(ctx, trace.SpanFromContext(ctx))
			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()

			mockVerifier := tt.setupMocks(ctrl, mockLogger)

			middleware := NewMiddleware(mockVerifier, "access_token", mockTracer, mockMonitor, mockLogger)

			var user string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				user, _ = GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: tt.cookie})
			}
			rr := httptest.NewRecorder()

			middleware.Authenticate()(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}

			if user != tt.expectedUser {
				t.Errorf("expected user %q, got %q", tt.expectedUser, user)
			}
		})
	}
}

func TestMiddleware_RequireUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	middleware := NewMiddleware(NewMockTokenVerifierInterface(ctrl), "", NewMockTracingInterface(ctrl), NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))

	called := false
	handler := middleware.RequireUser()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))

	if rr.Code != http.StatusUnauthorized || called {
		t.Fatalf("expected anonymous request to be rejected, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	handler.ServeHTTP(rr, req.WithContext(WithUserID(req.Context(), "user-123")))

	if !called {
		t.Fatal("expected authenticated request to reach the handler")
	}
}

func TestMiddleware_GetBearerToken(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		expectedToken string
		expectedFound bool
	}{
		{
			name:          "No Authorization header",
			authHeader:    "",
			expectedToken: "",
			expectedFound: false,
		},
		{
			name:          "Bearer token",
			authHeader:    "Bearer my-token-123",
			expectedToken: "my-token-123",
			expectedFound: true,
		},
		{
			name:          "Raw token without Bearer prefix",
			authHeader:    "my-token-123",
			expectedToken: "",
			expectedFound: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			middleware := NewMiddleware(NewMockTokenVerifierInterface(ctrl), "", NewMockTracingInterface(ctrl), NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))

			headers := http.Header{}
			if test.authHeader != "" {
				headers.Set("Authorization", test.authHeader)
			}

			token, found := middleware.getBearerToken(headers)

			if token != test.expectedToken {
				t.Errorf("expected token %q, got %q", test.expectedToken, token)
			}
			if found != test.expectedFound {
				t.Errorf("expected found %v, got %v", test.expectedFound, found)
			}
		})
	}
}

func TestClaimsHasRole(t *testing.T) {
	tests := []struct {
		name     string
		claims   claims
		expected bool
	}{
		{name: "role claim", claims: claims{Role: "authenticated"}, expected: true},
		{name: "space separated scope", claims: claims{Scope: "openid authenticated"}, expected: true},
		{name: "scp list", claims: claims{Scopes: []string{"authenticated"}}, expected: true},
		{name: "anonymous role", claims: claims{Role: "anon", Scope: "openid"}, expected: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.claims.hasRole("authenticated"); got != test.expected {
				t.Errorf("expected %v, got %v", test.expected, got)
			}
		})
	}
}
