// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/pkg/authentication"
)

// HeaderName is set by the identity-aware proxy in front of the service
const HeaderName = "X-Kratos-Authenticated-Identity-Id"

// Middleware trusts the proxy header and is only mounted when token authentication is disabled
type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		userID := r.Header.Get(HeaderName)
		if userID == "" {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		// the id ends up in set_config, reject anything that is not an identity id
		if _, err := uuid.Parse(userID); err != nil {
			m.logger.Security().AuthnFailure("malformed identity header")
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		ctx = authentication.WithUserID(ctx, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
