// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/workspace-service/internal/cache"
	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/email"
	"github.com/canonical/workspace-service/internal/identity"
	"github.com/canonical/workspace-service/internal/kratos"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/pkg/account"
	"github.com/canonical/workspace-service/pkg/authentication"
	"github.com/canonical/workspace-service/pkg/invitations"
	"github.com/canonical/workspace-service/pkg/members"
	"github.com/canonical/workspace-service/pkg/metrics"
	"github.com/canonical/workspace-service/pkg/organizations"
	"github.com/canonical/workspace-service/pkg/posts"
	"github.com/canonical/workspace-service/pkg/revalidate"
	"github.com/canonical/workspace-service/pkg/roles"
	"github.com/canonical/workspace-service/pkg/status"
	"github.com/canonical/workspace-service/pkg/teams"
	"github.com/canonical/workspace-service/pkg/webhooks"
)

type Config struct {
	CORSOrigins []string
	// AuthenticationEnabled verifies tokens, otherwise the identity header set by the proxy is trusted
	AuthenticationEnabled bool
	Invitations           invitations.Config
	// WebhookAPIKey authenticates the identity provider hooks, empty disables them
	WebhookAPIKey string
}

func NewRouter(
	cfg Config,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	c cache.CacheInterface,
	mailer email.ProviderInterface,
	identities kratos.ClientInterface,
	authMiddleware *authentication.Middleware,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSOrigins),
	)

	router.Use(middlewares...)

	authenticate := identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware
	if cfg.AuthenticationEnabled {
		authenticate = authMiddleware.Authenticate()
	}

	// session resolution has to run first, the transaction captures the user when it starts
	session := chi.Middlewares{authenticate, db.TransactionMiddleware(dbClient, logger)}

	rolesAPI := roles.NewAPI(roles.NewService(s, c, tracer, monitor, logger), logger)
	invitationsAPI := invitations.NewAPI(invitations.NewService(s, mailer, c, cfg.Invitations, tracer, monitor, logger), logger)
	accountAPI := account.NewAPI(account.NewService(s, identities, c, tracer, monitor, logger), logger)
	organizationsAPI := organizations.NewAPI(organizations.NewService(s, dbClient, c, tracer, monitor, logger), logger)
	teamsAPI := teams.NewAPI(teams.NewService(s, c, tracer, monitor, logger), logger)
	membersAPI := members.NewAPI(members.NewService(s, identities, c, tracer, monitor, logger), logger)
	postsAPI := posts.NewAPI(posts.NewService(s, c, tracer, monitor, logger), logger)
	webhooksAPI := webhooks.NewAPI(webhooks.NewService(s, dbClient, tracer, monitor, logger), cfg.WebhookAPIKey, logger)

	router.Route("/api", func(api chi.Router) {
		api.Group(func(r chi.Router) {
			r.Use(session...)

			accountAPI.RegisterEndpoints(r)
			invitationsAPI.RegisterEndpoints(r)
			revalidate.NewAPI(c, tracer, logger).RegisterEndpoints(r)
		})

		api.Route("/v0", func(v0 chi.Router) {
			metrics.NewAPI(logger).RegisterEndpoints(v0)
			status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(v0)
			// webhooks authenticate with the shared api key, act as the subject named in the
			// payload and open their own transaction
			webhooksAPI.RegisterEndpoints(v0)

			v0.Group(func(r chi.Router) {
				r.Use(session...)
				r.Use(authMiddleware.RequireUser())

				rolesAPI.RegisterEndpoints(r)
				invitationsAPI.RegisterV0Endpoints(r)
				accountAPI.RegisterV0Endpoints(r)
				organizationsAPI.RegisterEndpoints(r)
				teamsAPI.RegisterEndpoints(r)
				membersAPI.RegisterEndpoints(r)
				postsAPI.RegisterEndpoints(r)
			})
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
