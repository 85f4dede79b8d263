// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/workspace-service/internal/cache"
	"github.com/canonical/workspace-service/internal/config"
	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/email"
	"github.com/canonical/workspace-service/internal/kratos"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring/prometheus"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/pkg/authentication"
	"github.com/canonical/workspace-service/pkg/invitations"
	"github.com/canonical/workspace-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("workspace-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
		SessionRole:     specs.DBSessionRole,
		SessionUser:     authentication.GetUserID,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	c, err := cache.NewCache(
		cache.Config{
			Backend:  specs.CacheBackend,
			TTL:      specs.CacheTTL,
			Size:     specs.CacheSize,
			RedisURL: specs.RedisURL,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create cache: %v", err)
	}
	defer c.Close()

	mailer, err := email.NewProvider(
		context.Background(),
		email.Config{
			Provider:           specs.EmailProvider,
			AWSRegion:          specs.AWSRegion,
			AWSAccessKeyID:     specs.AWSAccessKeyID,
			AWSSecretAccessKey: specs.AWSSecretAccessKey,
			SESEndpoint:        specs.SESEndpoint,
			ResendAPIKey:       specs.ResendAPIKey,
			SMTPHost:           specs.SMTPHost,
			SMTPPort:           specs.SMTPPort,
			SMTPUsername:       specs.SMTPUsername,
			SMTPPassword:       specs.SMTPPassword,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create email provider: %v", err)
	}
	logger.Infof("Sending email through %s", mailer.Name())

	kratosClient := kratos.NewClient(
		specs.KratosAdminURL,
		tracer,
		monitor,
		logger,
	)

	var verifier authentication.TokenVerifierInterface = authentication.NewNoopVerifier()
	if specs.AuthenticationEnabled {
		verifier, err = authentication.NewJWTAuthenticator(
			context.Background(),
			specs.AuthIssuer,
			specs.AuthJWKSURL,
			specs.AuthRequiredRole,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create token verifier: %v", err)
		}
		logger.Info("Token authentication is enabled")
	} else {
		logger.Info("Trusting the identity header, token authentication is disabled")
	}

	if specs.WebhookAPIKey == "" {
		logger.Warn("WEBHOOK_API_KEY is not set, registration and token hooks will reject every call")
	}

	router := web.NewRouter(
		web.Config{
			CORSOrigins:           specs.CORSOrigins,
			AuthenticationEnabled: specs.AuthenticationEnabled,
			WebhookAPIKey:         specs.WebhookAPIKey,
			Invitations: invitations.Config{
				SiteURL: specs.SiteURL,
				From:    specs.EmailFrom,
				Subject: specs.EmailInvitationSubject,
			},
		},
		s,
		dbClient,
		c,
		mailer,
		kratosClient,
		authentication.NewMiddleware(verifier, specs.SessionCookieName, tracer, monitor, logger),
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			sig <- os.Interrupt
		}
	}()

	<-sig

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
