// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	SiteURL     string   `envconfig:"site_url" default:"http://localhost:3000"`
	CORSOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`
	// DBSessionRole is assumed with SET LOCAL ROLE inside every transaction so row level
	// security policies apply, leave empty to keep the connection role
	DBSessionRole string `envconfig:"db_session_role" default:"authenticated"`

	AuthenticationEnabled bool   `envconfig:"authentication_enabled" default:"false"`
	AuthIssuer            string `envconfig:"auth_issuer"`
	AuthJWKSURL           string `envconfig:"auth_jwks_url"`
	AuthRequiredRole      string `envconfig:"auth_required_role" default:"authenticated"`
	SessionCookieName     string `envconfig:"session_cookie_name" default:"access_token"`

	KratosAdminURL string `envconfig:"kratos_admin_url" required:"true"`
	// WebhookAPIKey is the value Kratos and Hydra send in the Authorization header of hook calls
	WebhookAPIKey string `envconfig:"webhook_api_key"`

	EmailProvider          string `envconfig:"email_provider" default:"ses"`
	EmailFrom              string `envconfig:"email_from" default:"noreply@mail.alwaysauto.com"`
	EmailInvitationSubject string `envconfig:"email_invitation_subject" default:"Always Auto Invitation"`
	AWSRegion              string `envconfig:"aws_region" default:"us-east-1"`
	AWSAccessKeyID         string `envconfig:"aws_access_key_id"`
	AWSSecretAccessKey     string `envconfig:"aws_secret_access_key"`
	SESEndpoint            string `envconfig:"ses_endpoint"`
	ResendAPIKey           string `envconfig:"resend_api_key"`
	SMTPHost               string `envconfig:"smtp_host"`
	SMTPPort               int    `envconfig:"smtp_port" default:"587"`
	SMTPUsername           string `envconfig:"smtp_username"`
	SMTPPassword           string `envconfig:"smtp_password"`

	CacheBackend string        `envconfig:"cache_backend" default:"memory"`
	CacheTTL     time.Duration `envconfig:"cache_ttl" default:"60s"`
	CacheSize    int           `envconfig:"cache_size" default:"4096"`
	RedisURL     string        `envconfig:"redis_url" default:"redis://localhost:6379/0"`
}
