// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

type claims struct {
	Subject string   `json:"sub"`
	Role    string   `json:"role"`
	Scope   string   `json:"scope"`
	Scopes  []string `json:"scp"`
}

// hasRole accepts the role either as the role claim or as one of the granted scopes
func (c *claims) hasRole(role string) bool {
	if c.Role == role {
		return true
	}

	if c.Scope != "" && slices.Contains(strings.Fields(c.Scope), role) {
		return true
	}

	return slices.Contains(c.Scopes, role)
}

type JWTVerifier struct {
	verifier     *oidc.IDTokenVerifier
	requiredRole string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", err
	}

	var c claims
	if err := token.Claims(&c); err != nil {
		v.logger.Debugf("Failed to extract claims: %v", err)
		return "", err
	}

	if c.Subject == "" {
		return "", fmt.Errorf("unauthorized: token has no subject")
	}

	if v.requiredRole == "" || c.hasRole(v.requiredRole) {
		return c.Subject, nil
	}

	v.logger.Security().AuthzFailure(c.Subject, "session")
	return "", fmt.Errorf("unauthorized: missing required role %q", v.requiredRole)
}

// ProviderInterface is the part of an oidc.Provider the verifier needs
type ProviderInterface interface {
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

func NewJWTVerifier(
	provider ProviderInterface,
	requiredRole string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	config := &oidc.Config{
		SkipClientIDCheck: true,
		SkipIssuerCheck:   false,
	}

	return NewJWTVerifierDirect(provider.Verifier(config), requiredRole, tracer, monitor, logger)
}

func NewJWTVerifierDirect(
	verifier *oidc.IDTokenVerifier,
	requiredRole string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier:     verifier,
		requiredRole: requiredRole,
		tracer:       tracer,
		monitor:      monitor,
		logger:       logger,
	}
}
