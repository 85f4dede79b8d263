// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var otelHTTPClient = http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

// NewProvider runs OIDC discovery against the issuer, the cli token command uses it to
// find the token endpoint and the server to verify sessions
func NewProvider(ctx context.Context, issuer string) (*oidc.Provider, error) {
	provider, err := oidc.NewProvider(oidc.ClientContext(ctx, &otelHTTPClient), issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC issuer %s: %w", issuer, err)
	}

	return provider, nil
}

// NewJWKSVerifier skips discovery and verifies tokens of issuer against the keys at jwksURL,
// used when the issuer is not reachable from the service network
func NewJWKSVerifier(ctx context.Context, issuer, jwksURL string) (*oidc.IDTokenVerifier, error) {
	if jwksURL == "" {
		return nil, fmt.Errorf("jwks url is required")
	}

	keySet := oidc.NewRemoteKeySet(oidc.ClientContext(ctx, &otelHTTPClient), jwksURL)

	return oidc.NewVerifier(issuer, keySet, &oidc.Config{SkipClientIDCheck: true}), nil
}
