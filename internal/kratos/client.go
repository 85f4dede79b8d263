// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

var ErrIdentityNotFound = errors.New("identity not found")

type ClientInterface interface {
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
	GetIdentityEmail(ctx context.Context, id string) (string, error)
	DeleteIdentity(ctx context.Context, id string) error
}

type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	conf.HTTPClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) GetIdentity(ctx context.Context, id string) (*ory.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentity")
	defer span.End()

	identity, r, err := c.client.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, ErrIdentityNotFound
		}
		c.setAvailability(r)
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	c.setAvailability(r)
	return identity, nil
}

// GetIdentityEmail reads the email trait, an empty string means the identity has none
func (c *Client) GetIdentityEmail(ctx context.Context, id string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentityEmail")
	defer span.End()

	identity, err := c.GetIdentity(ctx, id)
	if err != nil {
		return "", err
	}

	traits, ok := identity.Traits.(map[string]interface{})
	if !ok {
		return "", nil
	}

	email, _ := traits["email"].(string)
	return email, nil
}

// DeleteIdentity removes the identity, an identity that is already gone is not an error
func (c *Client) DeleteIdentity(ctx context.Context, id string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.DeleteIdentity")
	defer span.End()

	r, err := c.client.IdentityAPI.DeleteIdentity(ctx, id).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			c.logger.Debugf("identity %s already deleted", id)
			return nil
		}
		c.setAvailability(r)
		return fmt.Errorf("failed to delete identity: %w", err)
	}

	c.setAvailability(r)
	return nil
}

func (c *Client) setAvailability(r *http.Response) {
	v := 1.0
	if r == nil || r.StatusCode >= http.StatusInternalServerError {
		v = 0
	}
	_ = c.monitor.SetDependencyAvailability(map[string]string{"component": "kratos"}, v)
}
