// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package email

import (
	"context"
	"fmt"
	"net/http"

	"github.com/resend/resend-go/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

type ResendProvider struct {
	client *resend.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (p *ResendProvider) Name() string {
	return ProviderResend
}

func (p *ResendProvider) Send(ctx context.Context, msg *Message) (*Result, error) {
	ctx, span := p.tracer.Start(ctx, "email.ResendProvider.Send")
	defer span.End()

	if err := validate(msg); err != nil {
		return nil, err
	}

	sent, err := p.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	})

	if err != nil {
		_ = p.monitor.SetDependencyAvailability(map[string]string{"component": "email_resend"}, 0)
		return nil, fmt.Errorf("resend send failed: %w", err)
	}

	_ = p.monitor.SetDependencyAvailability(map[string]string{"component": "email_resend"}, 1)

	return &Result{Provider: ProviderResend, MessageID: sent.Id}, nil
}

func NewResendProvider(apiKey string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *ResendProvider {
	httpClient := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	return &ResendProvider{
		client:  resend.NewCustomClient(httpClient, apiKey),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
