// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package email

import (
	"context"
	"fmt"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

const (
	ProviderSES    = "ses"
	ProviderResend = "resend"
	ProviderSMTP   = "smtp"
	ProviderNoop   = "noop"
)

type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Result identifies the message at the provider
type Result struct {
	Provider  string `json:"provider"`
	MessageID string `json:"message_id"`
}

type Config struct {
	Provider string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	SESEndpoint        string

	ResendAPIKey string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
}

func validate(msg *Message) error {
	if msg == nil || len(msg.To) == 0 {
		return fmt.Errorf("message has no recipients")
	}
	if msg.From == "" {
		return fmt.Errorf("message has no sender")
	}
	return nil
}

// NewProvider returns the provider selected in the configuration, SES unless told otherwise
func NewProvider(ctx context.Context, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (ProviderInterface, error) {
	switch cfg.Provider {
	case ProviderSES, "":
		return NewSESProvider(ctx, cfg, tracer, monitor, logger)
	case ProviderResend:
		if cfg.ResendAPIKey == "" {
			return nil, fmt.Errorf("resend provider requires an api key")
		}
		return NewResendProvider(cfg.ResendAPIKey, tracer, monitor, logger), nil
	case ProviderSMTP:
		return NewSMTPProvider(cfg, tracer, monitor, logger), nil
	case ProviderNoop:
		return NewNoopProvider(logger), nil
	}

	return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
}
