// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/google/uuid"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPProvider struct {
	addr     string
	auth     smtp.Auth
	sendMail sendMailFunc

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (p *SMTPProvider) Name() string {
	return ProviderSMTP
}

func (p *SMTPProvider) Send(ctx context.Context, msg *Message) (*Result, error) {
	_, span := p.tracer.Start(ctx, "email.SMTPProvider.Send")
	defer span.End()

	if err := validate(msg); err != nil {
		return nil, err
	}

	id := uuid.NewString()

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", msg.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&b, "Message-ID: <%s>\r\n", id)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(msg.HTML)

	if err := p.sendMail(p.addr, p.auth, msg.From, msg.To, []byte(b.String())); err != nil {
		_ = p.monitor.SetDependencyAvailability(map[string]string{"component": "email_smtp"}, 0)
		return nil, fmt.Errorf("smtp send failed: %w", err)
	}

	return &Result{Provider: ProviderSMTP, MessageID: id}, nil
}

func NewSMTPProvider(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SMTPProvider {
	p := &SMTPProvider{
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		sendMail: smtp.SendMail,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}

	if cfg.SMTPUsername != "" {
		p.auth = smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
	}

	return p
}
