// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package email

import (
	"context"

	"github.com/google/uuid"

	"github.com/canonical/workspace-service/internal/logging"
)

// NoopProvider logs messages instead of delivering them
type NoopProvider struct {
	logger logging.LoggerInterface
}

func (p *NoopProvider) Name() string {
	return ProviderNoop
}

func (p *NoopProvider) Send(_ context.Context, msg *Message) (*Result, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}

	p.logger.Debugf("noop email provider dropping message %q to %v", msg.Subject, msg.To)
	return &Result{Provider: ProviderNoop, MessageID: uuid.NewString()}, nil
}

func NewNoopProvider(logger logging.LoggerInterface) *NoopProvider {
	return &NoopProvider{logger: logger}
}
