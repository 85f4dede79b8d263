// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

const charset = "UTF-8"

// SESAPI is the part of the SES v2 client used to send mail
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type SESProvider struct {
	client SESAPI

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (p *SESProvider) Name() string {
	return ProviderSES
}

func (p *SESProvider) Send(ctx context.Context, msg *Message) (*Result, error) {
	ctx, span := p.tracer.Start(ctx, "email.SESProvider.Send")
	defer span.End()

	if err := validate(msg); err != nil {
		return nil, err
	}

	out, err := p.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(msg.From),
		Destination:      &sestypes.Destination{ToAddresses: msg.To},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(msg.Subject), Charset: aws.String(charset)},
				Body: &sestypes.Body{
					Html: &sestypes.Content{Data: aws.String(msg.HTML), Charset: aws.String(charset)},
				},
			},
		},
	})

	if err != nil {
		_ = p.monitor.SetDependencyAvailability(map[string]string{"component": "email_ses"}, 0)
		return nil, fmt.Errorf("ses send failed: %w", err)
	}

	_ = p.monitor.SetDependencyAvailability(map[string]string{"component": "email_ses"}, 1)

	return &Result{Provider: ProviderSES, MessageID: aws.ToString(out.MessageId)}, nil
}

// NewSESProvider loads the AWS configuration, preferring static credentials when both
// keys are set and the default credential chain otherwise
func NewSESProvider(ctx context.Context, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*SESProvider, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.AWSRegion)}

	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := sesv2.NewFromConfig(awsConfig, func(o *sesv2.Options) {
		if cfg.SESEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.SESEndpoint)
		}
	})

	return NewSESProviderWithClient(client, tracer, monitor, logger), nil
}

func NewSESProviderWithClient(client SESAPI, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SESProvider {
	return &SESProvider{
		client:  client,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
