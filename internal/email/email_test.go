// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"net/url"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

type fakeSES struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("ses-1")}, nil
}

func testMessage() *Message {
	return &Message{
		From:    "noreply@mail.alwaysauto.com",
		To:      []string{"jane@example.com"},
		Subject: "Always Auto Invitation",
		HTML:    `<a href="https://app.example.com/invitation?token=abc">Click here to accept the invitation</a>`,
	}
}

func TestSESProviderSend(t *testing.T) {
	tests := []struct {
		name      string
		clientErr error
		expectErr bool
	}{
		{name: "delivered"},
		{name: "rejected", clientErr: errors.New("MessageRejected"), expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client := &fakeSES{err: test.clientErr}
			p := NewSESProviderWithClient(client, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			res, err := p.Send(context.Background(), testMessage())

			if test.expectErr {
				assert.Error(t, err)
				assert.Nil(t, res)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "ses-1", res.MessageID)
			assert.Equal(t, ProviderSES, res.Provider)
			assert.Equal(t, "noreply@mail.alwaysauto.com", aws.ToString(client.input.FromEmailAddress))
			assert.Equal(t, []string{"jane@example.com"}, client.input.Destination.ToAddresses)
			assert.Equal(t, "Always Auto Invitation", aws.ToString(client.input.Content.Simple.Subject.Data))
			assert.Contains(t, aws.ToString(client.input.Content.Simple.Body.Html.Data), "token=abc")
		})
	}
}

func TestSendRejectsMessageWithoutRecipients(t *testing.T) {
	client := &fakeSES{}
	p := NewSESProviderWithClient(client, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	msg := testMessage()
	msg.To = nil

	_, err := p.Send(context.Background(), msg)
	assert.Error(t, err)
	assert.Nil(t, client.input)
}

func TestResendProviderSend(t *testing.T) {
	var received map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"resend-1"}`))
	}))
	defer srv.Close()

	p := NewResendProvider("re_test", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	p.client.BaseURL = base

	res, err := p.Send(context.Background(), testMessage())

	require.NoError(t, err)
	assert.Equal(t, "resend-1", res.MessageID)
	assert.Equal(t, "Always Auto Invitation", received["subject"])
	assert.Equal(t, "noreply@mail.alwaysauto.com", received["from"])
}

func TestResendProviderSendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"invalid from"}`))
	}))
	defer srv.Close()

	p := NewResendProvider("re_test", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	p.client.BaseURL = base

	_, err = p.Send(context.Background(), testMessage())
	assert.Error(t, err)
}

func TestSMTPProviderSend(t *testing.T) {
	p := NewSMTPProvider(Config{SMTPHost: "localhost", SMTPPort: 1025}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	var addr string
	var body string
	p.sendMail = func(a string, _ smtp.Auth, from string, to []string, msg []byte) error {
		addr = a
		body = string(msg)
		return nil
	}

	res, err := p.Send(context.Background(), testMessage())

	require.NoError(t, err)
	assert.NotEmpty(t, res.MessageID)
	assert.Equal(t, "localhost:1025", addr)
	assert.True(t, strings.HasPrefix(body, "From: noreply@mail.alwaysauto.com\r\n"))
	assert.Contains(t, body, "Subject: Always Auto Invitation\r\n")
	assert.Contains(t, body, "Content-Type: text/html")
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		expected  string
		expectErr bool
	}{
		{name: "resend", cfg: Config{Provider: ProviderResend, ResendAPIKey: "re_test"}, expected: ProviderResend},
		{name: "resend without key", cfg: Config{Provider: ProviderResend}, expectErr: true},
		{name: "smtp", cfg: Config{Provider: ProviderSMTP, SMTPHost: "localhost", SMTPPort: 25}, expected: ProviderSMTP},
		{name: "noop", cfg: Config{Provider: ProviderNoop}, expected: ProviderNoop},
		{name: "ses", cfg: Config{Provider: ProviderSES, AWSRegion: "eu-west-1", AWSAccessKeyID: "id", AWSSecretAccessKey: "secret"}, expected: ProviderSES},
		{name: "unknown", cfg: Config{Provider: "pigeon"}, expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, err := NewProvider(context.Background(), test.cfg, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			if test.expectErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expected, p.Name())
		})
	}
}
