// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/identity"
)

// apiClient talks to the versioned JSON api of a running server
type apiClient struct {
	endpoint string
	client   *http.Client
}

func getClient() *apiClient {
	endpoint := httpEndpoint
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	return &apiClient{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   30 * time.Second,
		},
	}
}

func (c *apiClient) authenticate(req *http.Request) {
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	if userID != "" {
		req.Header.Set(identity.HeaderName, userID)
	}
}

// do sends body as json and decodes the data field of the response into out
func (c *apiClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+"/api/v0"+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authenticate(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		e := new(httptypes.ErrorResponse)
		if json.Unmarshal(raw, e) == nil && e.Message != "" {
			return fmt.Errorf("api error (status %d): %s", resp.StatusCode, e.Message)
		}
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}

	envelope := httptypes.Response{Data: out}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}
