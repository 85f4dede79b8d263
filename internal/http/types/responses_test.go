// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/workspace-service/internal/storage"
)

func TestStatusFromError(t *testing.T) {
	type input struct {
		Email string `validate:"required,email"`
	}
	validationErr := validator.New().Struct(input{Email: "nope"})

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil", err: nil, expected: http.StatusOK},
		{name: "not found", err: fmt.Errorf("role: %w", storage.ErrNotFound), expected: http.StatusNotFound},
		{name: "duplicate", err: fmt.Errorf("role: %w", storage.ErrDuplicateKey), expected: http.StatusConflict},
		{name: "foreign key", err: storage.ErrForeignKeyViolation, expected: http.StatusBadRequest},
		{name: "permission denied", err: storage.ErrPermissionDenied, expected: http.StatusForbidden},
		{name: "bad request", err: NewBadRequestError("scope %q is invalid", "x"), expected: http.StatusBadRequest},
		{name: "validation", err: validationErr, expected: http.StatusBadRequest},
		{name: "downstream", err: errors.New("connection reset"), expected: http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := StatusFromError(test.err); got != test.expected {
				t.Errorf("expected %d, got %d", test.expected, got)
			}
		})
	}
}

func TestWriteErrorFromErr(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteErrorFromErr(rr, fmt.Errorf("failed to get role: %w", storage.ErrNotFound))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}

	var body ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}

	if body.Status != http.StatusNotFound || !strings.Contains(body.Message, "not found") {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Tag string `json:"tag"`
	}

	err := DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("")), &v)
	if StatusFromError(err) != http.StatusBadRequest {
		t.Fatalf("expected bad request for empty body, got %v", err)
	}

	if err := DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"tag":"org:1"}`)), &v); err != nil {
		t.Fatal(err)
	}

	if v.Tag != "org:1" {
		t.Errorf("expected tag to be decoded, got %q", v.Tag)
	}
}
