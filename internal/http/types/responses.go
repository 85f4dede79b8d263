// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/workspace-service/internal/storage"
)

// Response is the envelope used by every v0 endpoint
type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorResponse is the standard json response for errors
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// BadRequestError marks a domain error the client can fix
type BadRequestError struct {
	Err error
}

func (e *BadRequestError) Error() string {
	return e.Err.Error()
}

func (e *BadRequestError) Unwrap() error {
	return e.Err
}

func NewBadRequestError(format string, args ...any) error {
	return &BadRequestError{Err: fmt.Errorf(format, args...)}
}

// StatusFromError maps storage sentinels and validation failures to a status code,
// anything else is a downstream failure
func StatusFromError(err error) int {
	var badRequest *BadRequestError
	var validationErrors validator.ValidationErrors

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &badRequest), errors.As(err, &validationErrors):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, storage.ErrForeignKeyViolation), errors.Is(err, storage.ErrCheckViolation):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrPermissionDenied):
		return http.StatusForbidden
	}

	return http.StatusInternalServerError
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteResponse(w http.ResponseWriter, status int, data any, message string) {
	WriteJSON(w, status, Response{Data: data, Message: message, Status: status})
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Status: status, Message: message})
}

// WriteErrorFromErr keeps the raw error text visible to the caller
func WriteErrorFromErr(w http.ResponseWriter, err error) {
	WriteError(w, StatusFromError(err), err.Error())
}

// DecodeJSON reads a request body into v, an empty body is a bad request
func DecodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return NewBadRequestError("request body is empty")
		}
		return NewBadRequestError("invalid request body: %v", err)
	}

	return nil
}
