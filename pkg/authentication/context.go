// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
)

// ErrNoUser is returned when an operation acting as the session user finds none
var ErrNoUser = errors.New("no authenticated user")

type contextKey struct{}

var userContextKey = contextKey{}

// WithUserID stores the acting user, the database transaction started for the request
// reads it back to scope row level security
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userContextKey, userID)
}

// GetUserID returns the acting user, an empty id counts as absent
func GetUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userContextKey).(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}

// RequireUserID is GetUserID for operations that cannot run anonymously
func RequireUserID(ctx context.Context) (string, error) {
	id, ok := GetUserID(ctx)
	if !ok {
		return "", ErrNoUser
	}

	return id, nil
}
