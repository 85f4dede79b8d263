// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import "github.com/canonical/workspace-service/pkg/authentication"

// ErrNoUser answers 401 on the account endpoints
var ErrNoUser = authentication.ErrNoUser

// UpdateProfileRequest carries the fields to change, nil fields are left as they are
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	UserName  *string `json:"user_name" validate:"omitempty,max=50,alphanumunicode"`
}

type deleteAccountResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Error string `json:"error"`
}
