// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

// TokenVerifierInterface turns a raw session token into the user id every database
// transaction of the request acts as
type TokenVerifierInterface interface {
	// VerifyToken returns the subject when the token is valid and carries the required role
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}
