// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
)

type StorageInterface interface {
	GetProfile(ctx context.Context, id string) (*types.Profile, error)
	UpsertProfile(ctx context.Context, profile *types.Profile) (*types.Profile, error)
	DeleteProfile(ctx context.Context, id string) error
}

type IdentityInterface interface {
	DeleteIdentity(ctx context.Context, id string) error
}

type ServiceInterface interface {
	GetProfile(ctx context.Context) (*types.Profile, error)
	UpdateProfile(ctx context.Context, req *UpdateProfileRequest) (*types.Profile, error)
	DeleteAccount(ctx context.Context) error
}
