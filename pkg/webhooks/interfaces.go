// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/workspace-service/internal/types"
)

// StorageInterface defines the storage operations required by the webhooks package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	UpsertProfile(ctx context.Context, profile *types.Profile) (*types.Profile, error)
	ListOrganizationsByUserID(ctx context.Context, userID string) ([]*types.Organization, error)
}

// TxRunnerInterface opens a transaction acting as the user found in the context,
// webhook requests carry no session of their own
type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identity *KratosIdentity) error
	HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error)
}
