// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
)

type StorageInterface interface {
	CreateOrgInvite(ctx context.Context, invite *types.Invitation) (string, error)
	ListInvitations(ctx context.Context, orgID string) ([]*types.Invitation, error)
}

type ServiceInterface interface {
	CreateInvitation(ctx context.Context, req *CreateInvitationRequest) error
	ListInvitations(ctx context.Context, orgID string) ([]*types.Invitation, error)
}
