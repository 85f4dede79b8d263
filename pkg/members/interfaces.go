// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package members

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
)

type StorageInterface interface {
	ListOrgMembers(ctx context.Context, orgID string) ([]*types.OrgMembership, error)
	ListTeamMembers(ctx context.Context, teamID string) ([]*types.TeamMembership, error)
}

type IdentityInterface interface {
	GetIdentityEmail(ctx context.Context, id string) (string, error)
}

type ServiceInterface interface {
	ListOrgMembers(ctx context.Context, orgID string) ([]*types.OrgMembership, error)
	ListTeamMembers(ctx context.Context, teamID string) ([]*types.TeamMembership, error)
}
