// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package teams

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
)

type StorageInterface interface {
	CreateTeam(ctx context.Context, orgID, name string) (string, error)
	GetTeam(ctx context.Context, id string) (*types.Team, error)
	ListTeams(ctx context.Context, orgID string) ([]*types.Team, error)
	UpdateTeamName(ctx context.Context, id, name string) (*types.Team, error)
	DeleteTeam(ctx context.Context, id string) error

	HasTeamPermission(ctx context.Context, teamID, resource, action string) (bool, error)
}

type ServiceInterface interface {
	ListTeams(ctx context.Context, orgID string) ([]*types.Team, error)
	GetTeam(ctx context.Context, id string) (*types.Team, error)
	CreateTeam(ctx context.Context, orgID string, req *CreateTeamRequest) (*types.Team, error)
	RenameTeam(ctx context.Context, id string, req *RenameTeamRequest) (*types.Team, error)
	DeleteTeam(ctx context.Context, id string) error
	CheckPermission(ctx context.Context, teamID, resource, action string) (bool, error)
}
