// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
)

type StorageInterface interface {
	CreateOrganization(ctx context.Context, name, slug string) (string, error)
	GetOrganization(ctx context.Context, id string) (*types.Organization, error)
	ListOrganizationsByUserID(ctx context.Context, userID string) ([]*types.Organization, error)
	UpdateOrganizationName(ctx context.Context, id, name string) (*types.Organization, error)
	DeleteOrganization(ctx context.Context, id string) error

	CreateTeam(ctx context.Context, orgID, name string) (string, error)
	GetTeam(ctx context.Context, id string) (*types.Team, error)
	ListTeams(ctx context.Context, orgID string) ([]*types.Team, error)
	UpdateTeamName(ctx context.Context, id, name string) (*types.Team, error)
	DeleteTeam(ctx context.Context, id string) error

	ListOrgMembers(ctx context.Context, orgID string) ([]*types.OrgMembership, error)
	ListTeamMembers(ctx context.Context, teamID string) ([]*types.TeamMembership, error)

	CreateRole(ctx context.Context, role *types.Role) (*types.Role, error)
	GetRole(ctx context.Context, id string) (*types.Role, error)
	ListRoles(ctx context.Context, orgID string, scope types.RoleScope) ([]*types.Role, error)
	ListRolesForTeams(ctx context.Context, teamIDs []string) ([]*types.Role, error)
	DeleteRole(ctx context.Context, id string) error

	ListRolePermissions(ctx context.Context, roleID string) ([]*types.RolePermission, error)
	ReplaceRolePermissions(ctx context.Context, roleID string, permissions []*types.RolePermission) error

	CreateOrgInvite(ctx context.Context, invite *types.Invitation) (string, error)
	ListInvitations(ctx context.Context, orgID string) ([]*types.Invitation, error)

	CreatePost(ctx context.Context, post *types.Post) (*types.Post, error)
	GetPost(ctx context.Context, id string) (*types.Post, error)
	ListPosts(ctx context.Context, orgID, teamID string) ([]*types.Post, error)
	UpdatePostContent(ctx context.Context, id, title, content string) (*types.Post, error)
	DeletePost(ctx context.Context, id string) error

	GetProfile(ctx context.Context, id string) (*types.Profile, error)
	UpsertProfile(ctx context.Context, profile *types.Profile) (*types.Profile, error)
	DeleteProfile(ctx context.Context, id string) error

	HasOrgPermission(ctx context.Context, orgID, resource, action string) (bool, error)
	HasTeamPermission(ctx context.Context, teamID, resource, action string) (bool, error)
}
