// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/permissions"
)

// StorageInterface is the subset of internal/storage used by roles
type StorageInterface interface {
	CreateRole(ctx context.Context, role *types.Role) (*types.Role, error)
	GetRole(ctx context.Context, id string) (*types.Role, error)
	ListRoles(ctx context.Context, orgID string, scope types.RoleScope) ([]*types.Role, error)
	ListRolesForTeams(ctx context.Context, teamIDs []string) ([]*types.Role, error)
	DeleteRole(ctx context.Context, id string) error

	ListRolePermissions(ctx context.Context, roleID string) ([]*types.RolePermission, error)
	ReplaceRolePermissions(ctx context.Context, roleID string, permissions []*types.RolePermission) error
}

type ServiceInterface interface {
	ListRoles(ctx context.Context, orgID string, scope types.RoleScope) ([]*types.Role, error)
	ListRolesForTeams(ctx context.Context, teamIDs []string) ([]*types.Role, error)
	GetRole(ctx context.Context, id string) (*types.Role, error)
	CreateRole(ctx context.Context, orgID string, req *CreateRoleRequest) (*types.Role, error)
	DeleteRole(ctx context.Context, id string) error

	GetPermissions(ctx context.Context, roleID string) ([]*types.RolePermission, error)
	ReplacePermissions(ctx context.Context, roleID string, assignments []permissions.Assignment) ([]*types.RolePermission, error)
	GetEditor(ctx context.Context, roleID string) (*EditorView, error)
	Matrix(scope types.RoleScope) ([]permissions.Resource, error)
}
