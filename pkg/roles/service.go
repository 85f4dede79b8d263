// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/workspace-service/internal/cache"
	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/authentication"
	"github.com/canonical/workspace-service/pkg/permissions"
)

type Service struct {
	storage  StorageInterface
	cache    cache.CacheInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	c cache.CacheInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		cache:    c,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// currentUser keys cached reads, RLS filtered rows differ per user
func currentUser(ctx context.Context) string {
	userID, _ := authentication.GetUserID(ctx)
	return userID
}

func (s *Service) ListRoles(ctx context.Context, orgID string, scope types.RoleScope) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.ListRoles")
	defer span.End()

	if scope != "" && !scope.Valid() {
		return nil, httptypes.NewBadRequestError("invalid role scope %q", scope)
	}

	userID := currentUser(ctx)
	key := cache.Key("roles", orgID, string(scope), userID)

	return cache.Fetch(ctx, s.cache, s.logger, key, []string{cache.OrgTag(orgID), cache.UserTag(userID)},
		func(ctx context.Context) ([]*types.Role, error) {
			return s.storage.ListRoles(ctx, orgID, scope)
		},
	)
}

func (s *Service) ListRolesForTeams(ctx context.Context, teamIDs []string) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.ListRolesForTeams")
	defer span.End()

	return s.storage.ListRolesForTeams(ctx, teamIDs)
}

func (s *Service) GetRole(ctx context.Context, id string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.GetRole")
	defer span.End()

	userID := currentUser(ctx)

	role, err := cache.Fetch(ctx, s.cache, s.logger, cache.Key("role", id, userID), []string{cache.RoleTag(id), cache.UserTag(userID)},
		func(ctx context.Context) (*types.Role, error) {
			return s.storage.GetRole(ctx, id)
		},
	)

	if err != nil {
		return nil, fmt.Errorf("failed to get role %s: %w", id, err)
	}

	return role, nil
}

func (s *Service) CreateRole(ctx context.Context, orgID string, req *CreateRoleRequest) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.CreateRole")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	hasTeam := req.TeamID != nil && *req.TeamID != ""
	if req.Scope == types.RoleScopeTeam && !hasTeam {
		return nil, httptypes.NewBadRequestError("team_id is required for team roles")
	}
	if req.Scope == types.RoleScopeOrganization && hasTeam {
		return nil, httptypes.NewBadRequestError("team_id must be empty for organization roles")
	}

	role := &types.Role{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Description: req.Description,
		Scope:       req.Scope,
		OrgID:       orgID,
	}
	if role.DisplayName == "" {
		role.DisplayName = role.Name
	}
	if hasTeam {
		role.TeamID = req.TeamID
	}

	created, err := s.storage.CreateRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	s.invalidate(ctx, cache.OrgTag(orgID))
	s.logger.Security().AdminAction(currentUser(ctx), "create", "role", created.ID)

	return created, nil
}

func (s *Service) DeleteRole(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "roles.Service.DeleteRole")
	defer span.End()

	role, err := s.storage.GetRole(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get role %s: %w", id, err)
	}

	if err := s.storage.DeleteRole(ctx, id); err != nil {
		return fmt.Errorf("failed to delete role %s: %w", id, err)
	}

	s.invalidate(ctx, cache.RoleTag(id), cache.OrgTag(role.OrgID))
	s.logger.Security().AdminAction(currentUser(ctx), "delete", "role", id)

	return nil
}

func (s *Service) GetPermissions(ctx context.Context, roleID string) ([]*types.RolePermission, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.GetPermissions")
	defer span.End()

	if _, err := s.GetRole(ctx, roleID); err != nil {
		return nil, err
	}

	userID := currentUser(ctx)

	perms, err := cache.Fetch(ctx, s.cache, s.logger, cache.Key("role-permissions", roleID, userID), []string{cache.RoleTag(roleID), cache.UserTag(userID)},
		func(ctx context.Context) ([]*types.RolePermission, error) {
			return s.storage.ListRolePermissions(ctx, roleID)
		},
	)

	if err != nil {
		return nil, fmt.Errorf("failed to list permissions of role %s: %w", roleID, err)
	}

	return perms, nil
}

// ReplacePermissions swaps the complete permission set of a role.
// The set is validated against the matrix before storage is touched, and concurrent
// replaces are not versioned so the last one wins.
func (s *Service) ReplacePermissions(ctx context.Context, roleID string, assignments []permissions.Assignment) ([]*types.RolePermission, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.ReplacePermissions")
	defer span.End()

	for _, a := range assignments {
		if err := s.validate.Struct(a); err != nil {
			return nil, err
		}
	}

	role, err := s.storage.GetRole(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get role %s: %w", roleID, err)
	}

	editor, err := permissions.FromAssignments(role, assignments)
	if err != nil {
		return nil, &httptypes.BadRequestError{Err: err}
	}

	records := editor.Submit()

	if err := s.storage.ReplaceRolePermissions(ctx, roleID, records); err != nil {
		return nil, fmt.Errorf("failed to replace permissions of role %s: %w", roleID, err)
	}

	s.invalidate(ctx, cache.RoleTag(roleID))
	s.logger.Security().AdminAction(currentUser(ctx), "replace_permissions", "role", roleID)

	return records, nil
}

func (s *Service) GetEditor(ctx context.Context, roleID string) (*EditorView, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.GetEditor")
	defer span.End()

	role, err := s.GetRole(ctx, roleID)
	if err != nil {
		return nil, err
	}

	persisted, err := s.GetPermissions(ctx, roleID)
	if err != nil {
		return nil, err
	}

	editor := permissions.NewEditor(role, persisted)

	return &EditorView{
		Role:    role,
		Columns: permissions.Columns(),
		Rows:    editor.Rows(),
	}, nil
}

// Matrix returns the rows offered for a scope, or the full matrix when scope is empty
func (s *Service) Matrix(scope types.RoleScope) ([]permissions.Resource, error) {
	if scope == "" {
		return permissions.Matrix(), nil
	}

	if !scope.Valid() {
		return nil, httptypes.NewBadRequestError("invalid role scope %q", scope)
	}

	return permissions.Resources(scope), nil
}

// invalidate runs after the write succeeded, a failure leaves entries to expire on their TTL
func (s *Service) invalidate(ctx context.Context, tags ...string) {
	if err := cache.Invalidate(ctx, s.cache, tags...); err != nil {
		s.logger.Warnf("failed to invalidate cache: %v", err)
	}
}
