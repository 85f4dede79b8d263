// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/workspace-service/internal/types"
)

var roleColumns = []string{"id", "name", "display_name", "description", "scope", "org_id", "team_id", "created_at"}

func scanRole(row rowScanner) (*types.Role, error) {
	var r types.Role
	var description sql.NullString

	if err := row.Scan(&r.ID, &r.Name, &r.DisplayName, &description, &r.Scope, &r.OrgID, &r.TeamID, &r.CreatedAt); err != nil {
		return nil, err
	}

	r.Description = description.String
	return &r, nil
}

func (s *Storage) CreateRole(ctx context.Context, role *types.Role) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateRole")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate role ID: %w", err)
	}

	created, err := scanRole(
		s.db.Statement(ctx).
			Insert("roles").
			Columns("id", "name", "display_name", "description", "scope", "org_id", "team_id").
			Values(id.String(), role.Name, role.DisplayName, role.Description, role.Scope, role.OrgID, role.TeamID).
			Suffix("RETURNING id, name, display_name, description, scope, org_id, team_id, created_at").
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, classify(err, "failed to insert role")
	}

	return created, nil
}

func (s *Storage) GetRole(ctx context.Context, id string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRole")
	defer span.End()

	r, err := scanRole(
		s.db.Statement(ctx).
			Select(roleColumns...).
			From("roles").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return r, nil
}

// ListRoles returns the roles of an organization, an empty scope returns every scope
func (s *Storage) ListRoles(ctx context.Context, orgID string, scope types.RoleScope) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRoles")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(roleColumns...).
		From("roles").
		Where(sq.Eq{"org_id": orgID})

	if scope != "" {
		query = query.Where(sq.Eq{"scope": scope})
	}

	return s.listRoles(ctx, query.OrderBy("name"))
}

func (s *Storage) ListRolesForTeams(ctx context.Context, teamIDs []string) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRolesForTeams")
	defer span.End()

	if len(teamIDs) == 0 {
		return []*types.Role{}, nil
	}

	query := s.db.Statement(ctx).
		Select(roleColumns...).
		From("roles").
		Where(sq.Eq{"team_id": teamIDs, "scope": types.RoleScopeTeam}).
		OrderBy("name")

	return s.listRoles(ctx, query)
}

func (s *Storage) listRoles(ctx context.Context, query sq.SelectBuilder) ([]*types.Role, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	roles := make([]*types.Role, 0)
	for rows.Next() {
		r, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

func (s *Storage) DeleteRole(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteRole")
	defer span.End()

	return s.deleteByID(ctx, "roles", id)
}
