// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/workspace-service/internal/types"
)

func (s *Storage) ListRolePermissions(ctx context.Context, roleID string) ([]*types.RolePermission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRolePermissions")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "role_id", "org_id", "team_id", "resource", "action", "scope", "cascade_down", "target_kind").
		From("role_permissions").
		Where(sq.Eq{"role_id": roleID}).
		OrderBy("resource", "action").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list role permissions: %w", err)
	}
	defer rows.Close()

	permissions := make([]*types.RolePermission, 0)
	for rows.Next() {
		var p types.RolePermission
		if err := rows.Scan(&p.ID, &p.RoleID, &p.OrgID, &p.TeamID, &p.Resource, &p.Action, &p.Scope, &p.CascadeDown, &p.TargetKind); err != nil {
			return nil, fmt.Errorf("failed to scan role permission: %w", err)
		}
		permissions = append(permissions, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return permissions, nil
}

// ReplaceRolePermissions swaps the full permission set of a role, the delete and the
// insert share one transaction so a failure never leaves the role without permissions
func (s *Storage) ReplaceRolePermissions(ctx context.Context, roleID string, permissions []*types.RolePermission) error {
	ctx, span := s.tracer.Start(ctx, "storage.ReplaceRolePermissions")
	defer span.End()

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.db.Statement(ctx).
			Delete("role_permissions").
			Where(sq.Eq{"role_id": roleID}).
			ExecContext(ctx); err != nil {
			return classify(err, "failed to delete role permissions")
		}

		if len(permissions) == 0 {
			return nil
		}

		insert := s.db.Statement(ctx).
			Insert("role_permissions").
			Columns("id", "role_id", "org_id", "team_id", "resource", "action", "scope", "cascade_down", "target_kind")

		for _, p := range permissions {
			id, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("failed to generate role permission ID: %w", err)
			}
			insert = insert.Values(id.String(), roleID, p.OrgID, p.TeamID, p.Resource, p.Action, p.Scope, p.CascadeDown, p.TargetKind)
		}

		if _, err := insert.ExecContext(ctx); err != nil {
			return classify(err, "failed to insert role permissions")
		}

		return nil
	})
}
