// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// HasOrgPermission asks the database whether the session user may perform action on
// resource within the organization
func (s *Storage) HasOrgPermission(ctx context.Context, orgID, resource, action string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.HasOrgPermission")
	defer span.End()

	return s.check(ctx, sq.Expr("has_org_permission(?, ?, ?)", orgID, resource, action))
}

// HasTeamPermission is HasOrgPermission for a team, organization grants with
// cascade_down count as well
func (s *Storage) HasTeamPermission(ctx context.Context, teamID, resource, action string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.HasTeamPermission")
	defer span.End()

	return s.check(ctx, sq.Expr("has_team_permission(?, ?, ?)", teamID, resource, action))
}

func (s *Storage) check(ctx context.Context, expr sq.Sqlizer) (bool, error) {
	var allowed bool

	err := s.db.Statement(ctx).
		Select().
		Column(expr).
		QueryRowContext(ctx).
		Scan(&allowed)

	if err != nil {
		return false, fmt.Errorf("failed to evaluate permission: %w", err)
	}

	return allowed, nil
}
