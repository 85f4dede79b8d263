// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/workspace-service/internal/types"
)

func (s *Storage) ListOrgMembers(ctx context.Context, orgID string) ([]*types.OrgMembership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrgMembers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("m.id", "m.org_id", "m.user_id", "m.created_at", "p.id", "p.first_name", "p.last_name", "p.user_name").
		From("org_memberships m").
		LeftJoin("profiles p ON p.id = m.user_id").
		Where(sq.Eq{"m.org_id": orgID}).
		OrderBy("m.created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list organization members: %w", err)
	}
	defer rows.Close()

	members := make([]*types.OrgMembership, 0)
	for rows.Next() {
		var m types.OrgMembership
		var profileID *string
		var p types.Profile

		if err := rows.Scan(&m.ID, &m.OrgID, &m.UserID, &m.CreatedAt, &profileID, &p.FirstName, &p.LastName, &p.UserName); err != nil {
			return nil, fmt.Errorf("failed to scan organization member: %w", err)
		}

		if profileID != nil {
			p.ID = *profileID
			m.Profile = &p
		}

		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) ListTeamMembers(ctx context.Context, teamID string) ([]*types.TeamMembership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTeamMembers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("m.id", "m.team_id", "m.user_id", "m.created_at", "p.id", "p.first_name", "p.last_name", "p.user_name").
		From("team_memberships m").
		LeftJoin("profiles p ON p.id = m.user_id").
		Where(sq.Eq{"m.team_id": teamID}).
		OrderBy("m.created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	members := make([]*types.TeamMembership, 0)
	for rows.Next() {
		var m types.TeamMembership
		var profileID *string
		var p types.Profile

		if err := rows.Scan(&m.ID, &m.TeamID, &m.UserID, &m.CreatedAt, &profileID, &p.FirstName, &p.LastName, &p.UserName); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}

		if profileID != nil {
			p.ID = *profileID
			m.Profile = &p
		}

		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}
