// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/workspace-service/internal/types"
)

var teamColumns = []string{"id", "name", "org_id", "primary_owner_user_id", "created_at"}

func scanTeam(row rowScanner) (*types.Team, error) {
	var t types.Team
	if err := row.Scan(&t.ID, &t.Name, &t.OrgID, &t.PrimaryOwnerUserID, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTeam creates a team in orgID owned by the session user and returns its id
func (s *Storage) CreateTeam(ctx context.Context, orgID, name string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTeam")
	defer span.End()

	var id string
	err := s.db.Statement(ctx).
		Select().
		Column(sq.Expr("create_team_and_add_current_user_as_owner(?, ?)", name, orgID)).
		QueryRowContext(ctx).
		Scan(&id)

	if err != nil {
		return "", classify(err, "failed to create team")
	}

	return id, nil
}

func (s *Storage) GetTeam(ctx context.Context, id string) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTeam")
	defer span.End()

	t, err := scanTeam(
		s.db.Statement(ctx).
			Select(teamColumns...).
			From("teams").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return t, nil
}

func (s *Storage) ListTeams(ctx context.Context, orgID string) ([]*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTeams")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(teamColumns...).
		From("teams").
		Where(sq.Eq{"org_id": orgID}).
		OrderBy("name").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]*types.Team, 0)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return teams, nil
}

func (s *Storage) UpdateTeamName(ctx context.Context, id, name string) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTeamName")
	defer span.End()

	t, err := scanTeam(
		s.db.Statement(ctx).
			Update("teams").
			Set("name", name).
			Where(sq.Eq{"id": id}).
			Suffix("RETURNING id, name, org_id, primary_owner_user_id, created_at").
			QueryRowContext(ctx),
	)

	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, classify(err, "failed to update team")
	}

	return t, nil
}

func (s *Storage) DeleteTeam(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTeam")
	defer span.End()

	return s.deleteByID(ctx, "teams", id)
}
