// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/workspace-service/internal/types"
)

func scanProfile(row rowScanner) (*types.Profile, error) {
	var p types.Profile
	if err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.UserName); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Storage) GetProfile(ctx context.Context, id string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProfile")
	defer span.End()

	p, err := scanProfile(
		s.db.Statement(ctx).
			Select("id", "first_name", "last_name", "user_name").
			From("profiles").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

// UpsertProfile creates the profile of an identity or overwrites its names
func (s *Storage) UpsertProfile(ctx context.Context, profile *types.Profile) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertProfile")
	defer span.End()

	p, err := scanProfile(
		s.db.Statement(ctx).
			Insert("profiles").
			Columns("id", "first_name", "last_name", "user_name").
			Values(profile.ID, profile.FirstName, profile.LastName, profile.UserName).
			Suffix(
				"ON CONFLICT (id) DO UPDATE SET " +
					"first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name, user_name = EXCLUDED.user_name " +
					"RETURNING id, first_name, last_name, user_name",
			).
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, classify(err, "failed to upsert profile")
	}

	return p, nil
}

func (s *Storage) DeleteProfile(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteProfile")
	defer span.End()

	return s.deleteByID(ctx, "profiles", id)
}
