// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/workspace-service/internal/types"
)

var organizationColumns = []string{"id", "name", "slug", "type", "primary_owner_user_id", "created_at", "updated_at"}

func scanOrganization(row rowScanner) (*types.Organization, error) {
	var o types.Organization
	if err := row.Scan(&o.ID, &o.Name, &o.Slug, &o.Type, &o.PrimaryOwnerUserID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOrganization creates the organization through the database procedure that also
// makes the session user its owner, it returns the new organization id
func (s *Storage) CreateOrganization(ctx context.Context, name, slug string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganization")
	defer span.End()

	var id string
	err := s.db.Statement(ctx).
		Select().
		Column(sq.Expr("create_organization_and_add_current_user_as_owner(?, ?)", name, slug)).
		QueryRowContext(ctx).
		Scan(&id)

	if err != nil {
		return "", classify(err, "failed to create organization")
	}

	return id, nil
}

func (s *Storage) GetOrganization(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganization")
	defer span.End()

	o, err := scanOrganization(
		s.db.Statement(ctx).
			Select(organizationColumns...).
			From("organizations").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return o, nil
}

func (s *Storage) ListOrganizationsByUserID(ctx context.Context, userID string) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrganizationsByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("o.id", "o.name", "o.slug", "o.type", "o.primary_owner_user_id", "o.created_at", "o.updated_at").
		From("organizations o").
		Join("org_memberships m ON m.org_id = o.id").
		Where(sq.Eq{"m.user_id": userID}).
		OrderBy("o.name").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	orgs := make([]*types.Organization, 0)
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return orgs, nil
}

func (s *Storage) UpdateOrganizationName(ctx context.Context, id, name string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateOrganizationName")
	defer span.End()

	o, err := scanOrganization(
		s.db.Statement(ctx).
			Update("organizations").
			Set("name", name).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": id}).
			Suffix("RETURNING id, name, slug, type, primary_owner_user_id, created_at, updated_at").
			QueryRowContext(ctx),
	)

	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, classify(err, "failed to update organization")
	}

	return o, nil
}

func (s *Storage) DeleteOrganization(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteOrganization")
	defer span.End()

	return s.deleteByID(ctx, "organizations", id)
}

// deleteByID removes a single row and reports ErrNotFound when nothing matched,
// row level security turns unauthorized deletes into the same outcome
func (s *Storage) deleteByID(ctx context.Context, table, id string) error {
	res, err := s.db.Statement(ctx).
		Delete(table).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return classify(err, fmt.Sprintf("failed to delete from %s", table))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}
