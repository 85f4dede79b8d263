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

const (
	postReturning = "RETURNING id, title, content, slug, post_type, post_status, org_id, team_id, created_by, created_at, updated_at"

	// PostStatusDraft is the status every post starts in
	PostStatusDraft = "draft"
)

var postColumns = []string{"id", "title", "content", "slug", "post_type", "post_status", "org_id", "team_id", "created_by", "created_at", "updated_at"}

func scanPost(row rowScanner) (*types.Post, error) {
	var p types.Post
	var content, postType sql.NullString

	if err := row.Scan(&p.ID, &p.Title, &content, &p.Slug, &postType, &p.Status, &p.OrgID, &p.TeamID, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}

	p.Content = content.String
	p.PostType = postType.String
	return &p, nil
}

func (s *Storage) CreatePost(ctx context.Context, post *types.Post) (*types.Post, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePost")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate post ID: %w", err)
	}

	created, err := scanPost(
		s.db.Statement(ctx).
			Insert("posts").
			Columns("id", "title", "content", "slug", "post_type", "post_status", "org_id", "team_id", "created_by").
			Values(id.String(), post.Title, post.Content, post.Slug, post.PostType, PostStatusDraft, post.OrgID, post.TeamID, post.CreatedBy).
			Suffix(postReturning).
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, classify(err, "failed to insert post")
	}

	return created, nil
}

func (s *Storage) GetPost(ctx context.Context, id string) (*types.Post, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPost")
	defer span.End()

	p, err := scanPost(
		s.db.Statement(ctx).
			Select(postColumns...).
			From("posts").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return p, nil
}

func (s *Storage) ListPosts(ctx context.Context, orgID, teamID string) ([]*types.Post, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPosts")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(postColumns...).
		From("posts").
		Where(sq.Eq{"org_id": orgID, "team_id": teamID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*types.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return posts, nil
}

// UpdatePostContent updates the content, and the title when it is not empty
func (s *Storage) UpdatePostContent(ctx context.Context, id, title, content string) (*types.Post, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdatePostContent")
	defer span.End()

	query := s.db.Statement(ctx).
		Update("posts").
		Set("content", content).
		Set("updated_at", sq.Expr("now()"))

	if title != "" {
		query = query.Set("title", title)
	}

	p, err := scanPost(
		query.
			Where(sq.Eq{"id": id}).
			Suffix(postReturning).
			QueryRowContext(ctx),
	)

	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, classify(err, "failed to update post")
	}

	return p, nil
}

func (s *Storage) DeletePost(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeletePost")
	defer span.End()

	return s.deleteByID(ctx, "posts", id)
}
