// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package posts

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"

	"github.com/canonical/workspace-service/internal/cache"
	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/authentication"
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

// ListPosts returns the team's posts visible to the current user, newest first
func (s *Service) ListPosts(ctx context.Context, orgID, teamID string) ([]*types.Post, error) {
	ctx, span := s.tracer.Start(ctx, "posts.Service.ListPosts")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	return cache.Fetch(ctx, s.cache, s.logger, cache.Key(Tag, orgID, teamID, userID), []string{Tag, cache.TeamTag(teamID)},
		func(ctx context.Context) ([]*types.Post, error) {
			return s.storage.ListPosts(ctx, orgID, teamID)
		},
	)
}

func (s *Service) GetPost(ctx context.Context, id string) (*types.Post, error) {
	ctx, span := s.tracer.Start(ctx, "posts.Service.GetPost")
	defer span.End()

	post, err := s.storage.GetPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

func (s *Service) CreatePost(ctx context.Context, orgID, teamID string, req *CreatePostRequest) (*types.Post, error) {
	ctx, span := s.tracer.Start(ctx, "posts.Service.CreatePost")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		return nil, fmt.Errorf("no user in context")
	}

	postSlug := slug.Make(req.Title)
	if postSlug == "" {
		return nil, httptypes.NewBadRequestError("title %q does not produce a slug", req.Title)
	}

	postType := req.PostType
	if postType == "" {
		postType = DefaultPostType
	}

	post, err := s.storage.CreatePost(ctx, &types.Post{
		Title:     req.Title,
		Content:   req.Content,
		Slug:      postSlug,
		PostType:  postType,
		OrgID:     orgID,
		TeamID:    teamID,
		CreatedBy: userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.invalidate(ctx, cache.TeamTag(teamID))
	return post, nil
}

func (s *Service) UpdatePost(ctx context.Context, id string, req *UpdatePostRequest) (*types.Post, error) {
	ctx, span := s.tracer.Start(ctx, "posts.Service.UpdatePost")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	post, err := s.storage.UpdatePostContent(ctx, id, req.Title, req.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	s.invalidate(ctx, cache.TeamTag(post.TeamID))
	return post, nil
}

func (s *Service) DeletePost(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "posts.Service.DeletePost")
	defer span.End()

	post, err := s.storage.GetPost(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}

	if err := s.storage.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.invalidate(ctx, cache.TeamTag(post.TeamID))
	return nil
}

func (s *Service) invalidate(ctx context.Context, tags ...string) {
	if err := cache.Invalidate(ctx, s.cache, tags...); err != nil {
		s.logger.Warnf("failed to invalidate cache: %v", err)
	}
}
