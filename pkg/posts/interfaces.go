// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package posts

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
)

type StorageInterface interface {
	CreatePost(ctx context.Context, post *types.Post) (*types.Post, error)
	GetPost(ctx context.Context, id string) (*types.Post, error)
	ListPosts(ctx context.Context, orgID, teamID string) ([]*types.Post, error)
	UpdatePostContent(ctx context.Context, id, title, content string) (*types.Post, error)
	DeletePost(ctx context.Context, id string) error
}

type ServiceInterface interface {
	ListPosts(ctx context.Context, orgID, teamID string) ([]*types.Post, error)
	GetPost(ctx context.Context, id string) (*types.Post, error)
	CreatePost(ctx context.Context, orgID, teamID string, req *CreatePostRequest) (*types.Post, error)
	UpdatePost(ctx context.Context, id string, req *UpdatePostRequest) (*types.Post, error)
	DeletePost(ctx context.Context, id string) error
}
