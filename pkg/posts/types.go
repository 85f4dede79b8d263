// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package posts

const (
	// DefaultPostType is used when a post is created without a type
	DefaultPostType = "post"

	// Tag is the cache tag shared by every post listing, it is the tag clients revalidate
	Tag = "posts"
)

type CreatePostRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content"`
	PostType string `json:"post_type" validate:"omitempty,max=50"`
}

type UpdatePostRequest struct {
	Title   string `json:"title" validate:"omitempty,max=200"`
	Content string `json:"content"`
}
