// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/permissions"
)

type CreateRoleRequest struct {
	Name        string          `json:"name" validate:"required,max=64"`
	DisplayName string          `json:"display_name" validate:"max=128"`
	Description string          `json:"description" validate:"max=512"`
	Scope       types.RoleScope `json:"scope" validate:"required,oneof=organization team"`
	TeamID      *string         `json:"team_id" validate:"omitempty,uuid"`
}

type ReplacePermissionsRequest struct {
	Permissions []permissions.Assignment `json:"permissions" validate:"dive"`
}

// EditorView is the permission editor of a role laid out as matrix rows
type EditorView struct {
	Role    *types.Role       `json:"role"`
	Columns []string          `json:"columns"`
	Rows    []permissions.Row `json:"rows"`
}
