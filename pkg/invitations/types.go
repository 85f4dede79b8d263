// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"github.com/canonical/workspace-service/internal/types"
)

const (
	RoleNoAccess = "no_access"

	successMessage = "Invitation sent successfully."
)

type CreateInvitationRequest struct {
	Email          string                     `json:"email" validate:"required,email"`
	OrgMemberRole  string                     `json:"org_member_role" validate:"required,oneof=admin member"`
	OrgID          string                     `json:"org_id" validate:"required,uuid"`
	InvitationType string                     `json:"invitation_type" validate:"required,oneof=one-time 24-hour"`
	TeamRoles      []types.TeamRoleAssignment `json:"team_roles" validate:"dive"`
}

// Config carries the invitation email settings
type Config struct {
	SiteURL string
	From    string
	Subject string
}
