// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"time"
)

// RoleScope is the level a role applies to
type RoleScope string

const (
	RoleScopeOrganization RoleScope = "organization"
	RoleScopeTeam         RoleScope = "team"
)

func (s RoleScope) Valid() bool {
	return s == RoleScopeOrganization || s == RoleScopeTeam
}

// PermissionScope restricts a granted action to every record or to records owned by the actor
type PermissionScope string

const (
	PermissionScopeAll PermissionScope = "all"
	PermissionScopeOwn PermissionScope = "own"
)

func (s PermissionScope) Valid() bool {
	return s == PermissionScopeAll || s == PermissionScopeOwn
}

type Organization struct {
	ID                 string    `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	Slug               string    `json:"slug" db:"slug"`
	Type               string    `json:"type" db:"type"`
	PrimaryOwnerUserID string    `json:"primary_owner_user_id" db:"primary_owner_user_id"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

type Team struct {
	ID                 string    `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	OrgID              string    `json:"org_id" db:"org_id"`
	PrimaryOwnerUserID string    `json:"primary_owner_user_id" db:"primary_owner_user_id"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}

type OrgMembership struct {
	ID        string    `json:"id" db:"id"`
	OrgID     string    `json:"org_id" db:"org_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Profile   *Profile  `json:"profile,omitempty"`
	Email     string    `json:"email,omitempty"`
}

type TeamMembership struct {
	ID        string    `json:"id" db:"id"`
	TeamID    string    `json:"team_id" db:"team_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Profile   *Profile  `json:"profile,omitempty"`
}

type Role struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	DisplayName string    `json:"display_name" db:"display_name"`
	Description string    `json:"description" db:"description"`
	Scope       RoleScope `json:"scope" db:"scope"`
	OrgID       string    `json:"org_id" db:"org_id"`
	TeamID      *string   `json:"team_id" db:"team_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// RolePermission is a single granted (resource, action) for a role
type RolePermission struct {
	ID          string          `json:"id,omitempty" db:"id"`
	RoleID      string          `json:"role_id" db:"role_id"`
	OrgID       string          `json:"org_id" db:"org_id"`
	TeamID      *string         `json:"team_id" db:"team_id"`
	Resource    string          `json:"resource" db:"resource"`
	Action      string          `json:"action" db:"action"`
	Scope       PermissionScope `json:"scope" db:"scope"`
	CascadeDown bool            `json:"cascade_down" db:"cascade_down"`
	TargetKind  *string         `json:"target_kind" db:"target_kind"`
}

// TeamRoleAssignment is the team role granted by an invitation
type TeamRoleAssignment struct {
	TeamID   string `json:"team_id" validate:"required,uuid"`
	TeamName string `json:"team_name,omitempty"`
	Role     string `json:"role" validate:"required,oneof=no_access admin member"`
}

type Invitation struct {
	ID              string               `json:"id" db:"id"`
	Email           string               `json:"email" db:"email"`
	InvitationType  string               `json:"invitation_type" db:"invitation_type"`
	InvitedByUserID string               `json:"invited_by_user_id" db:"invited_by_user_id"`
	OrgID           string               `json:"org_id" db:"org_id"`
	OrgName         string               `json:"org_name" db:"org_name"`
	OrgMemberRole   string               `json:"org_member_role" db:"org_member_role"`
	TeamMemberRoles []TeamRoleAssignment `json:"team_member_roles" db:"team_member_roles"`
	CreatedAt       time.Time            `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at" db:"updated_at"`
}

type Post struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Slug      string    `json:"slug" db:"slug"`
	PostType  string    `json:"post_type" db:"post_type"`
	Status    string    `json:"post_status" db:"post_status"`
	OrgID     string    `json:"org_id" db:"org_id"`
	TeamID    string    `json:"team_id" db:"team_id"`
	CreatedBy string    `json:"created_by" db:"created_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type Profile struct {
	ID        string  `json:"id" db:"id"`
	FirstName *string `json:"first_name" db:"first_name"`
	LastName  *string `json:"last_name" db:"last_name"`
	UserName  *string `json:"user_name" db:"user_name"`
}

// MarshalTeamRoles encodes team role assignments for a jsonb column or procedure argument
func MarshalTeamRoles(roles []TeamRoleAssignment) (string, error) {
	if roles == nil {
		roles = []TeamRoleAssignment{}
	}

	raw, err := json.Marshal(roles)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}
