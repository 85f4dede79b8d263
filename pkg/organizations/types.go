// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"github.com/canonical/workspace-service/internal/types"
)

type CreateOrganizationRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Slug string `json:"slug" validate:"omitempty,max=100"`
}

type OnboardingRequest struct {
	OrgName  string `json:"org_name" validate:"required,max=100"`
	TeamName string `json:"team_name" validate:"required,max=100"`
}

type RenameRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// Onboarding is the organization and first team created for a new user
type Onboarding struct {
	Organization *types.Organization `json:"organization"`
	Team         *types.Team         `json:"team"`
}

type PermissionCheck struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Allowed  bool   `json:"allowed"`
}
