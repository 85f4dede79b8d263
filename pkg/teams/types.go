// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package teams

type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type RenameTeamRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type PermissionCheck struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Allowed  bool   `json:"allowed"`
}
