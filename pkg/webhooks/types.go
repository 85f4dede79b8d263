// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// OrganizationsClaim lists the organization ids of the subject in issued tokens
const OrganizationsClaim = "organizations"

type KratosIdentity struct {
	ID     string       `json:"id"`
	Traits KratosTraits `json:"traits"`
}

type KratosTraits struct {
	Email    string     `json:"email"`
	Username string     `json:"username,omitempty"`
	Name     KratosName `json:"name"`
}

type KratosName struct {
	First string `json:"first,omitempty"`
	Last  string `json:"last,omitempty"`
}

// TokenHookResponse is merged by Hydra into the session of the token being issued
type TokenHookResponse struct {
	Session struct {
		IDToken     map[string]interface{} `json:"id_token,omitempty"`
		AccessToken map[string]interface{} `json:"access_token,omitempty"`
	} `json:"session"`
}
