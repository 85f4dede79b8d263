// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"slices"

	"github.com/canonical/workspace-service/internal/types"
)

const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

// columns is the display order of actions in the editor
var columns = []string{ActionView, ActionCreate, ActionEdit, ActionDelete}

var actionLabels = map[string]string{
	ActionView:   "View",
	ActionCreate: "Create",
	ActionEdit:   "Edit",
	ActionDelete: "Delete",
}

var bothScopes = []types.RoleScope{types.RoleScopeOrganization, types.RoleScopeTeam}

// Resource is one row of the permission matrix
type Resource struct {
	Key         string            `json:"resource"`
	Label       string            `json:"label"`
	Description string            `json:"description"`
	Actions     []string          `json:"actions"`
	Scopes      []types.RoleScope `json:"scopes"`
}

func (r Resource) allows(action string) bool {
	return slices.Contains(r.Actions, action)
}

func (r Resource) offeredFor(scope types.RoleScope) bool {
	return slices.Contains(r.Scopes, scope)
}

// matrix is the single source of assignable permissions, every filter derives from it
var matrix = []Resource{
	{
		Key:         "organizations",
		Label:       "Organizations",
		Description: "Manage organization settings and details",
		Actions:     []string{ActionView, ActionEdit, ActionDelete},
		Scopes:      []types.RoleScope{types.RoleScopeOrganization},
	},
	{
		Key:         "billing",
		Label:       "Billing",
		Description: "Access and manage billing information",
		Actions:     []string{ActionView, ActionEdit},
		Scopes:      []types.RoleScope{types.RoleScopeOrganization},
	},
	{
		Key:         "members",
		Label:       "Members",
		Description: "Manage organization members",
		Actions:     []string{ActionView, ActionEdit, ActionDelete},
		Scopes:      bothScopes,
	},
	{
		Key:         "teams",
		Label:       "Teams",
		Description: "Manage teams within the organization",
		Actions:     []string{ActionView, ActionCreate, ActionEdit, ActionDelete},
		Scopes:      bothScopes,
	},
	{
		Key:         "team_members",
		Label:       "Team Members",
		Description: "Manage team members",
		Actions:     []string{ActionView, ActionEdit, ActionDelete},
		Scopes:      []types.RoleScope{types.RoleScopeTeam},
	},
	{
		Key:         "posts",
		Label:       "Posts",
		Description: "Manage posts and content",
		Actions:     []string{ActionView, ActionCreate, ActionEdit, ActionDelete},
		Scopes:      bothScopes,
	},
}

// Matrix returns the full ordered matrix
func Matrix() []Resource {
	return clone(matrix)
}

// Resources returns the matrix rows an editor offers for a role scope
func Resources(scope types.RoleScope) []Resource {
	out := make([]Resource, 0, len(matrix))
	for _, r := range matrix {
		if r.offeredFor(scope) {
			out = append(out, r)
		}
	}
	return clone(out)
}

func Lookup(resource string) (Resource, bool) {
	for _, r := range matrix {
		if r.Key == resource {
			return clone([]Resource{r})[0], true
		}
	}
	return Resource{}, false
}

// Allowed reports whether the matrix defines the action for the resource
func Allowed(resource, action string) bool {
	r, ok := Lookup(resource)
	return ok && r.allows(action)
}

// Offered reports whether a role of the given scope may be granted the pair
func Offered(scope types.RoleScope, resource, action string) bool {
	r, ok := Lookup(resource)
	return ok && r.offeredFor(scope) && r.allows(action)
}

func Columns() []string {
	return slices.Clone(columns)
}

// ActionLabel returns the display label, unknown actions are returned as is
func ActionLabel(action string) string {
	if l, ok := actionLabels[action]; ok {
		return l
	}
	return action
}

// Key identifies an editor entry
func Key(resource, action string) string {
	return resource + "-" + action
}

func clone(in []Resource) []Resource {
	out := make([]Resource, len(in))
	for i, r := range in {
		r.Actions = slices.Clone(r.Actions)
		r.Scopes = slices.Clone(r.Scopes)
		out[i] = r
	}
	return out
}
