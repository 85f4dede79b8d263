// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"errors"
	"testing"

	"github.com/canonical/workspace-service/internal/types"
)

func strPtr(s string) *string {
	return &s
}

func orgRole() *types.Role {
	return &types.Role{ID: "role-1", OrgID: "org-1", Scope: types.RoleScopeOrganization, Name: "editors"}
}

func teamRole() *types.Role {
	return &types.Role{ID: "role-2", OrgID: "org-1", TeamID: strPtr("team-1"), Scope: types.RoleScopeTeam, Name: "writers"}
}

func pairs(ps []*types.RolePermission) map[string]types.PermissionScope {
	out := make(map[string]types.PermissionScope, len(ps))
	for _, p := range ps {
		out[Key(p.Resource, p.Action)] = p.Scope
	}
	return out
}

func TestNewEditorDefaults(t *testing.T) {
	e := NewEditor(teamRole(), nil)

	for _, entry := range e.Entries() {
		if entry.Enabled || entry.Scope != types.PermissionScopeAll || entry.CascadeDown || entry.TargetKind != "" {
			t.Errorf("unexpected default state %+v", entry)
		}
		if !Offered(types.RoleScopeTeam, entry.Resource, entry.Action) {
			t.Errorf("entry %s:%s is not offered for team roles", entry.Resource, entry.Action)
		}
	}

	if len(e.Submit()) != 0 {
		t.Errorf("a fresh editor must submit nothing")
	}
}

func TestNewEditorOverlaysPersisted(t *testing.T) {
	persisted := []*types.RolePermission{
		{Resource: "posts", Action: "edit", Scope: types.PermissionScopeOwn, TargetKind: strPtr("post")},
		{Resource: "members", Action: "view", Scope: types.PermissionScopeAll, CascadeDown: true},
		// not offered to organization roles, dropped on the next submit
		{Resource: "team_members", Action: "view", Scope: types.PermissionScopeAll},
	}

	e := NewEditor(orgRole(), persisted)

	entry, ok := e.Entry("posts", "edit")
	if !ok || !entry.Enabled || entry.Scope != types.PermissionScopeOwn || entry.TargetKind != "post" {
		t.Errorf("unexpected posts:edit state %+v", entry)
	}

	entry, _ = e.Entry("members", "view")
	if !entry.CascadeDown {
		t.Errorf("expected cascade to be kept for organization role")
	}

	if _, ok := e.Entry("team_members", "view"); ok {
		t.Errorf("team_members must not be materialized for organization roles")
	}

	got := pairs(e.Submit())
	if len(got) != 2 {
		t.Errorf("expected only offered rows to be submitted, got %v", got)
	}
}

func TestTeamRoleOwnScopedPosts(t *testing.T) {
	e := NewEditor(teamRole(), nil)

	for _, action := range []string{"view", "edit"} {
		if err := e.Toggle("posts", action, true); err != nil {
			t.Fatal(err)
		}
		if err := e.SetScope("posts", action, types.PermissionScopeOwn); err != nil {
			t.Fatal(err)
		}
	}

	submitted := e.Submit()
	if len(submitted) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(submitted))
	}

	for _, p := range submitted {
		if p.Resource != "posts" || p.Scope != types.PermissionScopeOwn {
			t.Errorf("unexpected row %+v", p)
		}
		if p.TeamID == nil || *p.TeamID != "team-1" || p.OrgID != "org-1" || p.RoleID != "role-2" {
			t.Errorf("row is not tagged with the role ownership %+v", p)
		}
		if p.TargetKind != nil {
			t.Errorf("empty target kind must be submitted as nil")
		}
	}
}

func TestDisableMembersDelete(t *testing.T) {
	persisted := []*types.RolePermission{
		{Resource: "members", Action: "view", Scope: types.PermissionScopeAll},
		{Resource: "members", Action: "delete", Scope: types.PermissionScopeAll},
		{Resource: "posts", Action: "create", Scope: types.PermissionScopeOwn},
	}

	e := NewEditor(orgRole(), persisted)
	if err := e.Toggle("members", "delete", false); err != nil {
		t.Fatal(err)
	}

	got := pairs(e.Submit())

	if _, ok := got["members-delete"]; ok {
		t.Errorf("members:delete should be gone")
	}
	if got["members-view"] != types.PermissionScopeAll || got["posts-create"] != types.PermissionScopeOwn {
		t.Errorf("other rows should be untouched, got %v", got)
	}
	for _, p := range e.Submit() {
		if p.TeamID != nil {
			t.Errorf("organization role rows must not carry a team id")
		}
	}
}

func TestSubmitReadBackIsStable(t *testing.T) {
	e := NewEditor(orgRole(), nil)
	_ = e.Toggle("teams", "create", true)
	_ = e.Toggle("posts", "view", true)
	_ = e.SetCascade("posts", "view", true)

	first := e.Submit()

	// reopening the editor on what was stored submits the same set
	second := NewEditor(orgRole(), first).Submit()

	if len(first) != len(second) {
		t.Fatalf("expected %d rows, got %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Resource != second[i].Resource || first[i].Action != second[i].Action ||
			first[i].Scope != second[i].Scope || first[i].CascadeDown != second[i].CascadeDown {
			t.Errorf("row %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestEditorMutationErrors(t *testing.T) {
	tests := []struct {
		name     string
		role     *types.Role
		mutate   func(*Editor) error
		expected error
	}{
		{
			name:     "toggle a pair that is not offered",
			role:     teamRole(),
			mutate:   func(e *Editor) error { return e.Toggle("billing", "view", true) },
			expected: ErrNotOffered,
		},
		{
			name:     "toggle an action the resource does not define",
			role:     orgRole(),
			mutate:   func(e *Editor) error { return e.Toggle("organizations", "create", true) },
			expected: ErrNotOffered,
		},
		{
			name:     "scope on a disabled entry",
			role:     orgRole(),
			mutate:   func(e *Editor) error { return e.SetScope("posts", "view", types.PermissionScopeOwn) },
			expected: ErrNotEnabled,
		},
		{
			name: "invalid scope",
			role: orgRole(),
			mutate: func(e *Editor) error {
				_ = e.Toggle("posts", "view", true)
				return e.SetScope("posts", "view", types.PermissionScope("mine"))
			},
			expected: ErrInvalidScope,
		},
		{
			name: "cascade on a team role",
			role: teamRole(),
			mutate: func(e *Editor) error {
				_ = e.Toggle("posts", "view", true)
				return e.SetCascade("posts", "view", true)
			},
			expected: ErrCascadeNotAllowed,
		},
		{
			name:     "cascade on a disabled entry",
			role:     orgRole(),
			mutate:   func(e *Editor) error { return e.SetCascade("posts", "view", true) },
			expected: ErrNotEnabled,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.mutate(NewEditor(test.role, nil))

			if !errors.Is(err, test.expected) {
				t.Errorf("expected %v, got %v", test.expected, err)
			}

			var entryErr *EntryError
			if !errors.As(err, &entryErr) {
				t.Errorf("expected an EntryError, got %T", err)
			}
		})
	}
}

func TestFromAssignments(t *testing.T) {
	tests := []struct {
		name        string
		role        *types.Role
		assignments []Assignment
		expected    error
		rows        int
	}{
		{
			name: "valid set with default scope",
			role: orgRole(),
			assignments: []Assignment{
				{Resource: "organizations", Action: "view"},
				{Resource: "posts", Action: "edit", Scope: types.PermissionScopeOwn, CascadeDown: true},
			},
			rows: 2,
		},
		{
			name:        "empty set clears the role",
			role:        teamRole(),
			assignments: []Assignment{},
			rows:        0,
		},
		{
			name: "duplicate pair",
			role: orgRole(),
			assignments: []Assignment{
				{Resource: "posts", Action: "view"},
				{Resource: "posts", Action: "view", Scope: types.PermissionScopeOwn},
			},
			expected: ErrDuplicate,
		},
		{
			name:        "cascade on team role",
			role:        teamRole(),
			assignments: []Assignment{{Resource: "posts", Action: "view", CascadeDown: true}},
			expected:    ErrCascadeNotAllowed,
		},
		{
			name:        "unknown resource",
			role:        orgRole(),
			assignments: []Assignment{{Resource: "widgets", Action: "view"}},
			expected:    ErrNotOffered,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e, err := FromAssignments(test.role, test.assignments)

			if test.expected != nil {
				if !errors.Is(err, test.expected) {
					t.Errorf("expected %v, got %v", test.expected, err)
				}
				return
			}

			if err != nil {
				t.Fatal(err)
			}

			if got := len(e.Submit()); got != test.rows {
				t.Errorf("expected %d rows, got %d", test.rows, got)
			}
		})
	}
}

func TestRows(t *testing.T) {
	e := NewEditor(teamRole(), []*types.RolePermission{{Resource: "posts", Action: "view", Scope: types.PermissionScopeOwn}})

	rows := e.Rows()
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows for a team role, got %d", len(rows))
	}

	for _, row := range rows {
		if len(row.Cells) != len(Columns()) {
			t.Errorf("row %s has %d cells", row.Resource.Key, len(row.Cells))
		}

		for _, cell := range row.Cells {
			offered := Offered(types.RoleScopeTeam, row.Resource.Key, cell.Action)
			if offered != (cell.Entry != nil) {
				t.Errorf("cell %s:%s offered=%v entry=%v", row.Resource.Key, cell.Action, offered, cell.Entry)
			}
			if row.Resource.Key == "posts" && cell.Action == "view" && (cell.Entry == nil || !cell.Entry.Enabled) {
				t.Errorf("posts:view should be enabled")
			}
		}
	}
}
