// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"github.com/canonical/workspace-service/internal/types"
)

// Entry is the editable state of one (resource, action) pair
type Entry struct {
	Resource    string                `json:"resource"`
	Action      string                `json:"action"`
	Enabled     bool                  `json:"enabled"`
	Scope       types.PermissionScope `json:"scope"`
	CascadeDown bool                  `json:"cascade_down"`
	TargetKind  string                `json:"target_kind"`
}

// Assignment is a desired grant submitted by a client
type Assignment struct {
	Resource    string                `json:"resource" validate:"required"`
	Action      string                `json:"action" validate:"required"`
	Scope       types.PermissionScope `json:"scope"`
	CascadeDown bool                  `json:"cascade_down"`
	TargetKind  string                `json:"target_kind"`
}

// Cell is an editor column for one resource, Entry is nil when the action is not offered
type Cell struct {
	Action string `json:"action"`
	Label  string `json:"label"`
	Entry  *Entry `json:"entry,omitempty"`
}

type Row struct {
	Resource Resource `json:"resource"`
	Cells    []Cell   `json:"cells"`
}

// Editor holds the permission state of a single role.
// Only pairs offered for the role scope are materialized, so persisted rows outside that
// set are dropped on the next submit.
type Editor struct {
	role    *types.Role
	entries map[string]*Entry
	order   []string
}

func NewEditor(role *types.Role, persisted []*types.RolePermission) *Editor {
	e := &Editor{
		role:    role,
		entries: make(map[string]*Entry),
	}

	for _, r := range Resources(role.Scope) {
		for _, action := range columns {
			if !r.allows(action) {
				continue
			}

			key := Key(r.Key, action)
			e.entries[key] = &Entry{
				Resource: r.Key,
				Action:   action,
				Scope:    types.PermissionScopeAll,
			}
			e.order = append(e.order, key)
		}
	}

	for _, p := range persisted {
		entry, ok := e.entries[Key(p.Resource, p.Action)]
		if !ok {
			continue
		}

		entry.Enabled = true
		if p.Scope.Valid() {
			entry.Scope = p.Scope
		}
		entry.CascadeDown = p.CascadeDown && role.Scope == types.RoleScopeOrganization
		if p.TargetKind != nil {
			entry.TargetKind = *p.TargetKind
		}
	}

	return e
}

func (e *Editor) Role() *types.Role {
	return e.role
}

func (e *Editor) entry(resource, action string) (*Entry, error) {
	entry, ok := e.entries[Key(resource, action)]
	if !ok {
		return nil, entryError(resource, action, ErrNotOffered)
	}
	return entry, nil
}

func (e *Editor) Toggle(resource, action string, enabled bool) error {
	entry, err := e.entry(resource, action)
	if err != nil {
		return err
	}

	entry.Enabled = enabled
	return nil
}

func (e *Editor) SetScope(resource, action string, scope types.PermissionScope) error {
	entry, err := e.entry(resource, action)
	if err != nil {
		return err
	}

	if !entry.Enabled {
		return entryError(resource, action, ErrNotEnabled)
	}

	if !scope.Valid() {
		return entryError(resource, action, ErrInvalidScope)
	}

	entry.Scope = scope
	return nil
}

func (e *Editor) SetCascade(resource, action string, cascade bool) error {
	entry, err := e.entry(resource, action)
	if err != nil {
		return err
	}

	if e.role.Scope != types.RoleScopeOrganization {
		return entryError(resource, action, ErrCascadeNotAllowed)
	}

	if !entry.Enabled {
		return entryError(resource, action, ErrNotEnabled)
	}

	entry.CascadeDown = cascade
	return nil
}

func (e *Editor) SetTargetKind(resource, action, kind string) error {
	entry, err := e.entry(resource, action)
	if err != nil {
		return err
	}

	entry.TargetKind = kind
	return nil
}

// Apply enables a pair with the attributes of the assignment, an empty scope means all
func (e *Editor) Apply(a Assignment) error {
	if err := e.Toggle(a.Resource, a.Action, true); err != nil {
		return err
	}

	scope := a.Scope
	if scope == "" {
		scope = types.PermissionScopeAll
	}

	if err := e.SetScope(a.Resource, a.Action, scope); err != nil {
		return err
	}

	if a.CascadeDown {
		if err := e.SetCascade(a.Resource, a.Action, true); err != nil {
			return err
		}
	}

	return e.SetTargetKind(a.Resource, a.Action, a.TargetKind)
}

func (e *Editor) Entry(resource, action string) (Entry, bool) {
	entry, ok := e.entries[Key(resource, action)]
	if !ok {
		return Entry{}, false
	}
	return *entry, true
}

// Entries returns every offered entry in matrix order
func (e *Editor) Entries() []Entry {
	out := make([]Entry, 0, len(e.order))
	for _, key := range e.order {
		out = append(out, *e.entries[key])
	}
	return out
}

// Rows lays the entries out in matrix rows and action columns
func (e *Editor) Rows() []Row {
	resources := Resources(e.role.Scope)
	rows := make([]Row, 0, len(resources))

	for _, r := range resources {
		row := Row{Resource: r, Cells: make([]Cell, 0, len(columns))}
		for _, action := range columns {
			cell := Cell{Action: action, Label: ActionLabel(action)}
			if entry, ok := e.entries[Key(r.Key, action)]; ok {
				copied := *entry
				cell.Entry = &copied
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}

	return rows
}

// Submit collects the enabled entries into the records that replace the role permissions
func (e *Editor) Submit() []*types.RolePermission {
	out := make([]*types.RolePermission, 0)

	for _, key := range e.order {
		entry := e.entries[key]
		if !entry.Enabled {
			continue
		}

		p := &types.RolePermission{
			RoleID:      e.role.ID,
			OrgID:       e.role.OrgID,
			Resource:    entry.Resource,
			Action:      entry.Action,
			Scope:       entry.Scope,
			CascadeDown: entry.CascadeDown,
		}

		if e.role.Scope == types.RoleScopeTeam {
			p.TeamID = e.role.TeamID
		}

		if entry.TargetKind != "" {
			kind := entry.TargetKind
			p.TargetKind = &kind
		}

		out = append(out, p)
	}

	return out
}

// FromAssignments builds the editor state for a complete desired permission set
func FromAssignments(role *types.Role, assignments []Assignment) (*Editor, error) {
	e := NewEditor(role, nil)
	seen := make(map[string]struct{}, len(assignments))

	for _, a := range assignments {
		key := Key(a.Resource, a.Action)
		if _, ok := seen[key]; ok {
			return nil, entryError(a.Resource, a.Action, ErrDuplicate)
		}
		seen[key] = struct{}{}

		if err := e.Apply(a); err != nil {
			return nil, err
		}
	}

	return e, nil
}
