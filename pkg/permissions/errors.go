// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"errors"
	"fmt"
)

var (
	ErrNotOffered        = errors.New("permission is not offered for this role")
	ErrNotEnabled        = errors.New("permission is not enabled")
	ErrInvalidScope      = errors.New("invalid permission scope")
	ErrCascadeNotAllowed = errors.New("cascade is only available to organization roles")
	ErrDuplicate         = errors.New("duplicate permission")
)

// EntryError ties an editor failure to the entry that caused it
type EntryError struct {
	Resource string
	Action   string
	Err      error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s:%s: %v", e.Resource, e.Action, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

func entryError(resource, action string, err error) error {
	return &EntryError{Resource: resource, Action: action, Err: err}
}
