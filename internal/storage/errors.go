// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrCheckViolation      = errors.New("check constraint violation")
	ErrPermissionDenied    = errors.New("permission denied")
)

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeCheckViolation      = "23514"
	pgErrCodeInsufficientPriv    = "42501"
	pgErrCodeNoDataFound         = "P0002"
)

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeUniqueViolation
	}
	return false
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeForeignKeyViolation
	}
	return false
}

// IsNoRows reports whether err signals an empty result, whichever driver layer produced it.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// classify maps PostgreSQL failures onto the storage sentinels, keeping the original
// message so callers can still surface it.
func classify(err error, context string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", context, err)
	}

	switch pgErr.Code {
	case pgErrCodeUniqueViolation:
		return fmt.Errorf("%s: %s: %w", context, pgErr.Message, ErrDuplicateKey)
	case pgErrCodeForeignKeyViolation:
		return fmt.Errorf("%s: %s: %w", context, pgErr.Message, ErrForeignKeyViolation)
	case pgErrCodeCheckViolation:
		return fmt.Errorf("%s: %s: %w", context, pgErr.Message, ErrCheckViolation)
	case pgErrCodeInsufficientPriv:
		return fmt.Errorf("%s: %s: %w", context, pgErr.Message, ErrPermissionDenied)
	case pgErrCodeNoDataFound:
		return fmt.Errorf("%s: %s: %w", context, pgErr.Message, ErrNotFound)
	}

	return fmt.Errorf("%s: %w", context, err)
}
