// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package migrations

import "embed"

// EmbedMigrations holds the goose SQL migrations applied by the migrate command
//
//go:embed *.sql
var EmbedMigrations embed.FS
