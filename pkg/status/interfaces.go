// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import "context"

// PingerInterface is a dependency the service cannot serve requests without
type PingerInterface interface {
	Ping(ctx context.Context) error
}
