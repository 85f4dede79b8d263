// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package email

import (
	"context"
)

type ProviderInterface interface {
	Send(ctx context.Context, msg *Message) (*Result, error)
	Name() string
}
