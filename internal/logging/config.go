// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"encoding/json"

	"go.uber.org/zap"
)

func zapConfig(raw []byte) (zap.Config, error) {
	var cfg zap.Config

	if err := json.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
