// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

// Security returns the logger dedicated to security events
func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a new default logger
// it will need to be closed with
// ```
// defer logger.Desugar().Sync()
// ```
// to make sure all has been piped out before terminating
func NewLogger(l string) *Logger {
	var lvl string

	switch strings.ToLower(l) {
	case "debug", "info", "warn", "error":
		lvl = strings.ToLower(l)
	default:
		lvl = "error"
	}

	rawJSON := []byte(
		`{
			"level": "` + lvl + `",
			"encoding": "json",
			"outputPaths": ["stdout"],
			"errorOutputPaths": ["stdout","stderr"],
			"encoderConfig": {
				"messageKey": "message",
				"levelKey": "severity",
				"levelEncoder": "lowercase",
				"timeKey": "@timestamp",
				"timeEncoder": "rfc3339nano"
			}
		}`,
	)

	config, err := zapConfig(rawJSON)
	if err != nil {
		panic(err)
	}

	config.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	base := zap.Must(config.Build())

	return &Logger{
		SugaredLogger: base.Sugar(),
		security:      &SecurityLogger{l: base.With(zap.String("type", "security"))},
	}
}
