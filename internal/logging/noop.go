// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// NewNoopLogger discards everything, security events included
func NewNoopLogger() *Logger {
	return newLoggerFromCore(zapcore.NewNopCore())
}

// NewObservedLogger keeps entries at or above level in memory so tests can assert on
// application and security events alike
func NewObservedLogger(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return newLoggerFromCore(core), logs
}

func newLoggerFromCore(core zapcore.Core) *Logger {
	l := zap.New(core)

	return &Logger{
		SugaredLogger: l.Sugar(),
		security:      &SecurityLogger{l: l},
	}
}
