// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	eventSystemStartup  = "sys_startup"
	eventSystemShutdown = "sys_shutdown"
	eventAuthnFailure   = "authn_login_fail"
	eventAuthzFailure   = "authz_fail"
	eventAdminAction    = "admin_action"
)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system started", zap.String("event", eventSystemStartup))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shut down", zap.String("event", eventSystemShutdown))
}

func (s *SecurityLogger) AuthnFailure(reason string) {
	s.l.Warn("authentication failed", zap.String("event", eventAuthnFailure), zap.String("reason", reason))
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.l.Warn(
		"authorization failed",
		zap.String("event", eventAuthzFailure+":"+userID+","+resource),
		zap.String("user_id", userID),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AdminAction(userID, action, resource, resourceID string) {
	s.l.Info(
		"admin action",
		zap.String("event", eventAdminAction+":"+userID+","+action+","+resource),
		zap.String("user_id", userID),
		zap.String("action", action),
		zap.String("resource", resource),
		zap.String("resource_id", resourceID),
	)
}
