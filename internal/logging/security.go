// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"fmt"

	"go.uber.org/zap"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "sys_shutdown"))
}

func (s *SecurityLogger) AuthnSuccess(subject string) {
	s.l.Info(
		fmt.Sprintf("%s authenticated", subject),
		zap.String("event", fmt.Sprintf("authn_login_success:%s", subject)),
	)
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.l.Warn(
		fmt.Sprintf("authentication failed for %s", subject),
		zap.String("event", fmt.Sprintf("authn_login_fail:%s", subject)),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(subject, resource string) {
	s.l.Warn(
		fmt.Sprintf("%s attempted to access %s without entitlement", subject, resource),
		zap.String("event", fmt.Sprintf("authz_fail:%s,%s", subject, resource)),
	)
}

func (s *SecurityLogger) ResourceChange(subject, action, resource string) {
	s.l.Info(
		fmt.Sprintf("%s performed %s on %s", subject, action, resource),
		zap.String("event", fmt.Sprintf("%s:%s,%s", action, subject, resource)),
	)
}
