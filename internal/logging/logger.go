// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a JSON logger writing to stderr, l is the level name and
// falls back to error when it can't be parsed.
func NewLogger(l string) *Logger {
	lvl, parseErr := zapcore.ParseLevel(strings.ToLower(l))
	if parseErr != nil {
		lvl = zapcore.ErrorLevel
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(lvl)
	c.EncoderConfig.TimeKey = "@timestamp"
	c.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	c.Sampling = nil

	z, err := c.Build()
	if err != nil {
		panic(err)
	}

	// security events are emitted regardless of the configured level
	c.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	s, err := c.Build()
	if err != nil {
		panic(err)
	}

	logger := new(Logger)
	logger.SugaredLogger = z.Sugar()
	logger.security = &SecurityLogger{l: s.With(zap.String("type", "security"))}

	if parseErr != nil {
		logger.Errorf("invalid log level %s, falling back to error", l)
	}

	return logger
}
