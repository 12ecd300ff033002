// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/internal/types"
)

var _ PasswordHasherInterface = (*BcryptHasher)(nil)

type BcryptHasher struct {
	cost int

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// HashPassword returns a salted bcrypt hash, a fresh salt is drawn on every call.
func (h *BcryptHasher) HashPassword(ctx context.Context, password string) (string, error) {
	_, span := h.tracer.Start(ctx, "authentication.BcryptHasher.HashPassword")
	defer span.End()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", types.NewValidationError(map[string]string{"password": "password must be at most 72 bytes"})
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

func (h *BcryptHasher) ComparePassword(ctx context.Context, hash, password string) bool {
	_, span := h.tracer.Start(ctx, "authentication.BcryptHasher.ComparePassword")
	defer span.End()

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			h.logger.Debugf("password comparison failed: %v", err)
		}
		return false
	}

	return true
}

func (h *BcryptHasher) Cost() int {
	return h.cost
}

// NewBcryptHasher clamps cost into the range bcrypt accepts, zero selects bcrypt.DefaultCost.
func NewBcryptHasher(cost int, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *BcryptHasher {
	h := new(BcryptHasher)

	switch {
	case cost == 0:
		cost = bcrypt.DefaultCost
	case cost < bcrypt.MinCost:
		logger.Warnf("bcrypt cost %d below minimum, using %d", cost, bcrypt.MinCost)
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		logger.Warnf("bcrypt cost %d above maximum, using %d", cost, bcrypt.MaxCost)
		cost = bcrypt.MaxCost
	}

	h.cost = cost
	h.tracer = tracer
	h.monitor = monitor
	h.logger = logger

	return h
}
