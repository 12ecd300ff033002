// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/internal/types"
)

// TokenLifetime is fixed, tokens cannot be revoked before they expire.
const TokenLifetime = time.Hour

var (
	// ErrInvalidToken is the only error VerifyToken returns.
	ErrInvalidToken = types.ErrInvalidCredential

	ErrMissingSecret = errors.New("token signing secret is required")
	ErrShortSecret   = fmt.Errorf("token signing secret must be at least %d bytes", MinSecretLength)
)

// MinSecretLength matches the HS256 output size.
const MinSecretLength = 32

var (
	_ TokenVerifierInterface = (*TokenService)(nil)
	_ TokenIssuerInterface   = (*TokenService)(nil)
)

type sessionClaims struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens with a process wide secret.
type TokenService struct {
	secret []byte
	now    func() time.Time
	parser *jwt.Parser

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *TokenService) IssueToken(ctx context.Context, identity *Identity) (string, error) {
	_, span := s.tracer.Start(ctx, "authentication.TokenService.IssueToken")
	defer span.End()

	if identity == nil {
		return "", fmt.Errorf("cannot issue a token without an identity")
	}

	now := s.now()
	claims := sessionClaims{
		ID:          identity.CompanyID,
		Email:       identity.Email,
		CompanyName: identity.CompanyName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(identity.CompanyID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
			ID:        uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

func (s *TokenService) VerifyToken(ctx context.Context, rawToken string) (*Identity, error) {
	_, span := s.tracer.Start(ctx, "authentication.TokenService.VerifyToken")
	defer span.End()

	claims := new(sessionClaims)
	if _, err := s.parser.ParseWithClaims(rawToken, claims, s.key); err != nil {
		s.logger.Debugf("token verification failed: %v", err)
		return nil, ErrInvalidToken
	}

	if claims.ID <= 0 || claims.Subject != strconv.FormatInt(claims.ID, 10) {
		s.logger.Debugf("token claims are inconsistent, sub %q id %d", claims.Subject, claims.ID)
		return nil, ErrInvalidToken
	}

	return &Identity{
		CompanyID:   claims.ID,
		Email:       claims.Email,
		CompanyName: claims.CompanyName,
	}, nil
}

func (s *TokenService) key(*jwt.Token) (any, error) {
	return s.secret, nil
}

// NewTokenService fails when secret is empty so that a misconfigured process never starts.
func NewTokenService(secret string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*TokenService, error) {
	return newTokenService(secret, time.Now, tracer, monitor, logger)
}

func newTokenService(secret string, now func() time.Time, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*TokenService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	if len(secret) < MinSecretLength {
		return nil, ErrShortSecret
	}

	s := new(TokenService)
	s.secret = []byte(secret)
	s.now = now
	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(now),
	)

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s, nil
}
