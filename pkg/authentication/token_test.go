// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/internal/types"
)

const testSecret = "a-test-secret-that-is-long-enough"

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func newTestTokenService(t *testing.T, secret string, clock *fakeClock) *TokenService {
	t.Helper()

	logger := logging.NewNoopLogger()
	s, err := newTokenService(secret, clock.Now, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
	require.NoError(t, err)

	return s
}

func TestNewTokenServiceRequiresSecret(t *testing.T) {
	logger := logging.NewNoopLogger()

	s, err := NewTokenService("", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestNewTokenServiceRejectsShortSecret(t *testing.T) {
	logger := logging.NewNoopLogger()

	s, err := NewTokenService(strings.Repeat("x", MinSecretLength-1), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrShortSecret)

	s, err = NewTokenService(strings.Repeat("x", MinSecretLength), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	assert.NoError(t, err)
	assert.NotNil(t, s)
}

func TestTokenRoundTrip(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	s := newTestTokenService(t, testSecret, clock)

	identity := &Identity{CompanyID: 7, Email: "acme@example.com", CompanyName: "Acme"}

	token, err := s.IssueToken(context.Background(), identity)
	require.NoError(t, err)

	got, err := s.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestTokenClaims(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := newTestTokenService(t, testSecret, &fakeClock{t: issued})

	token, err := s.IssueToken(context.Background(), &Identity{CompanyID: 42, Email: "a@b.c", CompanyName: "B"})
	require.NoError(t, err)

	claims := new(sessionClaims)
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.ID)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.RegisteredClaims.ID)
	assert.True(t, claims.IssuedAt.Time.Equal(issued))
	assert.True(t, claims.ExpiresAt.Time.Equal(issued.Add(TokenLifetime)))
}

func TestTokenIDsAreUnique(t *testing.T) {
	s := newTestTokenService(t, testSecret, &fakeClock{t: time.Now()})
	identity := &Identity{CompanyID: 1, Email: "a@b.c", CompanyName: "B"}

	first, err := s.IssueToken(context.Background(), identity)
	require.NoError(t, err)
	second, err := s.IssueToken(context.Background(), identity)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTokenExpiry(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		valid   bool
	}{
		{name: "fresh", elapsed: 0, valid: true},
		{name: "almost expired", elapsed: TokenLifetime - time.Second, valid: true},
		{name: "at expiry", elapsed: TokenLifetime, valid: false},
		{name: "expired", elapsed: TokenLifetime + time.Minute, valid: false},
		{name: "issued in the future", elapsed: -time.Minute, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{t: issued}
			s := newTestTokenService(t, testSecret, clock)

			token, err := s.IssueToken(context.Background(), &Identity{CompanyID: 7, Email: "a@b.c", CompanyName: "B"})
			require.NoError(t, err)

			clock.t = issued.Add(tt.elapsed)
			identity, err := s.VerifyToken(context.Background(), token)

			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, int64(7), identity.CompanyID)
				return
			}
			assert.Nil(t, identity)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenTamperingInvalidates(t *testing.T) {
	s := newTestTokenService(t, testSecret, &fakeClock{t: time.Now()})

	token, err := s.IssueToken(context.Background(), &Identity{CompanyID: 7, Email: "a@b.c", CompanyName: "B"})
	require.NoError(t, err)

	for i := range token {
		replacement := byte('A')
		if token[i] == 'A' {
			replacement = 'B'
		}
		tampered := token[:i] + string(replacement) + token[i+1:]

		identity, err := s.VerifyToken(context.Background(), tampered)
		if !assert.ErrorIs(t, err, ErrInvalidToken, "byte %d", i) {
			continue
		}
		assert.Nil(t, identity)
	}
}

func TestTokenRejections(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	s := newTestTokenService(t, testSecret, clock)
	other := newTestTokenService(t, "another-secret-that-is-long-enough", clock)

	foreign, err := other.IssueToken(context.Background(), &Identity{CompanyID: 7, Email: "a@b.c", CompanyName: "B"})
	require.NoError(t, err)

	now := clock.Now()
	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		ID:               7,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "7", IssuedAt: jwt.NewNumericDate(now)},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, sessionClaims{
		ID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, sessionClaims{
		ID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	mismatchedSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		ID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "8",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tokens := map[string]string{
		"empty":              "",
		"garbage":            "not-a-token",
		"two segments":       strings.Join(strings.Split(foreign, ".")[:2], "."),
		"other secret":       foreign,
		"no expiry":          noExpiry,
		"wrong algorithm":    wrongAlg,
		"none algorithm":     unsigned,
		"mismatched subject": mismatchedSubject,
	}

	for name, token := range tokens {
		t.Run(name, func(t *testing.T) {
			identity, err := s.VerifyToken(context.Background(), token)

			assert.Nil(t, identity)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.ErrorIs(t, err, types.ErrUnauthenticated)
		})
	}
}
