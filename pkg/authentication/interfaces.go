// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw JWT string and returns the identity it was issued for
	// Every failure is reported as the same invalid credential error
	VerifyToken(ctx context.Context, rawToken string) (*Identity, error)
}

type TokenIssuerInterface interface {
	IssueToken(ctx context.Context, identity *Identity) (string, error)
}

type PasswordHasherInterface interface {
	HashPassword(ctx context.Context, password string) (string, error)
	// ComparePassword reports whether password matches hash, it never errors
	ComparePassword(ctx context.Context, hash, password string) bool
}
