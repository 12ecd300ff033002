// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"strconv"
)

// Identity is the authenticated company attached to a request.
type Identity struct {
	CompanyID   int64
	Email       string
	CompanyName string
}

// Subject is the company id in the form used for log events and the sub claim.
func (i *Identity) Subject() string {
	return strconv.FormatInt(i.CompanyID, 10)
}

// Define a private custom type to avoid collisions
type contextKey struct{}

var identityContextKey = contextKey{}

// WithIdentity returns a new context carrying the given identity.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// GetIdentity retrieves the identity from the context.
// Returns nil and false if no identity is present.
func GetIdentity(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(*Identity)
	if !ok || identity == nil {
		return nil, false
	}
	return identity, true
}
