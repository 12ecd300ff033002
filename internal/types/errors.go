// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrValidation is returned when the client sent incomplete or malformed input
	ErrValidation = errors.New("validation error")
	// ErrDuplicateIdentity is returned when registering an email that already exists
	ErrDuplicateIdentity = errors.New("email already registered")
	// ErrUnauthenticated groups every failure to establish who the caller is
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrAccessDenied is returned when the caller is authenticated but not entitled
	ErrAccessDenied = errors.New("access denied")
	ErrNotFound     = errors.New("not found")
	// ErrStoreFailure wraps any underlying persistence error
	ErrStoreFailure = errors.New("store failure")
)

var (
	ErrMissingCredential  = fmt.Errorf("%w: access token required", ErrUnauthenticated)
	ErrInvalidCredential  = fmt.Errorf("%w: invalid or expired token", ErrUnauthenticated)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthenticated)
)

// ValidationError carries a message per offending field
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}

	return strings.Join(msgs, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
