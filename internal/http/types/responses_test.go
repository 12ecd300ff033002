// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/types"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "field validation",
			err:         types.NewValidationError(map[string]string{"email": "email is required"}),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "email is required",
		},
		{
			name:        "wrapped validation",
			err:         fmt.Errorf("decode: %w", types.ErrValidation),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "validation error",
		},
		{
			name:       "duplicate",
			err:        fmt.Errorf("register: %w", types.ErrDuplicateIdentity),
			wantStatus: http.StatusConflict,
		},
		{
			name:        "missing token",
			err:         types.ErrMissingCredential,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "access token required",
		},
		{
			name:        "invalid token",
			err:         types.ErrInvalidCredential,
			wantStatus:  http.StatusForbidden,
			wantMessage: "invalid or expired token",
		},
		{
			name:        "bad login",
			err:         types.ErrInvalidCredentials,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid email or password",
		},
		{
			name:       "denied",
			err:        fmt.Errorf("company 8: %w", types.ErrAccessDenied),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "not found",
			err:        types.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:        "store failure",
			err:         fmt.Errorf("insert: %w", types.ErrStoreFailure),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: internalErrorMessage,
		},
		{
			name:        "unknown",
			err:         errors.New("pq: relation does not exist"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := StatusFromError(tt.err)

			if status != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, status)
			}
			if tt.wantMessage != "" && message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, message)
			}
		})
	}
}

func TestWriteErrorHidesInternals(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteError(rr, errors.New("dial tcp 10.0.0.1:5432: connection refused"), logging.NewNoopLogger())

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}

	var body ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if body.Status != http.StatusInternalServerError || body.Message != internalErrorMessage {
		t.Errorf("unexpected body %+v", body)
	}

	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected json content type, got %q", ct)
	}
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "object", body: `{"name":"Widget"}`},
		{name: "empty", body: ``, wantErr: true},
		{name: "malformed", body: `{"name":`, wantErr: true},
		{name: "wrong type", body: `{"name":5}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				Name string `json:"name"`
			}

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			err := DecodeJSON(rr, req, &v)

			if tt.wantErr {
				if !errors.Is(err, types.ErrValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Name != "Widget" {
				t.Errorf("expected Widget, got %q", v.Name)
			}
		})
	}
}
