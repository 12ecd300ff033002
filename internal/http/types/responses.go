// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/types"
)

// ErrorResponse is the body of every non 2xx response.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// MessageResponse acknowledges a mutation.
type MessageResponse struct {
	Message string `json:"message"`
	ID      *int64 `json:"id,omitempty"`
}

const (
	internalErrorMessage = "internal server error"
	maxBodyBytes         = 1 << 20
)

// DecodeJSON reads a single JSON object from the request body into v.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	if err := decoder.Decode(v); err != nil {
		return types.NewValidationError(map[string]string{"body": "invalid request body"})
	}

	return nil
}

// StatusFromError maps the error taxonomy onto HTTP. The second return value
// is the message that is safe to show to the client.
func StatusFromError(err error) (int, string) {
	var validationErr *types.ValidationError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case errors.Is(err, types.ErrValidation):
		return http.StatusBadRequest, types.ErrValidation.Error()
	case errors.Is(err, types.ErrDuplicateIdentity):
		return http.StatusConflict, types.ErrDuplicateIdentity.Error()
	case errors.Is(err, types.ErrMissingCredential):
		return http.StatusUnauthorized, "access token required"
	case errors.Is(err, types.ErrInvalidCredential):
		// a presented but unusable token is reported as forbidden
		return http.StatusForbidden, "invalid or expired token"
	case errors.Is(err, types.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, types.ErrUnauthenticated):
		return http.StatusUnauthorized, types.ErrUnauthenticated.Error()
	case errors.Is(err, types.ErrAccessDenied):
		return http.StatusForbidden, types.ErrAccessDenied.Error()
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound, types.ErrNotFound.Error()
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any, logger logging.LoggerInterface) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("failed to encode response: %v", err)
	}
}

// WriteError writes the mapped error body, internal details stay in the logs.
func WriteError(w http.ResponseWriter, err error, logger logging.LoggerInterface) {
	status, message := StatusFromError(err)

	if status == http.StatusInternalServerError {
		logger.Errorf("request failed: %v", err)
	}

	WriteJSON(w, status, ErrorResponse{Status: status, Message: message}, logger)
}
