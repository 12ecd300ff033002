// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/canonical/company-service/internal/logging"
)

func TestTransactionMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		method string
		status int
		expect func(sqlmock.Sqlmock)
	}{
		{
			name:   "GET requests skip the transaction",
			method: http.MethodGet,
			status: http.StatusOK,
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE companies").WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "successful mutation commits",
			method: http.MethodPut,
			status: http.StatusOK,
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE companies").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:   "failed mutation rolls back",
			method: http.MethodPut,
			status: http.StatusForbidden,
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE companies").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectRollback()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock := newTestClient(t)
			tt.expect(mock)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctx := r.Context()
				if _, err := client.Statement(ctx).Update("companies").Set("company_name", "Acme").Where("id = ?", 1).ExecContext(ctx); err != nil {
					t.Errorf("unexpected exec error: %v", err)
				}
				w.WriteHeader(tt.status)
			})

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/companies/1", nil)

			TransactionMiddleware(client, logging.NewNoopLogger())(handler).ServeHTTP(rr, req)

			if rr.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, rr.Code)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}
