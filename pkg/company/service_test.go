// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/company-service/internal/storage"
	"github.com/canonical/company-service/internal/types"
	"github.com/canonical/company-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package company -destination ./mock_company.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package company -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package company -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package company -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	storage  *MockStorageInterface
	authz    *MockAuthzInterface
	hasher   *MockPasswordHasherInterface
	tokens   *MockTokenIssuerInterface
	logger   *MockLoggerInterface
	security *MockSecurityLoggerInterface
}

func setupService(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	m := &serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		authz:    NewMockAuthzInterface(ctrl),
		hasher:   NewMockPasswordHasherInterface(ctrl),
		tokens:   NewMockTokenIssuerInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
	}

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()
	m.logger.EXPECT().Security().Return(m.security).AnyTimes()

	s := NewService(m.storage, m.authz, m.hasher, m.tokens, mockTracer, NewMockMonitorInterface(ctrl), m.logger)
	return s, m
}

func TestService_RegisterCompany(t *testing.T) {
	tests := []struct {
		name        string
		companyName string
		email       string
		password    string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:        "success",
			companyName: "Acme",
			email:       "acme@example.com",
			password:    "s3cret",
			setupMocks: func(m *serviceMocks) {
				m.hasher.EXPECT().HashPassword(gomock.Any(), "s3cret").Return("hashed", nil)
				m.storage.EXPECT().CreateCompany(gomock.Any(), &types.Company{Name: "Acme", Email: "acme@example.com", PasswordHash: "hashed"}).
					Return(&types.Company{ID: 1, Name: "Acme", Email: "acme@example.com", PasswordHash: "hashed"}, nil)
				m.security.EXPECT().ResourceChange("1", "create", "company:1")
			},
		},
		{
			name:        "duplicate email",
			companyName: "Acme Two",
			email:       "acme@example.com",
			password:    "other",
			setupMocks: func(m *serviceMocks) {
				m.hasher.EXPECT().HashPassword(gomock.Any(), "other").Return("hashed", nil)
				m.storage.EXPECT().CreateCompany(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("company email: %w", storage.ErrDuplicateKey))
			},
			expectedErr: types.ErrDuplicateIdentity,
		},
		{
			name:        "missing name",
			companyName: "   ",
			email:       "acme@example.com",
			password:    "s3cret",
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "missing email",
			companyName: "Acme",
			email:       "",
			password:    "s3cret",
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "missing password",
			companyName: "Acme",
			email:       "acme@example.com",
			password:    "",
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "store failure",
			companyName: "Acme",
			email:       "acme@example.com",
			password:    "s3cret",
			setupMocks: func(m *serviceMocks) {
				m.hasher.EXPECT().HashPassword(gomock.Any(), "s3cret").Return("hashed", nil)
				m.storage.EXPECT().CreateCompany(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("insert: %w", types.ErrStoreFailure))
			},
			expectedErr: types.ErrStoreFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := setupService(ctrl)
			tt.setupMocks(m)

			company, err := s.RegisterCompany(context.Background(), tt.companyName, tt.email, tt.password)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected %v, got %v", tt.expectedErr, err)
				}
				if company != nil {
					t.Errorf("expected no company, got %+v", company)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if company.ID != 1 {
				t.Errorf("expected id 1, got %d", company.ID)
			}
		})
	}
}

func TestService_VerifyPassword(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*serviceMocks)
		expected   bool
	}{
		{
			name: "match",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetPasswordHash(gomock.Any(), int64(3)).Return("hashed", nil)
				m.hasher.EXPECT().ComparePassword(gomock.Any(), "hashed", "pw").Return(true)
			},
			expected: true,
		},
		{
			name: "mismatch",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetPasswordHash(gomock.Any(), int64(3)).Return("hashed", nil)
				m.hasher.EXPECT().ComparePassword(gomock.Any(), "hashed", "pw").Return(false)
			},
			expected: false,
		},
		{
			name: "unknown company",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetPasswordHash(gomock.Any(), int64(3)).Return("", storage.ErrNotFound)
			},
			expected: false,
		},
		{
			name: "store failure",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetPasswordHash(gomock.Any(), int64(3)).Return("", errors.New("boom"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := setupService(ctrl)
			tt.setupMocks(m)

			if got := s.VerifyPassword(context.Background(), 3, "pw"); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestService_Login(t *testing.T) {
	stored := &types.Company{ID: 7, Name: "Acme", Email: "acme@example.com", PasswordHash: "hashed"}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMocks    func(*serviceMocks)
		expectedToken string
		expectedErr   error
	}{
		{
			name:     "success",
			email:    "acme@example.com",
			password: "s3cret",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetCompanyByEmail(gomock.Any(), "acme@example.com").Return(stored, nil)
				m.hasher.EXPECT().ComparePassword(gomock.Any(), "hashed", "s3cret").Return(true)
				m.tokens.EXPECT().IssueToken(gomock.Any(), &authentication.Identity{CompanyID: 7, Email: "acme@example.com", CompanyName: "Acme"}).
					Return("signed-token", nil)
				m.security.EXPECT().AuthnSuccess("7")
			},
			expectedToken: "signed-token",
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "s3cret",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetCompanyByEmail(gomock.Any(), "nobody@example.com").Return(nil, storage.ErrNotFound)
				m.hasher.EXPECT().HashPassword(gomock.Any(), decoyPassword).Return("decoy-hash", nil)
				m.hasher.EXPECT().ComparePassword(gomock.Any(), "decoy-hash", "s3cret").Return(false)
				m.security.EXPECT().AuthnFailure("nobody@example.com", gomock.Any())
			},
			expectedErr: types.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "acme@example.com",
			password: "wrong",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetCompanyByEmail(gomock.Any(), "acme@example.com").Return(stored, nil)
				m.hasher.EXPECT().ComparePassword(gomock.Any(), "hashed", "wrong").Return(false)
				m.security.EXPECT().AuthnFailure("acme@example.com", gomock.Any())
			},
			expectedErr: types.ErrInvalidCredentials,
		},
		{
			name:        "missing password",
			email:       "acme@example.com",
			password:    "",
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:     "store failure",
			email:    "acme@example.com",
			password: "s3cret",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetCompanyByEmail(gomock.Any(), "acme@example.com").
					Return(nil, fmt.Errorf("select: %w", types.ErrStoreFailure))
			},
			expectedErr: types.ErrStoreFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := setupService(ctrl)
			tt.setupMocks(m)

			token, company, err := s.Login(context.Background(), tt.email, tt.password)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected %v, got %v", tt.expectedErr, err)
				}
				if token != "" || company != nil {
					t.Errorf("expected no token and no company")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token != tt.expectedToken {
				t.Errorf("expected token %q, got %q", tt.expectedToken, token)
			}
			if company.ID != 7 {
				t.Errorf("expected company 7, got %d", company.ID)
			}
		})
	}
}

func TestService_LoginFailuresAreIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := setupService(ctrl)

	m.storage.EXPECT().GetCompanyByEmail(gomock.Any(), "nobody@example.com").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().GetCompanyByEmail(gomock.Any(), "acme@example.com").
		Return(&types.Company{ID: 7, Email: "acme@example.com", PasswordHash: "hashed"}, nil)
	m.hasher.EXPECT().HashPassword(gomock.Any(), decoyPassword).Return("decoy-hash", nil)
	m.hasher.EXPECT().ComparePassword(gomock.Any(), "decoy-hash", "wrong").Return(false)
	m.hasher.EXPECT().ComparePassword(gomock.Any(), "hashed", "wrong").Return(false)
	m.security.EXPECT().AuthnFailure(gomock.Any(), gomock.Any()).Times(2)

	_, _, unknownErr := s.Login(context.Background(), "nobody@example.com", "wrong")
	_, _, wrongErr := s.Login(context.Background(), "acme@example.com", "wrong")

	if unknownErr == nil || wrongErr == nil {
		t.Fatal("expected both logins to fail")
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("login failures differ: %q vs %q", unknownErr, wrongErr)
	}
}

func TestService_LoginUnknownEmailRunsBcrypt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := setupService(ctrl)

	m.storage.EXPECT().GetCompanyByEmail(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound).Times(3)
	m.hasher.EXPECT().HashPassword(gomock.Any(), decoyPassword).Return("", errors.New("boom")).Times(1)
	m.hasher.EXPECT().ComparePassword(gomock.Any(), fallbackDecoyHash, gomock.Any()).Return(false).Times(3)
	m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
	m.security.EXPECT().AuthnFailure(gomock.Any(), "unknown email").Times(3)

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if _, _, err := s.Login(context.Background(), email, "guess"); !errors.Is(err, types.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	}
}

func TestFallbackDecoyHashIsBcrypt(t *testing.T) {
	cost, err := bcrypt.Cost([]byte(fallbackDecoyHash))
	if err != nil {
		t.Fatalf("fallback decoy hash is not a bcrypt hash: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected cost %d, got %d", bcrypt.DefaultCost, cost)
	}

	err = bcrypt.CompareHashAndPassword([]byte(fallbackDecoyHash), []byte("guess"))
	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		t.Errorf("expected a full bcrypt comparison, got %v", err)
	}
}

func TestService_UpdateCompanyProfile(t *testing.T) {
	caller := &authentication.Identity{CompanyID: 7, Email: "acme@example.com", CompanyName: "Acme"}

	tests := []struct {
		name        string
		caller      *authentication.Identity
		targetID    string
		newName     string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:     "success",
			caller:   caller,
			targetID: "7",
			newName:  " Acme Corp ",
			setupMocks: func(m *serviceMocks) {
				m.authz.EXPECT().CheckCompanyAccess(gomock.Any(), int64(7), "7").Return(nil)
				m.storage.EXPECT().UpdateCompanyName(gomock.Any(), int64(7), "Acme Corp").Return(nil)
				m.security.EXPECT().ResourceChange("7", "update", "company:7")
			},
		},
		{
			name:     "other company",
			caller:   caller,
			targetID: "8",
			newName:  "Hijacked",
			setupMocks: func(m *serviceMocks) {
				m.authz.EXPECT().CheckCompanyAccess(gomock.Any(), int64(7), "8").Return(types.ErrAccessDenied)
			},
			expectedErr: types.ErrAccessDenied,
		},
		{
			name:     "blank name",
			caller:   caller,
			targetID: "7",
			newName:  "  ",
			setupMocks: func(m *serviceMocks) {
				m.authz.EXPECT().CheckCompanyAccess(gomock.Any(), int64(7), "7").Return(nil)
			},
			expectedErr: types.ErrValidation,
		},
		{
			name:     "company vanished",
			caller:   caller,
			targetID: "7",
			newName:  "Acme Corp",
			setupMocks: func(m *serviceMocks) {
				m.authz.EXPECT().CheckCompanyAccess(gomock.Any(), int64(7), "7").Return(nil)
				m.storage.EXPECT().UpdateCompanyName(gomock.Any(), int64(7), "Acme Corp").
					Return(fmt.Errorf("company 7: %w", storage.ErrNotFound))
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name:        "no caller",
			caller:      nil,
			targetID:    "7",
			newName:     "Acme Corp",
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: types.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := setupService(ctrl)
			tt.setupMocks(m)

			err := s.UpdateCompanyProfile(context.Background(), tt.caller, tt.targetID, tt.newName)

			if tt.expectedErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestService_ListCompanies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := setupService(ctrl)

	m.storage.EXPECT().ListCompanies(gomock.Any()).Return([]*types.Company{{ID: 1}, {ID: 2}}, nil)

	companies, err := s.ListCompanies(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(companies) != 2 {
		t.Errorf("expected 2 companies, got %d", len(companies))
	}
}

func TestService_FindCompanyByEmailNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := setupService(ctrl)

	m.storage.EXPECT().GetCompanyByEmail(gomock.Any(), "nobody@example.com").Return(nil, storage.ErrNotFound)

	if _, err := s.FindCompanyByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
