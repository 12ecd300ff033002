// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/canonical/company-service/internal/authorization"
	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring"
	"github.com/canonical/company-service/internal/storage"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/internal/types"
	"github.com/canonical/company-service/internal/validation"
	"github.com/canonical/company-service/pkg/authentication"
)

var _ ServiceInterface = (*Service)(nil)

const (
	decoyPassword = "decoy-password-never-matches"
	// bcrypt hash at the default cost
	fallbackDecoyHash = "$2a$10$XajjQvNhvvRt5GSeFk1xFeyqRrsxkhBkUiQeg0dt.wU1qD4aFDcga"
)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface
	hasher  PasswordHasherInterface
	tokens  TokenIssuerInterface

	decoyOnce sync.Once
	decoyHash string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	hasher PasswordHasherInterface,
	tokens TokenIssuerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		hasher:  hasher,
		tokens:  tokens,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// RegisterCompany stores a new company, an email that is already registered is rejected.
func (s *Service) RegisterCompany(ctx context.Context, name, email, password string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.RegisterCompany")
	defer span.End()

	req := RegisterCompanyRequest{CompanyName: strings.TrimSpace(name), Email: email, Password: password}
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	hash, err := s.hasher.HashPassword(ctx, password)
	if err != nil {
		return nil, err
	}

	company, err := s.storage.CreateCompany(ctx, &types.Company{
		Name:         req.CompanyName,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("%s: %w", email, types.ErrDuplicateIdentity)
		}
		return nil, err
	}

	s.logger.Security().ResourceChange(company.Subject(), "create", authorization.CompanyResource(company.Subject()))

	return company, nil
}

func (s *Service) FindCompanyByEmail(ctx context.Context, email string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.FindCompanyByEmail")
	defer span.End()

	company, err := s.storage.GetCompanyByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}

	return company, nil
}

// VerifyPassword never fails, a missing company or a store error count as a mismatch.
func (s *Service) VerifyPassword(ctx context.Context, companyID int64, password string) bool {
	ctx, span := s.tracer.Start(ctx, "company.Service.VerifyPassword")
	defer span.End()

	hash, err := s.storage.GetPasswordHash(ctx, companyID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Errorf("failed to load credentials for company %d: %v", companyID, err)
		}
		return false
	}

	return s.hasher.ComparePassword(ctx, hash, password)
}

// Login reports an unknown email and a wrong password with the same error.
func (s *Service) Login(ctx context.Context, email, password string) (string, *types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.Login")
	defer span.End()

	if err := validation.ValidateStruct(LoginRequest{Email: email, Password: password}); err != nil {
		return "", nil, err
	}

	company, err := s.FindCompanyByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			s.hasher.ComparePassword(ctx, s.decoy(ctx), password)
			s.logger.Security().AuthnFailure(email, "unknown email")
			return "", nil, types.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.ComparePassword(ctx, company.PasswordHash, password) {
		s.logger.Security().AuthnFailure(email, "wrong password")
		return "", nil, types.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(ctx, &authentication.Identity{
		CompanyID:   company.ID,
		Email:       company.Email,
		CompanyName: company.Name,
	})
	if err != nil {
		return "", nil, err
	}

	s.logger.Security().AuthnSuccess(company.Subject())

	return token, company, nil
}

// decoy returns a hash with the configured cost, compared on unknown emails so
// both login failures spend the same time in bcrypt.
func (s *Service) decoy(ctx context.Context) string {
	s.decoyOnce.Do(func() {
		hash, err := s.hasher.HashPassword(ctx, decoyPassword)
		if err != nil {
			s.logger.Errorf("failed to build decoy password hash: %v", err)
			hash = fallbackDecoyHash
		}
		s.decoyHash = hash
	})

	return s.decoyHash
}

func (s *Service) ListCompanies(ctx context.Context) ([]*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.ListCompanies")
	defer span.End()

	return s.storage.ListCompanies(ctx)
}

// UpdateCompanyProfile renames the company named by targetID, which must be the caller.
func (s *Service) UpdateCompanyProfile(ctx context.Context, caller *authentication.Identity, targetID, name string) error {
	ctx, span := s.tracer.Start(ctx, "company.Service.UpdateCompanyProfile")
	defer span.End()

	if caller == nil {
		return types.ErrMissingCredential
	}

	if err := s.authz.CheckCompanyAccess(ctx, caller.CompanyID, targetID); err != nil {
		return err
	}

	req := UpdateCompanyRequest{CompanyName: strings.TrimSpace(name)}
	if err := validation.ValidateStruct(req); err != nil {
		return err
	}

	if err := s.storage.UpdateCompanyName(ctx, caller.CompanyID, req.CompanyName); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("company %d: %w", caller.CompanyID, types.ErrNotFound)
		}
		return err
	}

	s.logger.Security().ResourceChange(caller.Subject(), "update", authorization.CompanyResource(caller.Subject()))

	return nil
}
