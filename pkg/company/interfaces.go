// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

import (
	"context"

	"github.com/canonical/company-service/internal/types"
	"github.com/canonical/company-service/pkg/authentication"
)

type ServiceInterface interface {
	RegisterCompany(ctx context.Context, name, email, password string) (*types.Company, error)
	FindCompanyByEmail(ctx context.Context, email string) (*types.Company, error)
	VerifyPassword(ctx context.Context, companyID int64, password string) bool
	Login(ctx context.Context, email, password string) (string, *types.Company, error)
	ListCompanies(ctx context.Context) ([]*types.Company, error)
	UpdateCompanyProfile(ctx context.Context, caller *authentication.Identity, targetID, name string) error
}

// StorageInterface is the subset of internal/storage used by the company service.
type StorageInterface interface {
	CreateCompany(ctx context.Context, c *types.Company) (*types.Company, error)
	GetCompanyByEmail(ctx context.Context, email string) (*types.Company, error)
	GetPasswordHash(ctx context.Context, id int64) (string, error)
	ListCompanies(ctx context.Context) ([]*types.Company, error)
	UpdateCompanyName(ctx context.Context, id int64, name string) error
}

type AuthzInterface interface {
	CheckCompanyAccess(ctx context.Context, companyID int64, targetID string) error
}

type PasswordHasherInterface interface {
	HashPassword(ctx context.Context, password string) (string, error)
	ComparePassword(ctx context.Context, hash, password string) bool
}

type TokenIssuerInterface interface {
	IssueToken(ctx context.Context, identity *authentication.Identity) (string, error)
}
