// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/company-service/internal/types"
)

type StorageInterface interface {
	CompanyStorageInterface
	ProductStorageInterface
}

type CompanyStorageInterface interface {
	CreateCompany(ctx context.Context, c *types.Company) (*types.Company, error)
	GetCompanyByID(ctx context.Context, id int64) (*types.Company, error)
	GetCompanyByEmail(ctx context.Context, email string) (*types.Company, error)
	GetPasswordHash(ctx context.Context, id int64) (string, error)
	ListCompanies(ctx context.Context) ([]*types.Company, error)
	UpdateCompanyName(ctx context.Context, id int64, name string) error
}

type ProductStorageInterface interface {
	CreateProduct(ctx context.Context, p *types.Product) (*types.Product, error)
	GetProductByID(ctx context.Context, id int64) (*types.Product, error)
	ListProductsByCompanyID(ctx context.Context, companyID int64) ([]*types.Product, error)
	ListProducts(ctx context.Context, offset, limit uint64) ([]*types.Product, error)
	CountProducts(ctx context.Context) (int64, error)
	SearchProducts(ctx context.Context, term string) ([]*types.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}
