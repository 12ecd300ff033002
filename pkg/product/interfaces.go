// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package product

import (
	"context"

	"github.com/canonical/company-service/internal/types"
	"github.com/canonical/company-service/pkg/authentication"
)

type ServiceInterface interface {
	CreateProduct(ctx context.Context, caller *authentication.Identity, name string, price *float64) (*types.Product, error)
	ListCompanyProducts(ctx context.Context, caller *authentication.Identity, companyID string) ([]*types.Product, error)
	ListMyProducts(ctx context.Context, caller *authentication.Identity) ([]*types.Product, error)
	DeleteProduct(ctx context.Context, caller *authentication.Identity, productID string) error
	ListProducts(ctx context.Context, page, limit int64) (*types.ProductPage, error)
	SearchProducts(ctx context.Context, query string) ([]*types.Product, error)
}

// StorageInterface is the subset of internal/storage used by the product service.
type StorageInterface interface {
	CreateProduct(ctx context.Context, p *types.Product) (*types.Product, error)
	GetProductByID(ctx context.Context, id int64) (*types.Product, error)
	ListProductsByCompanyID(ctx context.Context, companyID int64) ([]*types.Product, error)
	ListProducts(ctx context.Context, offset, limit uint64) ([]*types.Product, error)
	CountProducts(ctx context.Context) (int64, error)
	SearchProducts(ctx context.Context, term string) ([]*types.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type AuthzInterface interface {
	CheckCompanyAccess(ctx context.Context, companyID int64, targetID string) error
	CheckProductOwnership(ctx context.Context, companyID int64, product *types.Product) error
}
