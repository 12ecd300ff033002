// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package product

import (
	"time"

	"github.com/canonical/company-service/internal/types"
)

type CreateProductRequest struct {
	Name  string   `json:"name" validate:"required,notblank,max=255"`
	Price *float64 `json:"price" validate:"required,gte=0,lt=100000000"`
}

type searchQuery struct {
	Query string `json:"q" validate:"required,notblank"`
}

type Product struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Price     float64    `json:"price"`
	CompanyID int64      `json:"company_id"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type Pagination struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type ProductPage struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

func newProduct(p *types.Product) Product {
	product := Product{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		CompanyID: p.CompanyID,
	}

	if !p.CreatedAt.IsZero() {
		createdAt := p.CreatedAt
		product.CreatedAt = &createdAt
	}

	return product
}

func newProducts(ps []*types.Product) []Product {
	products := make([]Product, 0, len(ps))
	for _, p := range ps {
		products = append(products, newProduct(p))
	}
	return products
}

func newProductPage(page *types.ProductPage) ProductPage {
	return ProductPage{
		Products: newProducts(page.Products),
		Pagination: Pagination{
			Page:  page.Pagination.Page,
			Limit: page.Pagination.Limit,
			Total: page.Pagination.Total,
			Pages: page.Pagination.Pages,
		},
	}
}
