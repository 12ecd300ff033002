// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/company-service/internal/authorization"
	"github.com/canonical/company-service/internal/db"
	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring"
	"github.com/canonical/company-service/internal/storage"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/internal/types"
	"github.com/canonical/company-service/internal/validation"
	"github.com/canonical/company-service/pkg/authentication"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// CreateProduct adds a product owned by the caller.
func (s *Service) CreateProduct(ctx context.Context, caller *authentication.Identity, name string, price *float64) (*types.Product, error) {
	ctx, span := s.tracer.Start(ctx, "product.Service.CreateProduct")
	defer span.End()

	if caller == nil {
		return nil, types.ErrMissingCredential
	}

	req := CreateProductRequest{Name: strings.TrimSpace(name), Price: price}
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	product, err := s.storage.CreateProduct(ctx, &types.Product{
		Name:      req.Name,
		Price:     *req.Price,
		CompanyID: caller.CompanyID,
	})
	if err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			// the token outlived its company
			return nil, fmt.Errorf("company %d: %w", caller.CompanyID, types.ErrNotFound)
		}
		return nil, err
	}

	s.logger.Security().ResourceChange(caller.Subject(), "create", authorization.ProductResource(product.ID))

	return product, nil
}

// ListCompanyProducts lists the products of the company named in the path, which must be the caller.
func (s *Service) ListCompanyProducts(ctx context.Context, caller *authentication.Identity, companyID string) ([]*types.Product, error) {
	ctx, span := s.tracer.Start(ctx, "product.Service.ListCompanyProducts")
	defer span.End()

	if caller == nil {
		return nil, types.ErrMissingCredential
	}

	if err := s.authz.CheckCompanyAccess(ctx, caller.CompanyID, companyID); err != nil {
		return nil, err
	}

	return s.storage.ListProductsByCompanyID(ctx, caller.CompanyID)
}

func (s *Service) ListMyProducts(ctx context.Context, caller *authentication.Identity) ([]*types.Product, error) {
	ctx, span := s.tracer.Start(ctx, "product.Service.ListMyProducts")
	defer span.End()

	if caller == nil {
		return nil, types.ErrMissingCredential
	}

	return s.storage.ListProductsByCompanyID(ctx, caller.CompanyID)
}

// DeleteProduct checks existence before ownership, a product that does not exist is never reported as forbidden.
func (s *Service) DeleteProduct(ctx context.Context, caller *authentication.Identity, productID string) error {
	ctx, span := s.tracer.Start(ctx, "product.Service.DeleteProduct")
	defer span.End()

	if caller == nil {
		return types.ErrMissingCredential
	}

	id, err := authorization.ParseID(productID)
	if err != nil {
		return fmt.Errorf("product %q: %w", productID, types.ErrNotFound)
	}

	product, err := s.storage.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("product %d: %w", id, types.ErrNotFound)
		}
		return err
	}

	if err := s.authz.CheckProductOwnership(ctx, caller.CompanyID, product); err != nil {
		return err
	}

	if err := s.storage.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("product %d: %w", id, types.ErrNotFound)
		}
		return err
	}

	s.logger.Security().ResourceChange(caller.Subject(), "delete", authorization.ProductResource(id))

	return nil
}

// ListProducts returns one page of the whole catalogue.
// Out of range page or limit values fall back to the defaults.
func (s *Service) ListProducts(ctx context.Context, page, limit int64) (*types.ProductPage, error) {
	ctx, span := s.tracer.Start(ctx, "product.Service.ListProducts")
	defer span.End()

	page = db.Page(page)
	limit = db.PageSize(limit)

	total, err := s.storage.CountProducts(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.storage.ListProducts(ctx, db.Offset(page, limit), uint64(limit))
	if err != nil {
		return nil, err
	}

	return &types.ProductPage{
		Products: products,
		Pagination: types.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: db.Pages(total, limit),
		},
	}, nil
}

func (s *Service) SearchProducts(ctx context.Context, query string) ([]*types.Product, error) {
	ctx, span := s.tracer.Start(ctx, "product.Service.SearchProducts")
	defer span.End()

	q := searchQuery{Query: strings.TrimSpace(query)}
	if err := validation.ValidateStruct(q); err != nil {
		return nil, err
	}

	return s.storage.SearchProducts(ctx, q.Query)
}
