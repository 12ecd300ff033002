// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/company-service/internal/types"
)

var productColumns = []string{"id", "name", "price", "company_id", "created_at"}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes term match literally inside a LIKE pattern.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func (s *Storage) CreateProduct(ctx context.Context, p *types.Product) (*types.Product, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProduct")
	defer span.End()

	newProduct := types.Product{
		Name:      p.Name,
		Price:     p.Price,
		CompanyID: p.CompanyID,
	}

	err := s.db.Statement(ctx).
		Insert("products").
		Columns("name", "price", "company_id").
		Values(p.Name, p.Price, p.CompanyID).
		Suffix("RETURNING id, created_at").
		QueryRowContext(ctx).
		Scan(&newProduct.ID, &newProduct.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "product company")
		}
		return nil, storeFailure("failed to insert product", err)
	}

	return &newProduct, nil
}

func (s *Storage) GetProductByID(ctx context.Context, id int64) (*types.Product, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProductByID")
	defer span.End()

	var p types.Product
	err := s.db.Statement(ctx).
		Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&p.ID, &p.Name, &p.Price, &p.CompanyID, &p.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, storeFailure("failed to get product", err)
	}

	return &p, nil
}

func (s *Storage) ListProductsByCompanyID(ctx context.Context, companyID int64) ([]*types.Product, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProductsByCompanyID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(productColumns...).
		From("products").
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("id")

	return s.queryProducts(ctx, query)
}

// ListProducts returns one page of products across all companies, ordered by id.
func (s *Storage) ListProducts(ctx context.Context, offset, limit uint64) ([]*types.Product, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProducts")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(productColumns...).
		From("products").
		OrderBy("id").
		Limit(limit).
		Offset(offset)

	return s.queryProducts(ctx, query)
}

func (s *Storage) CountProducts(ctx context.Context) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountProducts")
	defer span.End()

	var total int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("products").
		QueryRowContext(ctx).
		Scan(&total)
	if err != nil {
		return 0, storeFailure("failed to count products", err)
	}

	return total, nil
}

// SearchProducts matches term as a case-insensitive substring of the product name.
func (s *Storage) SearchProducts(ctx context.Context, term string) ([]*types.Product, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SearchProducts")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(productColumns...).
		From("products").
		Where(sq.ILike{"name": "%" + escapeLike(term) + "%"}).
		OrderBy("id")

	return s.queryProducts(ctx, query)
}

func (s *Storage) DeleteProduct(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteProduct")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("products").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return storeFailure("failed to delete product", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return storeFailure("failed to check rows affected", err)
	}
	if rows == 0 {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}

	return nil
}

func (s *Storage) queryProducts(ctx context.Context, query sq.SelectBuilder) ([]*types.Product, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, storeFailure("failed to list products", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]*types.Product, error) {
	products := make([]*types.Product, 0)
	for rows.Next() {
		var p types.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.CompanyID, &p.CreatedAt); err != nil {
			return nil, storeFailure("failed to scan product", err)
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, storeFailure("error iterating product rows", err)
	}

	return products, nil
}
