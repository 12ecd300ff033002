// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/company-service/internal/db"
	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

// companyColumns never includes password_hash, it is only read on the login path
var companyColumns = []string{"id", "company_name", "email", "created_at"}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateCompany(ctx context.Context, c *types.Company) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCompany")
	defer span.End()

	newCompany := types.Company{
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
	}

	err := s.db.Statement(ctx).
		Insert("companies").
		Columns("company_name", "email", "password_hash").
		Values(c.Name, c.Email, c.PasswordHash).
		Suffix("RETURNING id, created_at").
		QueryRowContext(ctx).
		Scan(&newCompany.ID, &newCompany.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "company email")
		}
		return nil, storeFailure("failed to insert company", err)
	}

	return &newCompany, nil
}

func (s *Storage) GetCompanyByID(ctx context.Context, id int64) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCompanyByID")
	defer span.End()

	var c types.Company
	err := s.db.Statement(ctx).
		Select(companyColumns...).
		From("companies").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, storeFailure("failed to get company", err)
	}

	return &c, nil
}

func (s *Storage) GetCompanyByEmail(ctx context.Context, email string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCompanyByEmail")
	defer span.End()

	var c types.Company
	err := s.db.Statement(ctx).
		Select("id", "company_name", "email", "password_hash", "created_at").
		From("companies").
		Where(sq.Eq{"email": email}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, storeFailure("failed to get company by email", err)
	}

	return &c, nil
}

func (s *Storage) GetPasswordHash(ctx context.Context, id int64) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPasswordHash")
	defer span.End()

	var hash string
	err := s.db.Statement(ctx).
		Select("password_hash").
		From("companies").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&hash)

	if err != nil {
		if isNoRows(err) {
			return "", ErrNotFound
		}
		return "", storeFailure("failed to get password hash", err)
	}

	return hash, nil
}

func (s *Storage) ListCompanies(ctx context.Context) ([]*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCompanies")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(companyColumns...).
		From("companies").
		OrderBy("id").
		QueryContext(ctx)
	if err != nil {
		return nil, storeFailure("failed to list companies", err)
	}
	defer rows.Close()

	companies := make([]*types.Company, 0)
	for rows.Next() {
		var c types.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt); err != nil {
			return nil, storeFailure("failed to scan company", err)
		}
		companies = append(companies, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, storeFailure("error iterating company rows", err)
	}

	return companies, nil
}

// UpdateCompanyName changes the only mutable field of a company.
func (s *Storage) UpdateCompanyName(ctx context.Context, id int64, name string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCompanyName")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("companies").
		Set("company_name", name).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return storeFailure("failed to update company", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return storeFailure("failed to check rows affected", err)
	}
	if rows == 0 {
		return fmt.Errorf("company %d: %w", id, ErrNotFound)
	}

	return nil
}
