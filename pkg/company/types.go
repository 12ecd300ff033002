// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

import (
	"time"

	"github.com/canonical/company-service/internal/types"
)

type RegisterCompanyRequest struct {
	CompanyName string `json:"company_name" validate:"required,notblank,max=255"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,notblank"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateCompanyRequest struct {
	CompanyName string `json:"company_name" validate:"required,notblank,max=255"`
}

// Company is the public view of a company, the password hash never leaves the service.
type Company struct {
	ID          int64      `json:"id"`
	CompanyName string     `json:"company_name"`
	Email       string     `json:"email"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

type LoginResponse struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	Company Company `json:"company"`
}

func newCompany(c *types.Company) Company {
	company := Company{
		ID:          c.ID,
		CompanyName: c.Name,
		Email:       c.Email,
	}

	if !c.CreatedAt.IsZero() {
		createdAt := c.CreatedAt
		company.CreatedAt = &createdAt
	}

	return company
}

func newCompanies(cs []*types.Company) []Company {
	companies := make([]Company, 0, len(cs))
	for _, c := range cs {
		companies = append(companies, newCompany(c))
	}
	return companies
}
