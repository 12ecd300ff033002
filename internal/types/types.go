// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"strconv"
	"time"
)

// Company is a tenant, the unit of data ownership
type Company struct {
	ID           int64     `db:"id"`
	Name         string    `db:"company_name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Subject identifies the company in security events.
func (c *Company) Subject() string {
	return strconv.FormatInt(c.ID, 10)
}

type Product struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Price     float64   `db:"price"`
	CompanyID int64     `db:"company_id"`
	CreatedAt time.Time `db:"created_at"`
}

type Pagination struct {
	Page  int64
	Limit int64
	Total int64
	Pages int64
}

type ProductPage struct {
	Products   []*Product
	Pagination Pagination
}
