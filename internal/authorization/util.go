// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"fmt"
	"strconv"
)

// ParseID converts a base 10 path parameter to an id, "07" and 7 name the same row.
// Whitespace, fractions, trailing characters and values outside int64 are rejected.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", raw, err)
	}

	return id, nil
}

func CompanyResource(id string) string {
	return "company:" + id
}

func ProductResource(id int64) string {
	return "product:" + strconv.FormatInt(id, 10)
}

func Subject(companyID int64) string {
	return strconv.FormatInt(companyID, 10)
}
