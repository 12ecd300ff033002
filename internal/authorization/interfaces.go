// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/company-service/internal/types"
)

type AuthorizerInterface interface {
	// CheckCompanyAccess allows a company to act on a path that names a company id.
	CheckCompanyAccess(ctx context.Context, companyID int64, targetID string) error
	// CheckProductOwnership must only be called once the product is known to exist.
	CheckProductOwnership(ctx context.Context, companyID int64, product *types.Product) error
}
