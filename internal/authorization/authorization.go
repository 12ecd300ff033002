// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/internal/types"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer decides whether an authenticated company may touch a resource.
// It holds no state, ownership is read from ids the caller already has.
type Authorizer struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) CheckCompanyAccess(ctx context.Context, companyID int64, targetID string) error {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckCompanyAccess")
	defer span.End()

	id, err := ParseID(targetID)
	if err != nil {
		a.logger.Debugf("rejecting company path parameter: %v", err)
		a.logger.Security().AuthzFailure(Subject(companyID), CompanyResource(targetID))
		return fmt.Errorf("company %q: %w", targetID, types.ErrAccessDenied)
	}

	if id != companyID {
		a.logger.Security().AuthzFailure(Subject(companyID), CompanyResource(targetID))
		return fmt.Errorf("company %d: %w", id, types.ErrAccessDenied)
	}

	return nil
}

func (a *Authorizer) CheckProductOwnership(ctx context.Context, companyID int64, product *types.Product) error {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckProductOwnership")
	defer span.End()

	if product == nil {
		return types.ErrNotFound
	}

	if product.CompanyID != companyID {
		a.logger.Security().AuthzFailure(Subject(companyID), ProductResource(product.ID))
		return fmt.Errorf("product %d: %w", product.ID, types.ErrAccessDenied)
	}

	return nil
}

func NewAuthorizer(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
