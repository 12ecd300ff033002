// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package product

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/company-service/internal/storage"
	"github.com/canonical/company-service/internal/types"
	"github.com/canonical/company-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package product -destination ./mock_product.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package product -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package product -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package product -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

var acme = &authentication.Identity{CompanyID: 1, Email: "acme@example.com", CompanyName: "Acme"}

type serviceMocks struct {
	storage  *MockStorageInterface
	authz    *MockAuthzInterface
	logger   *MockLoggerInterface
	security *MockSecurityLoggerInterface
}

func setupService(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	m := &serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		authz:    NewMockAuthzInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
	}

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()
	m.logger.EXPECT().Security().Return(m.security).AnyTimes()

	return NewService(m.storage, m.authz, mockTracer, NewMockMonitorInterface(ctrl), m.logger), m
}

func price(v float64) *float64 {
	return &v
}

func TestService_CreateProduct(t *testing.T) {
	tests := []struct {
		name        string
		caller      *authentication.Identity
		productName string
		price       *float64
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:        "success",
			caller:      acme,
			productName: "  Widget ",
			price:       price(9.99),
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CreateProduct(gomock.Any(), &types.Product{Name: "Widget", Price: 9.99, CompanyID: 1}).
					Return(&types.Product{ID: 5, Name: "Widget", Price: 9.99, CompanyID: 1}, nil)
				m.security.EXPECT().ResourceChange("1", "create", "product:5")
			},
		},
		{
			name:        "free product",
			caller:      acme,
			productName: "Sample",
			price:       price(0),
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CreateProduct(gomock.Any(), &types.Product{Name: "Sample", Price: 0, CompanyID: 1}).
					Return(&types.Product{ID: 5, Name: "Sample", CompanyID: 1}, nil)
				m.security.EXPECT().ResourceChange("1", "create", "product:5")
			},
		},
		{
			name:        "negative price",
			caller:      acme,
			productName: "Widget",
			price:       price(-1),
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "missing price",
			caller:      acme,
			productName: "Widget",
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "blank name",
			caller:      acme,
			productName: "  ",
			price:       price(1),
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "no caller",
			productName: "Widget",
			price:       price(1),
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: types.ErrMissingCredential,
		},
		{
			name:        "company gone",
			caller:      acme,
			productName: "Widget",
			price:       price(1),
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("product company: %w", storage.ErrForeignKeyViolation))
			},
			expectedErr: types.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := setupService(ctrl)
			tt.setupMocks(m)

			product, err := s.CreateProduct(context.Background(), tt.caller, tt.productName, tt.price)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, product)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(5), product.ID)
		})
	}
}

func TestService_ListCompanyProducts(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		setupMocks  func(*serviceMocks)
		expected    []*types.Product
		expectedErr error
	}{
		{
			name:   "own company",
			target: "1",
			setupMocks: func(m *serviceMocks) {
				m.authz.EXPECT().CheckCompanyAccess(gomock.Any(), int64(1), "1").Return(nil)
				m.storage.EXPECT().ListProductsByCompanyID(gomock.Any(), int64(1)).
					Return([]*types.Product{{ID: 5, Name: "Widget", CompanyID: 1}}, nil)
			},
			expected: []*types.Product{{ID: 5, Name: "Widget", CompanyID: 1}},
		},
		{
			name:   "another company",
			target: "2",
			setupMocks: func(m *serviceMocks) {
				m.authz.EXPECT().CheckCompanyAccess(gomock.Any(), int64(1), "2").
					Return(fmt.Errorf("company 1 on company:2: %w", types.ErrAccessDenied))
			},
			expectedErr: types.ErrAccessDenied,
		},
		{
			name:   "no products",
			target: "1",
			setupMocks: func(m *serviceMocks) {
				m.authz.EXPECT().CheckCompanyAccess(gomock.Any(), int64(1), "1").Return(nil)
				m.storage.EXPECT().ListProductsByCompanyID(gomock.Any(), int64(1)).Return([]*types.Product{}, nil)
			},
			expected: []*types.Product{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := setupService(ctrl)
			tt.setupMocks(m)

			products, err := s.ListCompanyProducts(context.Background(), acme, tt.target)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, products)
		})
	}
}

func TestService_ListMyProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := setupService(ctrl)
	m.storage.EXPECT().ListProductsByCompanyID(gomock.Any(), int64(1)).
		Return([]*types.Product{{ID: 5, CompanyID: 1}, {ID: 6, CompanyID: 1}}, nil)

	products, err := s.ListMyProducts(context.Background(), acme)

	require.NoError(t, err)
	assert.Len(t, products, 2)

	_, err = s.ListMyProducts(context.Background(), nil)
	assert.ErrorIs(t, err, types.ErrMissingCredential)
}

func TestService_DeleteProduct(t *testing.T) {
	owned := &types.Product{ID: 5, Name: "Widget", CompanyID: 1}
	foreign := &types.Product{ID: 6, Name: "Gadget", CompanyID: 2}

	tests := []struct {
		name        string
		productID   string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:      "owned product",
			productID: "5",
			setupMocks: func(m *serviceMocks) {
				gomock.InOrder(
					m.storage.EXPECT().GetProductByID(gomock.Any(), int64(5)).Return(owned, nil),
					m.authz.EXPECT().CheckProductOwnership(gomock.Any(), int64(1), owned).Return(nil),
					m.storage.EXPECT().DeleteProduct(gomock.Any(), int64(5)).Return(nil),
				)
				m.security.EXPECT().ResourceChange("1", "delete", "product:5")
			},
		},
		{
			name:      "product of another company",
			productID: "6",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetProductByID(gomock.Any(), int64(6)).Return(foreign, nil)
				m.authz.EXPECT().CheckProductOwnership(gomock.Any(), int64(1), foreign).
					Return(fmt.Errorf("company 1 on product:6: %w", types.ErrAccessDenied))
			},
			expectedErr: types.ErrAccessDenied,
		},
		{
			name:      "missing product is not found, never forbidden",
			productID: "99",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetProductByID(gomock.Any(), int64(99)).
					Return(nil, fmt.Errorf("product 99: %w", storage.ErrNotFound))
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name:      "zero padded id names the same product",
			productID: "05",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetProductByID(gomock.Any(), int64(5)).Return(owned, nil)
				m.authz.EXPECT().CheckProductOwnership(gomock.Any(), int64(1), owned).Return(nil)
				m.storage.EXPECT().DeleteProduct(gomock.Any(), int64(5)).Return(nil)
				m.security.EXPECT().ResourceChange("1", "delete", "product:5")
			},
		},
		{
			name:        "non numeric id",
			productID:   "abc",
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: types.ErrNotFound,
		},
		{
			name:      "removed concurrently",
			productID: "5",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetProductByID(gomock.Any(), int64(5)).Return(owned, nil)
				m.authz.EXPECT().CheckProductOwnership(gomock.Any(), int64(1), owned).Return(nil)
				m.storage.EXPECT().DeleteProduct(gomock.Any(), int64(5)).
					Return(fmt.Errorf("product 5: %w", storage.ErrNotFound))
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name:      "store failure",
			productID: "5",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetProductByID(gomock.Any(), int64(5)).
					Return(nil, fmt.Errorf("get product: %w", types.ErrStoreFailure))
			},
			expectedErr: types.ErrStoreFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := setupService(ctrl)
			tt.setupMocks(m)

			err := s.DeleteProduct(context.Background(), acme, tt.productID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_ListProducts(t *testing.T) {
	tests := []struct {
		name           string
		page, limit    int64
		total          int64
		expectedOffset uint64
		expectedLimit  uint64
		expected       types.Pagination
	}{
		{
			name:           "defaults",
			total:          25,
			expectedOffset: 0,
			expectedLimit:  10,
			expected:       types.Pagination{Page: 1, Limit: 10, Total: 25, Pages: 3},
		},
		{
			name:           "second page",
			page:           2,
			limit:          10,
			total:          25,
			expectedOffset: 10,
			expectedLimit:  10,
			expected:       types.Pagination{Page: 2, Limit: 10, Total: 25, Pages: 3},
		},
		{
			name:           "limit is capped",
			page:           1,
			limit:          1000,
			total:          250,
			expectedOffset: 0,
			expectedLimit:  100,
			expected:       types.Pagination{Page: 1, Limit: 100, Total: 250, Pages: 3},
		},
		{
			name:           "page far beyond the catalogue",
			page:           1<<62 + 1,
			limit:          4,
			total:          25,
			expectedOffset: math.MaxInt64,
			expectedLimit:  4,
			expected:       types.Pagination{Page: 1<<62 + 1, Limit: 4, Total: 25, Pages: 7},
		},
		{
			name:           "largest page number",
			page:           math.MaxInt64,
			limit:          100,
			total:          25,
			expectedOffset: math.MaxInt64,
			expectedLimit:  100,
			expected:       types.Pagination{Page: math.MaxInt64, Limit: 100, Total: 25, Pages: 1},
		},
		{
			name:           "empty catalogue",
			total:          0,
			expectedOffset: 0,
			expectedLimit:  10,
			expected:       types.Pagination{Page: 1, Limit: 10, Total: 0, Pages: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := setupService(ctrl)
			m.storage.EXPECT().CountProducts(gomock.Any()).Return(tt.total, nil)
			m.storage.EXPECT().ListProducts(gomock.Any(), tt.expectedOffset, tt.expectedLimit).Return([]*types.Product{}, nil)

			page, err := s.ListProducts(context.Background(), tt.page, tt.limit)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, page.Pagination)
			assert.NotNil(t, page.Products)
		})
	}
}

func TestService_ListProductsCountFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := setupService(ctrl)
	m.storage.EXPECT().CountProducts(gomock.Any()).Return(int64(0), errors.New("boom"))

	page, err := s.ListProducts(context.Background(), 1, 10)

	assert.Error(t, err)
	assert.Nil(t, page)
}

func TestService_SearchProducts(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:  "trimmed term",
			query: "  widg ",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().SearchProducts(gomock.Any(), "widg").
					Return([]*types.Product{{ID: 5, Name: "Widget"}}, nil)
			},
		},
		{
			name:        "empty term",
			query:       "",
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "blank term",
			query:       "   ",
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: types.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := setupService(ctrl)
			tt.setupMocks(m)

			products, err := s.SearchProducts(context.Background(), tt.query)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, products, 1)
		})
	}
}
