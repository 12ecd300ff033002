// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package product

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	httptypes "github.com/canonical/company-service/internal/http/types"
	"github.com/canonical/company-service/internal/types"
	"github.com/canonical/company-service/pkg/authentication"
)

func setupAPI(ctrl *gomock.Controller) (*chi.Mux, *MockServiceInterface, *MockLoggerInterface) {
	mockService := NewMockServiceInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()

	api := NewAPI(mockService, mockTracer, NewMockMonitorInterface(ctrl), mockLogger)

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	return mux, mockService, mockLogger
}

func authenticated(req *http.Request) *http.Request {
	return req.WithContext(authentication.WithIdentity(req.Context(), acme))
}

func TestAPI_CreateProduct(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "created",
			body: `{"name":"Widget","price":9.99}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CreateProduct(gomock.Any(), acme, "Widget", price(9.99)).
					Return(&types.Product{ID: 5, Name: "Widget", Price: 9.99, CompanyID: 1}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "invalid price",
			body: `{"name":"Widget","price":-3}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CreateProduct(gomock.Any(), acme, "Widget", price(-3)).
					Return(nil, types.NewValidationError(map[string]string{"price": "price must be at least 0"}))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{"name":`,
			setupMocks:     func(svc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mux, svc, _ := setupAPI(ctrl)
			tt.setupMocks(svc)

			req := authenticated(httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(tt.body)))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				assert.JSONEq(t, `{"message":"Product created successfully","id":5}`, w.Body.String())
			}
		})
	}
}

func TestAPI_RequiresIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux, _, _ := setupAPI(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/my-products", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPI_ListCompanyProducts(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "own products",
			path: "/companies/1/products",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListCompanyProducts(gomock.Any(), acme, "1").
					Return([]*types.Product{{ID: 5, Name: "Widget", Price: 9.99, CompanyID: 1}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"id":5,"name":"Widget","price":9.99,"company_id":1}]`,
		},
		{
			name: "no products is an empty array",
			path: "/companies/1/products",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListCompanyProducts(gomock.Any(), acme, "1").Return([]*types.Product{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "other company",
			path: "/companies/2/products",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListCompanyProducts(gomock.Any(), acme, "2").
					Return(nil, fmt.Errorf("company 1 on company:2: %w", types.ErrAccessDenied))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":403,"message":"access denied"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mux, svc, _ := setupAPI(ctrl)
			tt.setupMocks(svc)

			req := authenticated(httptest.NewRequest(http.MethodGet, tt.path, nil))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestAPI_ListMyProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux, svc, _ := setupAPI(ctrl)
	svc.EXPECT().ListMyProducts(gomock.Any(), acme).
		Return([]*types.Product{{ID: 5, Name: "Widget", Price: 1, CompanyID: 1}, {ID: 6, Name: "Gadget", Price: 2, CompanyID: 1}}, nil)

	req := authenticated(httptest.NewRequest(http.MethodGet, "/my-products", nil))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body []Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body, 2)
}

func TestAPI_DeleteProduct(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		err            error
		expectedStatus int
	}{
		{name: "deleted", id: "5", expectedStatus: http.StatusOK},
		{name: "not owner", id: "6", err: fmt.Errorf("company 1 on product:6: %w", types.ErrAccessDenied), expectedStatus: http.StatusForbidden},
		{name: "missing", id: "99", err: fmt.Errorf("product 99: %w", types.ErrNotFound), expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mux, svc, _ := setupAPI(ctrl)
			svc.EXPECT().DeleteProduct(gomock.Any(), acme, tt.id).Return(tt.err)

			req := authenticated(httptest.NewRequest(http.MethodDelete, "/products/"+tt.id, nil))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.err == nil {
				var body httptypes.MessageResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "Product deleted successfully", body.Message)
			}
		})
	}
}

func TestAPI_ListProducts(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		expectedPage  int64
		expectedLimit int64
	}{
		{name: "no params", query: "", expectedPage: 0, expectedLimit: 0},
		{name: "explicit", query: "?page=2&limit=5", expectedPage: 2, expectedLimit: 5},
		{name: "garbage falls back", query: "?page=abc&limit=-4", expectedPage: 0, expectedLimit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mux, svc, _ := setupAPI(ctrl)
			svc.EXPECT().ListProducts(gomock.Any(), tt.expectedPage, tt.expectedLimit).
				Return(&types.ProductPage{
					Products:   []*types.Product{{ID: 5, Name: "Widget", Price: 9.99, CompanyID: 1}},
					Pagination: types.Pagination{Page: 2, Limit: 5, Total: 6, Pages: 2},
				}, nil)

			req := authenticated(httptest.NewRequest(http.MethodGet, "/products"+tt.query, nil))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t,
				`{"products":[{"id":5,"name":"Widget","price":9.99,"company_id":1}],"pagination":{"page":2,"limit":5,"total":6,"pages":2}}`,
				w.Body.String(),
			)
		})
	}
}

func TestAPI_SearchProducts(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:  "matches",
			query: "?q=widg",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().SearchProducts(gomock.Any(), "widg").
					Return([]*types.Product{{ID: 5, Name: "Widget"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "missing q",
			query: "",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().SearchProducts(gomock.Any(), "").
					Return(nil, types.NewValidationError(map[string]string{"q": "q is required"}))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mux, svc, _ := setupAPI(ctrl)
			tt.setupMocks(svc)

			req := authenticated(httptest.NewRequest(http.MethodGet, "/products/search"+tt.query, nil))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestParsePageParam(t *testing.T) {
	assert.Equal(t, int64(3), parsePageParam("3"))
	assert.Equal(t, int64(0), parsePageParam(""))
	assert.Equal(t, int64(0), parsePageParam("0"))
	assert.Equal(t, int64(0), parsePageParam("-1"))
	assert.Equal(t, int64(0), parsePageParam("1.5"))
}
