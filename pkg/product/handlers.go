// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package product

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/company-service/internal/http/types"
	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/internal/types"
	"github.com/canonical/company-service/pkg/authentication"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// RegisterEndpoints mounts the product routes, all of them need a token.
func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/companies/{id}/products", a.listCompanyProducts)
	r.Get("/my-products", a.listMyProducts)
	r.Get("/products/search", a.search)
	r.Get("/products", a.list)
	r.Post("/products", a.create)
	r.Delete("/products/{id}", a.delete)
}

func (a *API) identity(w http.ResponseWriter, r *http.Request) (*authentication.Identity, bool) {
	identity, ok := authentication.GetIdentity(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrMissingCredential, a.logger)
	}
	return identity, ok
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "product.API.create")
	defer span.End()

	identity, ok := a.identity(w, r)
	if !ok {
		return
	}

	var req CreateProductRequest
	if err := httptypes.DecodeJSON(w, r, &req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	product, err := a.service.CreateProduct(ctx, identity, req.Name, req.Price)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(
		w,
		http.StatusCreated,
		httptypes.MessageResponse{Message: "Product created successfully", ID: &product.ID},
		a.logger,
	)
}

func (a *API) listCompanyProducts(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "product.API.listCompanyProducts")
	defer span.End()

	identity, ok := a.identity(w, r)
	if !ok {
		return
	}

	products, err := a.service.ListCompanyProducts(ctx, identity, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, newProducts(products), a.logger)
}

func (a *API) listMyProducts(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "product.API.listMyProducts")
	defer span.End()

	identity, ok := a.identity(w, r)
	if !ok {
		return
	}

	products, err := a.service.ListMyProducts(ctx, identity)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, newProducts(products), a.logger)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "product.API.delete")
	defer span.End()

	identity, ok := a.identity(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteProduct(ctx, identity, chi.URLParam(r, "id")); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.MessageResponse{Message: "Product deleted successfully"}, a.logger)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "product.API.list")
	defer span.End()

	query := r.URL.Query()

	page, err := a.service.ListProducts(ctx, parsePageParam(query.Get("page")), parsePageParam(query.Get("limit")))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, newProductPage(page), a.logger)
}

func (a *API) search(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "product.API.search")
	defer span.End()

	products, err := a.service.SearchProducts(ctx, r.URL.Query().Get("q"))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, newProducts(products), a.logger)
}

// parsePageParam reads an optional positive integer, anything else counts as unset.
func parsePageParam(raw string) int64 {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0
	}
	return v
}
