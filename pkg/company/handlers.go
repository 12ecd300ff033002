// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

import (
	"net/http"

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

// RegisterPublicEndpoints mounts the routes reachable without a token.
func (a *API) RegisterPublicEndpoints(r chi.Router) {
	r.Post("/companies", a.register)
	r.Post("/login", a.login)
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/companies", a.list)
	r.Put("/companies/{id}", a.update)
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "company.API.register")
	defer span.End()

	var req RegisterCompanyRequest
	if err := httptypes.DecodeJSON(w, r, &req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	company, err := a.service.RegisterCompany(ctx, req.CompanyName, req.Email, req.Password)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(
		w,
		http.StatusCreated,
		httptypes.MessageResponse{Message: "Company registered successfully", ID: &company.ID},
		a.logger,
	)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "company.API.login")
	defer span.End()

	var req LoginRequest
	if err := httptypes.DecodeJSON(w, r, &req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	token, company, err := a.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(
		w,
		http.StatusOK,
		LoginResponse{
			Message: "Login successful",
			Token:   token,
			Company: Company{ID: company.ID, CompanyName: company.Name, Email: company.Email},
		},
		a.logger,
	)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "company.API.list")
	defer span.End()

	companies, err := a.service.ListCompanies(ctx)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, newCompanies(companies), a.logger)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "company.API.update")
	defer span.End()

	identity, ok := authentication.GetIdentity(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrMissingCredential, a.logger)
		return
	}

	var req UpdateCompanyRequest
	if err := httptypes.DecodeJSON(w, r, &req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.service.UpdateCompanyProfile(ctx, identity, chi.URLParam(r, "id"), req.CompanyName); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.MessageResponse{Message: "Company updated successfully"}, a.logger)
}
