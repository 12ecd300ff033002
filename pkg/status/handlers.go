// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/company-service/internal/db"
	httptypes "github.com/canonical/company-service/internal/http/types"
	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/internal/version"
)

const (
	okValue = 1.0
	koValue = 0.0

	pingTimeout = 2 * time.Second
)

type Status struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type Readiness struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type API struct {
	pinger db.PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	httptypes.WriteJSON(w, http.StatusOK, Status{Status: "ok", Version: version.Version}, a.logger)
}

// ready reports whether the database answers, and records it as a dependency metric
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	tags := map[string]string{"component": "database"}

	if err := a.pinger.Ping(ctx); err != nil {
		a.logger.Errorf("database is not reachable: %v", err)
		a.setAvailability(tags, koValue)
		httptypes.WriteJSON(w, http.StatusServiceUnavailable, Readiness{Status: "unavailable", Database: "down"}, a.logger)
		return
	}

	a.setAvailability(tags, okValue)
	httptypes.WriteJSON(w, http.StatusOK, Readiness{Status: "ok", Database: "up"}, a.logger)
}

func (a *API) setAvailability(tags map[string]string, value float64) {
	if err := a.monitor.SetDependencyAvailability(tags, value); err != nil {
		a.logger.Debugf("failed to record dependency availability: %v", err)
	}
}

func NewAPI(pinger db.PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.pinger = pinger

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
