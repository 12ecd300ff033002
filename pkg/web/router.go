// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/company-service/internal/authorization"
	"github.com/canonical/company-service/internal/db"
	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring"
	"github.com/canonical/company-service/internal/storage"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/pkg/authentication"
	"github.com/canonical/company-service/pkg/company"
	"github.com/canonical/company-service/pkg/metrics"
	"github.com/canonical/company-service/pkg/product"
	"github.com/canonical/company-service/pkg/status"
)

// Config holds the HTTP surface settings that come from the environment
type Config struct {
	CORSAllowedOrigins []string

	// LoginRateLimit is expressed in requests per minute per client, 0 disables it
	LoginRateLimit float64
	LoginRateBurst int
}

type TokenServiceInterface interface {
	authentication.TokenIssuerInterface
	authentication.TokenVerifierInterface
}

func NewRouter(
	cfg Config,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	pinger db.PingerInterface,
	hasher authentication.PasswordHasherInterface,
	tokens TokenServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSAllowedOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(pinger, tracer, monitor, logger).RegisterEndpoints(router)

	authorizer := authorization.NewAuthorizer(tracer, monitor, logger)

	companyAPI := company.NewAPI(
		company.NewService(s, authorizer, hasher, tokens, tracer, monitor, logger),
		tracer,
		monitor,
		logger,
	)
	productAPI := product.NewAPI(
		product.NewService(s, authorizer, tracer, monitor, logger),
		tracer,
		monitor,
		logger,
	)

	router.Group(func(r chi.Router) {
		r.Use(db.TransactionMiddleware(dbClient, logger))

		r.Group(func(r chi.Router) {
			if cfg.LoginRateLimit > 0 {
				r.Use(NewRateLimiter(perMinute(cfg.LoginRateLimit), cfg.LoginRateBurst, logger).Middleware())
			}

			companyAPI.RegisterPublicEndpoints(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(authentication.NewMiddleware(tokens, tracer, monitor, logger).Authenticate())

			companyAPI.RegisterEndpoints(r)
			productAPI.RegisterEndpoints(r)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
