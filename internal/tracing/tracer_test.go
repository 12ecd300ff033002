// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring"
)

func TestNewTracerDisabled(t *testing.T) {
	tracer := NewTracer(NewNoopConfig())

	ctx, span := tracer.Start(context.Background(), "tracing.Test")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}

	if span.SpanContext().IsValid() {
		t.Error("disabled tracer should not produce sampled spans")
	}
}

func TestExporters(t *testing.T) {
	logger := logging.NewNoopLogger()

	tests := []struct {
		name     string
		cfg      *Config
		expected int
	}{
		{name: "stdout only", cfg: NewConfig(true, false, "", "", logger), expected: 1},
		{name: "stdout in debug is not doubled", cfg: NewConfig(true, true, "", "", logger), expected: 1},
		{name: "otlp http", cfg: NewConfig(true, false, "", "localhost:4318", logger), expected: 1},
		{name: "otlp http in debug", cfg: NewConfig(true, true, "", "localhost:4318", logger), expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracer := &Tracer{logger: logger}

			exporters, err := tracer.exporters(tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(exporters) != tt.expected {
				t.Errorf("expected %d exporters, got %d", tt.expected, len(exporters))
			}

			for _, e := range exporters {
				_ = e.Shutdown(context.Background())
			}
		})
	}
}

func TestOpenTelemetryMiddlewarePassesThrough(t *testing.T) {
	logger := logging.NewNoopLogger()
	mdw := NewMiddleware(monitoring.NewNoopMonitor("company-service", logger), logger)

	called := false
	handler := mdw.OpenTelemetry(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	}))

	for _, path := range []string{"/products", "/api/v0/metrics"} {
		called = false
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		if !called || w.Code != http.StatusTeapot {
			t.Errorf("%s: expected the wrapped handler to answer, got %d", path, w.Code)
		}
	}
}
