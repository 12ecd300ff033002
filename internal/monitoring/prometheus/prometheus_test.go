// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/canonical/company-service/internal/logging"
)

func TestMonitorRecordsMetrics(t *testing.T) {
	m := NewMonitor("company-service", logging.NewNoopLogger())

	if err := m.SetResponseTimeMetric(map[string]string{"route": "GET /companies", "status": "200"}, 0.1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := m.SetDependencyAvailability(map[string]string{"component": "database"}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v := testutil.ToFloat64(m.dependencies.WithLabelValues("company-service", "database")); v != 1 {
		t.Fatalf("expected dependency gauge to be 1, got %v", v)
	}
}

func TestMonitorRejectsUnknownLabels(t *testing.T) {
	m := NewMonitor("company-service", logging.NewNoopLogger())

	if err := m.SetResponseTimeMetric(map[string]string{"unknown": "x"}, 0.1); err == nil {
		t.Fatal("expected error for unknown labels")
	}
}

func TestNewMonitorTwiceReusesCollectors(t *testing.T) {
	first := NewMonitor("company-service", logging.NewNoopLogger())
	second := NewMonitor("company-service", logging.NewNoopLogger())

	if first.responseTime != second.responseTime {
		t.Fatal("expected the registered histogram to be reused")
	}
}
