package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jayala/vex-stats-service/internal/config"
	"github.com/jayala/vex-stats-service/internal/providers/fixture"
	"github.com/jayala/vex-stats-service/internal/providers/robotevents"
)

func testConfig() config.Config {
	cfg := config.Load()
	cfg.Provider = "fixture"
	cfg.Metrics.Enabled = false
	return cfg
}

func TestNewServesRoutesEndToEnd(t *testing.T) {
	srv := New(testConfig(), nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams/42/dashboard", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from dashboard, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestSelectProvider(t *testing.T) {
	cfg := testConfig()
	if _, ok := selectProvider(cfg, nil).(*fixture.Provider); !ok {
		t.Fatal("expected fixture provider")
	}

	cfg.Provider = "robotevents"
	cfg.RobotEvents.Token = "token"
	if _, ok := selectProvider(cfg, nil).(*robotevents.Client); !ok {
		t.Fatal("expected robotevents client")
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName(""); got != "robotevents" {
		t.Fatalf("expected default name, got %q", got)
	}
	if got := normalizeProviderName("Fixture"); got != "fixture" {
		t.Fatalf("expected lower-cased name, got %q", got)
	}
}

func TestMetricsDisabledSkipsMetricsServer(t *testing.T) {
	srv := New(testConfig(), nil)
	if srv.metricsServer != nil {
		t.Fatal("expected no metrics server when disabled")
	}
	if srv.metrics == nil {
		t.Fatal("expected a recorder even when metrics are disabled")
	}
}
