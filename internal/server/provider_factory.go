package server

import (
	"log/slog"
	"strings"

	"github.com/jayala/vex-stats-service/internal/config"
	"github.com/jayala/vex-stats-service/internal/logging"
	"github.com/jayala/vex-stats-service/internal/metrics"
	"github.com/jayala/vex-stats-service/internal/providers"
	"github.com/jayala/vex-stats-service/internal/providers/fixture"
	"github.com/jayala/vex-stats-service/internal/providers/robotevents"
)

// providerFactory assembles the provider behind the retry decorator.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.StatsProvider {
	base := selectProvider(cfg, f.logger)
	return providers.NewRetryingProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider), 0, 0)
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.StatsProvider {
	switch strings.ToLower(cfg.Provider) {
	case "fixture":
		return fixture.New()
	default:
		if cfg.RobotEvents.Token == "" {
			logging.Warn(logger, "no robotevents token configured, upstream requests will be rejected")
		}
		return robotevents.NewClient(robotevents.Config{
			BaseURL:           cfg.RobotEvents.BaseURL,
			Token:             cfg.RobotEvents.Token,
			MaxPages:          cfg.RobotEvents.MaxPages,
			RequestsPerMinute: cfg.RobotEvents.RequestsPerMinute,
		})
	}
}

func normalizeProviderName(raw string) string {
	if raw == "" {
		return "robotevents"
	}
	return strings.ToLower(raw)
}
