package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"roster-data-service/internal/config"
	"roster-data-service/internal/metrics"
	"roster-data-service/internal/providers"
	"roster-data-service/internal/providers/fixture"
	"roster-data-service/internal/providers/sleeper"
)

// providerFactory assembles the provider with shared wrappers (metrics, logging, rate limit, retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.PlayerProvider {
	base := selectProvider(cfg, f.logger)
	name := normalizeProviderName(cfg.Provider, base)

	wrapped := providers.NewInstrumentedProvider(base, f.metrics, name)
	wrapped = providers.NewLoggingProvider(wrapped, f.logger, name)
	if name == "sleeper" {
		// The full-directory endpoint is heavyweight upstream; keep a floor
		// between calls even if the poll interval is misconfigured low.
		wrapped = providers.NewRateLimitedProvider(wrapped, time.Minute, f.logger)
	}
	return providers.NewRetryingProvider(wrapped, f.logger, 0, 0)
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.PlayerProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "sleeper":
		return sleeper.NewClient(sleeper.Config{
			BaseURL:    cfg.Sleeper.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.Sleeper.Timeout},
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}

// normalizeProviderName returns a lower-cased provider name, deriving from instance when not explicitly configured.
// Used across server wiring and provider factory to keep naming consistent in metrics/logs.
func normalizeProviderName(raw string, provider providers.PlayerProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
