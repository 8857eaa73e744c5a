// Package observability wires logging, tracing and metrics into the fx graph.
package observability

import (
	"github.com/gagnaveita/portvakt/internal/config"
	"github.com/gagnaveita/portvakt/internal/observability/logger"
	"github.com/gagnaveita/portvakt/internal/observability/metrics"
	"github.com/gagnaveita/portvakt/internal/observability/tracing"
	"github.com/gagnaveita/portvakt/internal/version"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Environment)
}

func newTracingConfig(cfg config.Config) tracing.Config {
	return tracing.Config{
		Enabled:          cfg.TracingEnabled,
		ServiceName:      cfg.ServiceName,
		ServiceVersion:   version.Version,
		Environment:      cfg.Environment,
		ExporterEndpoint: cfg.TracingExporterEndpoint,
		ExporterProtocol: cfg.TracingExporterProtocol,
		SamplingRatio:    cfg.TracingSamplingRatio,
	}
}

func newMetricsConfig(cfg config.Config) metrics.Config {
	return metrics.Config{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
	}
}

var Module = fx.Module("observability",
	fx.Provide(newLogger),
	fx.Provide(newTracingConfig),
	fx.Provide(newMetricsConfig),
	fx.Provide(metrics.NewRegistry),
	fx.Provide(metrics.NewMeterProvider),
	fx.Provide(metrics.NewHTTPMetrics),
	fx.Invoke(func(lc fx.Lifecycle, cfg tracing.Config, log *zap.Logger) error {
		_, err := tracing.NewProvider(lc, cfg, log)
		return err
	}),
)
