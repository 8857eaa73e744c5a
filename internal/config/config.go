// Package config loads service configuration from the environment.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// Config carries all runtime settings for the service. Values come from the
// environment; every field has a default suitable for local development.
type Config struct {
	ServiceName string
	Environment string
	HTTPAddr    string

	// DirectoryBaseURL points at the switch/port directory. When empty the
	// service falls back to the static stub resolver.
	DirectoryBaseURL string

	// MonitoringBaseURL points at the Prometheus-style range-query backend.
	MonitoringBaseURL string

	// UpstreamTimeout bounds each outbound call. There are no retries.
	UpstreamTimeout time.Duration

	// KennitalaCenturyPivot controls two-digit year resolution during
	// identifier validation.
	KennitalaCenturyPivot int

	// UsageWindow is the trailing window queried per request.
	UsageWindow time.Duration
	// UsageStep is the resolution of the range query.
	UsageStep string

	TracingEnabled          bool
	TracingExporterEndpoint string
	TracingExporterProtocol string
	TracingSamplingRatio    float64
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), "production")
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVICE_NAME", "portvakt")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("HTTP_ADDR", ":8000")
	v.SetDefault("DIRECTORY_BASE_URL", "")
	v.SetDefault("MONITORING_BASE_URL", "http://monitor01.gagnaveita.is:9090")
	v.SetDefault("UPSTREAM_TIMEOUT", "30s")
	v.SetDefault("KENNITALA_CENTURY_PIVOT", 50)
	v.SetDefault("USAGE_WINDOW", "24h")
	v.SetDefault("USAGE_STEP", "1h")
	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_EXPORTER_ENDPOINT", "")
	v.SetDefault("TRACING_EXPORTER_PROTOCOL", "grpc")
	v.SetDefault("TRACING_SAMPLING_RATIO", 0.1)

	cfg := Config{
		ServiceName:             v.GetString("SERVICE_NAME"),
		Environment:             v.GetString("ENVIRONMENT"),
		HTTPAddr:                v.GetString("HTTP_ADDR"),
		DirectoryBaseURL:        strings.TrimSpace(v.GetString("DIRECTORY_BASE_URL")),
		MonitoringBaseURL:       strings.TrimSpace(v.GetString("MONITORING_BASE_URL")),
		UpstreamTimeout:         v.GetDuration("UPSTREAM_TIMEOUT"),
		KennitalaCenturyPivot:   v.GetInt("KENNITALA_CENTURY_PIVOT"),
		UsageWindow:             v.GetDuration("USAGE_WINDOW"),
		UsageStep:               v.GetString("USAGE_STEP"),
		TracingEnabled:          v.GetBool("TRACING_ENABLED"),
		TracingExporterEndpoint: v.GetString("TRACING_EXPORTER_ENDPOINT"),
		TracingExporterProtocol: v.GetString("TRACING_EXPORTER_PROTOCOL"),
		TracingSamplingRatio:    v.GetFloat64("TRACING_SAMPLING_RATIO"),
	}

	if cfg.UpstreamTimeout <= 0 {
		cfg.UpstreamTimeout = 30 * time.Second
	}
	if cfg.UsageWindow <= 0 {
		cfg.UsageWindow = 24 * time.Hour
	}
	if strings.TrimSpace(cfg.UsageStep) == "" {
		cfg.UsageStep = "1h"
	}

	return cfg, nil
}

// Module provides Config to the fx graph.
var Module = fx.Module("config",
	fx.Provide(Load),
)
