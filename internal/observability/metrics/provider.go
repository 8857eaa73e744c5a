// Package metrics exposes HTTP server metrics through a Prometheus registry.
package metrics

import (
	"context"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
)

// Config labels the exported instruments.
type Config struct {
	ServiceName string
	Environment string
}

func (c Config) serviceName() string {
	name := strings.TrimSpace(c.ServiceName)
	if name == "" {
		return "portvakt"
	}
	return name
}

// NewRegistry builds the Prometheus registry backing /metrics, including
// the standard process and runtime collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

// NewMeterProvider bridges OpenTelemetry instruments into the registry.
func NewMeterProvider(lc fx.Lifecycle, registry *prometheus.Registry) (metric.MeterProvider, error) {
	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return provider.Shutdown(ctx)
			},
		})
	}
	return provider, nil
}
