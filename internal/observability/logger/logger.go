// Package logger builds the service logger and its gin middleware.
package logger

import (
	"context"
	"strings"

	"github.com/gagnaveita/portvakt/internal/observability/reqctx"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// New constructs the root zap logger. Production environments get JSON
// output; everything else gets the development console encoder.
func New(environment string) (*zap.Logger, error) {
	var log *zap.Logger
	var err error
	if strings.EqualFold(strings.TrimSpace(environment), "production") {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(log)
	return log, nil
}

// FromContext returns the global logger enriched with trace and request
// identity found in the context.
func FromContext(ctx context.Context) *zap.Logger {
	log := zap.L()
	if ctx == nil {
		return log
	}

	if requestID := reqctx.RequestIDFromContext(ctx); requestID != "" {
		log = log.With(zap.String("request_id", requestID))
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		log = log.With(
			zap.String("trace_id", sc.TraceID().String()),
			zap.String("span_id", sc.SpanID().String()),
		)
	}
	return log
}
