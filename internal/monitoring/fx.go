package monitoring

import (
	"net/http"

	"github.com/gagnaveita/portvakt/internal/config"
	"github.com/gagnaveita/portvakt/internal/observability/tracing"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newClient(cfg config.Config, log *zap.Logger) *Client {
	client := tracing.WrapHTTPClient(&http.Client{Timeout: cfg.UpstreamTimeout})
	return NewClient(cfg.MonitoringBaseURL, client, log)
}

var Module = fx.Module("monitoring",
	fx.Provide(newClient),
)
