package directory

import (
	"net/http"

	"github.com/gagnaveita/portvakt/internal/config"
	"github.com/gagnaveita/portvakt/internal/observability/tracing"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newResolver(cfg config.Config, log *zap.Logger) Resolver {
	if cfg.DirectoryBaseURL == "" {
		log.Info("directory base URL not set, using static resolver")
		return NewStaticResolver()
	}
	client := tracing.WrapHTTPClient(&http.Client{Timeout: cfg.UpstreamTimeout})
	return NewHTTPResolver(cfg.DirectoryBaseURL, client, log)
}

var Module = fx.Module("directory",
	fx.Provide(newResolver),
)
