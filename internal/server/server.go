// Package server exposes the HTTP surface of the service.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gagnaveita/portvakt/internal/clock"
	"github.com/gagnaveita/portvakt/internal/config"
	"github.com/gagnaveita/portvakt/internal/observability/logger"
	"github.com/gagnaveita/portvakt/internal/observability/metrics"
	usagedomain "github.com/gagnaveita/portvakt/internal/usage/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Cfg      config.Config
	Log      *zap.Logger
	Engine   *gin.Engine
	UsageSvc usagedomain.Service
	Clock    clock.Clock
	Registry *prometheus.Registry
}

// Server holds the handlers and their dependencies. No state is retained
// between requests.
type Server struct {
	cfg      config.Config
	log      *zap.Logger
	engine   *gin.Engine
	usageSvc usagedomain.Service
	clock    clock.Clock
	registry *prometheus.Registry
}

// NewEngine builds the gin engine with the shared middleware chain.
func NewEngine(cfg config.Config, log *zap.Logger, node *snowflake.Node, httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		Logger:    log,
		GenID:     node,
		SkipPaths: []string{"/health", "/metrics"},
	}))
	engine.Use(metrics.GinMiddleware(httpMetrics))
	return engine
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:      p.Cfg,
		log:      p.Log.Named("server"),
		engine:   p.Engine,
		usageSvc: p.UsageSvc,
		clock:    p.Clock,
		registry: p.Registry,
	}
}

// RegisterRoutes attaches all routes to the engine.
func (s *Server) RegisterRoutes() {
	s.engine.GET("/", s.Root)
	s.engine.GET("/health", s.Health)
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	s.engine.POST("/get-usage-data", s.GetUsageData)
}

// RunHTTP starts the HTTP listener under the fx lifecycle and shuts it down
// gracefully on stop.
func RunHTTP(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.log.Info("http server starting", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.log.Info("http server shutting down")
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterRoutes() }),
	fx.Invoke(RunHTTP),
)
