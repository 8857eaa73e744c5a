package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/gagnaveita/portvakt/internal/clock"
	"github.com/gagnaveita/portvakt/internal/config"
	"github.com/gagnaveita/portvakt/internal/directory"
	"github.com/gagnaveita/portvakt/internal/kennitala"
	"github.com/gagnaveita/portvakt/internal/monitoring"
	usagedomain "github.com/gagnaveita/portvakt/internal/usage/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log        *zap.Logger
	GenID      *snowflake.Node
	Cfg        config.Config
	Resolver   directory.Resolver
	Monitoring *monitoring.Client
	Clock      clock.Clock
}

// Service runs the lookup-then-query pipeline. The two outbound calls are
// strictly sequential: the monitoring query needs the lookup's switch/port.
type Service struct {
	log        *zap.Logger
	genID      *snowflake.Node
	cfg        config.Config
	resolver   directory.Resolver
	monitoring *monitoring.Client
	clock      clock.Clock
}

func NewService(p Params) usagedomain.Service {
	return &Service{
		log:        p.Log.Named("usage.service"),
		genID:      p.GenID,
		cfg:        p.Cfg,
		resolver:   p.Resolver,
		monitoring: p.Monitoring,
		clock:      p.Clock,
	}
}

// GetUsageData resolves the identifier to a switch/port pair and queries the
// trailing usage window for it. A directory miss is a hard error; a
// monitoring failure is embedded in the record's usage_data instead.
func (s *Service) GetUsageData(ctx context.Context, kt kennitala.Kennitala) (*usagedomain.UsageRecord, error) {
	resolution, err := s.resolver.Resolve(ctx, kt.Normalized)
	if err != nil {
		return nil, err
	}
	if !resolution.Success {
		return nil, &usagedomain.NotFoundError{Message: resolution.Message}
	}

	end := s.clock.Now()
	start := end.Add(-s.cfg.UsageWindow)

	outcome := s.monitoring.QueryRange(ctx, monitoring.QueryRangeRequest{
		SwitchNumber: resolution.SwitchNumber,
		PortNumber:   resolution.PortNumber,
		Start:        start,
		End:          end,
		Step:         s.cfg.UsageStep,
	})
	if !outcome.OK() {
		s.log.Warn("monitoring query degraded, embedding soft error",
			zap.String("switch_number", resolution.SwitchNumber),
			zap.String("port_number", resolution.PortNumber),
		)
	}

	return &usagedomain.UsageRecord{
		ID:           s.genID.Generate(),
		Kennitala:    kt.Normalized,
		SwitchNumber: resolution.SwitchNumber,
		PortNumber:   resolution.PortNumber,
		UsageData:    outcome,
		Timestamp:    s.clock.Now(),
	}, nil
}
