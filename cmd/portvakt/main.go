package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/gagnaveita/portvakt/internal/clock"
	"github.com/gagnaveita/portvakt/internal/config"
	"github.com/gagnaveita/portvakt/internal/directory"
	"github.com/gagnaveita/portvakt/internal/monitoring"
	"github.com/gagnaveita/portvakt/internal/observability"
	"github.com/gagnaveita/portvakt/internal/server"
	"github.com/gagnaveita/portvakt/internal/usage"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		clock.Module,

		directory.Module,
		monitoring.Module,
		usage.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
