//go:build wireinject
// +build wireinject

// The build tag keeps the stubs out of the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/vexlab/vex/internal/core/config"
	"github.com/vexlab/vex/internal/core/events/bus"
	"github.com/vexlab/vex/internal/core/observability/log"
	"github.com/vexlab/vex/internal/core/world"
)

// ProvideWorld assembles a world from the engine config.
func ProvideWorld(cfg config.Config) *world.World {
	wire.Build(
		bus.New,
		provideLogger,
		provideWorld,
	)
	return nil
}

func provideLogger() *log.Logger {
	return log.New(log.LevelInfo)
}

func provideWorld(cfg config.Config, b *bus.Bus, logger *log.Logger) *world.World {
	return world.New(cfg.WorldShards, cfg.Gravity, b, logger)
}
