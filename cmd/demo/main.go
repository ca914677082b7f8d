// Command demo runs a headless simulation: a handful of bouncing boxes
// under gravity, with the websocket inspector optionally streaming
// their state. It exists to exercise the engine end to end, not to be
// a game.
package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vexlab/vex/internal/core/config"
	"github.com/vexlab/vex/internal/core/entity"
	"github.com/vexlab/vex/internal/core/events/bus"
	"github.com/vexlab/vex/internal/core/observability/log"
	"github.com/vexlab/vex/internal/core/world"
	"github.com/vexlab/vex/internal/inspect"
	"github.com/vexlab/vex/pkg/vector"
)

func main() {
	cfgPath := flag.String("config", "", "path to YAML config (defaults apply when empty)")
	entities := flag.Int("entities", 16, "number of entities to spawn")
	flag.Parse()

	logger := log.New(log.LevelInfo)
	defer logger.Sync()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.LoadFile(*cfgPath)
		if err != nil {
			logger.Error("load config", log.Err(err))
			os.Exit(1)
		}
	}

	// Pre-fill the vector pool so the first frames never allocate.
	for i := 0; i < cfg.PoolWarm; i++ {
		vector.Release2d(vector.New2d(0, 0))
		vector.Release3d(vector.New3d(0, 0, 0))
	}

	w := world.New(cfg.WorldShards, cfg.Gravity, bus.New(), logger)
	for i := 0; i < *entities; i++ {
		if err := spawnBox(w); err != nil {
			logger.Error("spawn", log.Err(err))
			os.Exit(1)
		}
	}

	w.Bus().Subscribe(bus.EventEntityCollision, func(ev bus.Event) {
		c := ev.Data.(world.Collision)
		logger.Debug("collision", log.String("a", c.A), log.String("b", c.B))
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Inspector.Enabled {
		ins := inspect.New(cfg.Inspector.Addr, time.Second/time.Duration(cfg.TickRate), w, logger)
		go func() {
			if err := ins.Run(ctx); err != nil {
				logger.Error("inspector", log.Err(err))
			}
		}()
	}

	dt := 1.0 / float64(cfg.TickRate)
	ticker := time.NewTicker(time.Second / time.Duration(cfg.TickRate))
	defer ticker.Stop()

	logger.Info("demo running",
		log.Int("entities", w.Count()),
		log.Int("tick_rate", cfg.TickRate),
	)
	for {
		select {
		case <-ctx.Done():
			logger.Info("demo stopped")
			return
		case <-ticker.C:
			w.Update(dt)
		}
	}
}

func spawnBox(w *world.World) error {
	r, err := entity.NewRect(0, 0, 8, 8)
	if err != nil {
		return err
	}
	body, err := entity.NewBody(r)
	if err != nil {
		return err
	}
	body.SetFriction(2, 0)
	e, err := entity.New("box", rand.Float64()*640, rand.Float64()*480, body)
	if err != nil {
		return err
	}
	e.Body().Velocity().Set(rand.Float64()*40-20, rand.Float64()*40-20)
	w.Spawn(e)
	return nil
}
