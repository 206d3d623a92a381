package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/n88/worlds/internal/config"
	"github.com/n88/worlds/internal/core/ecs"
	coresys "github.com/n88/worlds/internal/core/system"
	"github.com/n88/worlds/internal/data"
	"github.com/n88/worlds/internal/scripting"
	"github.com/n88/worlds/internal/system"
	"github.com/n88/worlds/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/worlds.toml"
	if p := os.Getenv("WORLDS_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if p := startProfile(cfg.Profile); p != nil {
		defer p.Stop()
	}

	// 3. World and spawn table
	ecsWorld := ecs.NewWorld(ecs.WithLogger(log.Named("ecs")))
	spawner := world.NewSpawner(ecsWorld, log.Named("spawn"))

	if cfg.Data.SpawnList != "" {
		table, err := data.LoadSpawnTable(cfg.Data.SpawnList)
		if err != nil {
			return fmt.Errorf("load spawn table: %w", err)
		}
		n, err := spawner.SpawnTable(table)
		if err != nil {
			return fmt.Errorf("spawn: %w", err)
		}
		log.Info("spawn table loaded", zap.Int("entries", table.Count()), zap.Int("entities", n))
	}

	// 4. Scripts
	lua, err := scripting.NewEngine(cfg.Scripting.Dir, ecsWorld, spawner, log.Named("lua"))
	if err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	defer lua.Close()

	// 5. Systems
	runner := coresys.NewRunner()
	runner.Register(system.NewScriptSystem(lua))
	runner.Register(system.NewMovementSystem(ecsWorld))
	runner.Register(system.NewLifetimeSystem(ecsWorld))
	runner.Register(system.NewCleanupSystem(ecsWorld, log))

	// 6. Loop
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("simulation started",
		zap.Duration("tick", cfg.Simulation.TickRate),
		zap.Int("max_ticks", cfg.Simulation.MaxTicks),
		zap.Int("systems", runner.Len()),
	)
	ticks := loop(ctx, runner, cfg.Simulation)

	log.Info("simulation stopped",
		zap.Int("ticks", ticks),
		zap.Uint64("entities", uint64(ecsWorld.HighestEntity())),
	)
	for _, st := range ecsWorld.Stats() {
		log.Info("component store",
			zap.String("type", st.Name),
			zap.Int("bound", st.Bound),
			zap.Int("pooled", st.Pooled),
		)
	}
	return nil
}

// loop ticks runner until ctx is done or MaxTicks is reached and returns the
// number of ticks run.
func loop(ctx context.Context, runner *coresys.Runner, cfg config.SimulationConfig) int {
	ticker := time.NewTicker(cfg.TickRate)
	defer ticker.Stop()

	ticks := 0
	for cfg.MaxTicks == 0 || ticks < cfg.MaxTicks {
		select {
		case <-ticker.C:
			runner.Tick(cfg.TickRate)
			ticks++
		case <-ctx.Done():
			return ticks
		}
	}
	return ticks
}

func startProfile(cfg config.ProfileConfig) interface{ Stop() } {
	switch cfg.Mode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.Path), profile.NoShutdownHook, profile.Quiet)
	case "mem":
		return profile.Start(profile.MemProfileAllocs, profile.ProfilePath(cfg.Path), profile.NoShutdownHook, profile.Quiet)
	}
	return nil
}

// newLogger builds the process logger. An unrecognised level means info.
func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Format != "json" {
		zapCfg = consoleConfig()
	}
	zapCfg.Level = level
	return zapCfg.Build()
}

// consoleConfig: wall-clock time, coloured levels, no caller or stack noise.
func consoleConfig() zap.Config {
	c := zap.NewDevelopmentConfig()
	c.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	c.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.TimeOnly)
	c.EncoderConfig.ConsoleSeparator = "  "
	c.DisableCaller = true
	c.DisableStacktrace = true
	return c
}
