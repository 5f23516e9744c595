package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/TheBitDrifter/depot"
	"github.com/TheBitDrifter/depot/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "depotsim: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "depotsim.toml", "path to the TOML config file")
	profileMode := flag.String("profile", "", "override profile.mode (cpu or mem)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		return err
	}
	if *profileMode != "" {
		cfg.Profile.Mode = *profileMode
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if p := startProfile(cfg.Profile); p != nil {
		defer p.Stop()
	}

	db := depot.Factory.NewDatabase(
		depot.WithMaxEntities(cfg.Database.MaxEntities),
		depot.WithLogger(log.Named("depot")),
	)
	sim := newSimulation(db, cfg.Simulation, log.Named("sim"))
	sim.spawn()
	log.Info("spawned",
		zap.Int("movers", cfg.Simulation.Movers),
		zap.Int("statics", cfg.Simulation.Statics),
		zap.Int("capacity", db.Capacity()))

	dt := cfg.Simulation.TickRate.Seconds()
	for tick := range cfg.Simulation.Ticks {
		sim.step(dt)
		if tick%100 == 0 {
			log.Debug("tick", zap.Int("tick", tick), zap.Int("despawned", sim.despawned))
		}
	}

	snap := db.Snapshot()
	log.Info("simulation finished",
		zap.Int("ticks", cfg.Simulation.Ticks),
		zap.Int("entities", snap.Entities),
		zap.Int("archetypes", snap.Archetypes),
		zap.Int("components", snap.Components),
		zap.Int("despawned", sim.despawned),
		zap.Int("statics", sim.statics()))
	for _, table := range snap.Tables {
		log.Debug("archetype",
			zap.Uint32("id", uint32(table.ID)),
			zap.Int("entities", table.Entities),
			zap.Int("components", len(table.Components)))
	}
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

func startProfile(cfg config.ProfileConfig) interface{ Stop() } {
	switch cfg.Mode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.Path), profile.NoShutdownHook)
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath(cfg.Path), profile.NoShutdownHook)
	}
	return nil
}
