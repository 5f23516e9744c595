package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Database   DatabaseConfig   `toml:"database"`
	Simulation SimulationConfig `toml:"simulation"`
	Logging    LoggingConfig    `toml:"logging"`
	Profile    ProfileConfig    `toml:"profile"`
}

type DatabaseConfig struct {
	MaxEntities int `toml:"max_entities"`
}

type SimulationConfig struct {
	Movers   int           `toml:"movers"`
	Statics  int           `toml:"statics"`
	Ticks    int           `toml:"ticks"`
	TickRate time.Duration `toml:"tick_rate"`
	Lifetime int           `toml:"lifetime"` // ticks a mover lives before it is replaced
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type ProfileConfig struct {
	Mode string `toml:"mode"` // "", "cpu" or "mem"
	Path string `toml:"path"`
}

// Load reads the TOML file at path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	return cfg, err
}

func Defaults() *Config {
	return &Config{
		Database: DatabaseConfig{
			MaxEntities: 4096,
		},
		Simulation: SimulationConfig{
			Movers:   1000,
			Statics:  2000,
			Ticks:    600,
			TickRate: 16 * time.Millisecond,
			Lifetime: 120,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Profile: ProfileConfig{
			Path: ".",
		},
	}
}

func (c *Config) Validate() error {
	if c.Database.MaxEntities <= 0 {
		return fmt.Errorf("database.max_entities must be positive, got %d", c.Database.MaxEntities)
	}
	if need := c.Simulation.Movers + c.Simulation.Statics; need > c.Database.MaxEntities {
		return fmt.Errorf("simulation needs %d entities but database.max_entities is %d", need, c.Database.MaxEntities)
	}
	if c.Simulation.Ticks < 0 || c.Simulation.Lifetime <= 0 {
		return fmt.Errorf("simulation.ticks must be >= 0 and simulation.lifetime > 0")
	}
	switch c.Profile.Mode {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("profile.mode %q not one of cpu, mem", c.Profile.Mode)
	}
	return nil
}
