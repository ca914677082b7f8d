// Package config loads the engine configuration from YAML.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the engine runtime.
type Config struct {
	// TickRate is the fixed update frequency in ticks per second.
	TickRate int `yaml:"tick_rate"`
	// Gravity is applied to every gravity-affected body, in units per
	// second squared along the y axis.
	Gravity float64 `yaml:"gravity"`
	// WorldShards is the shard count of the entity store.
	WorldShards int `yaml:"world_shards"`
	// PoolWarm is how many vectors of each type are pre-filled into the
	// recycling pool at startup.
	PoolWarm int `yaml:"pool_warm"`

	Inspector InspectorConfig `yaml:"inspector"`
}

// InspectorConfig configures the websocket state stream.
type InspectorConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		TickRate:    60,
		Gravity:     0.98,
		WorldShards: 16,
		PoolWarm:    0,
		Inspector: InspectorConfig{
			Enabled: false,
			Addr:    ":8099",
		},
	}
}

// Load reads YAML from r on top of the defaults.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads YAML from path on top of the defaults.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (c Config) validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.TickRate)
	}
	if c.WorldShards <= 0 {
		return fmt.Errorf("config: world_shards must be positive, got %d", c.WorldShards)
	}
	if c.PoolWarm < 0 {
		return fmt.Errorf("config: pool_warm must not be negative, got %d", c.PoolWarm)
	}
	return nil
}
