package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsOnEmptyInput(t *testing.T) {
	cfg, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	in := `
tick_rate: 30
gravity: 1.5
inspector:
  enabled: true
  addr: ":9000"
`
	cfg, err := Load(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 30, cfg.TickRate)
	require.Equal(t, 1.5, cfg.Gravity)
	require.True(t, cfg.Inspector.Enabled)
	require.Equal(t, ":9000", cfg.Inspector.Addr)
	// Untouched keys keep their defaults.
	require.Equal(t, 16, cfg.WorldShards)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load(strings.NewReader("tick_rate: 0"))
	require.Error(t, err)

	_, err = Load(strings.NewReader("world_shards: -1"))
	require.Error(t, err)

	_, err = Load(strings.NewReader("pool_warm: -5"))
	require.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(strings.NewReader("tick_rate: [oops"))
	require.Error(t, err)
}
