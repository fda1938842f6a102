package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/gridsnake/components"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Screen.Width)
	assert.Equal(t, 800, cfg.Screen.Height)
	assert.Equal(t, 20, cfg.Grid.Width)
	assert.Equal(t, 20, cfg.Grid.Height)
	assert.Equal(t, components.GridPos{X: 3, Y: 3}, cfg.Snake.StartHead)
	assert.Equal(t, []components.GridPos{{X: 3, Y: 2}}, cfg.Snake.StartSegments)
	assert.Equal(t, components.Up, cfg.Snake.StartDirection)
	assert.InDelta(t, 0.15, cfg.Snake.MoveInterval, 1e-9)
	assert.InDelta(t, 3.0, cfg.Food.SpawnInterval, 1e-9)

	assert.InDelta(t, 40.0, cfg.Derived.CellW32, 1e-6)
	assert.InDelta(t, 40.0, cfg.Derived.CellH32, 1e-6)
	assert.Equal(t, 400, cfg.Derived.GridCells)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	override := []byte("grid:\n  width: 10\nsnake:\n  start_direction: left\n")
	require.NoError(t, os.WriteFile(path, override, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Grid.Width)
	assert.Equal(t, 20, cfg.Grid.Height)
	assert.Equal(t, components.Left, cfg.Snake.StartDirection)
	assert.InDelta(t, 80.0, cfg.Derived.CellW32, 1e-6)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"tiny grid", "grid:\n  width: 1\n"},
		{"head outside grid", "snake:\n  start_head: {x: 25, y: 3}\n"},
		{"overlapping start", "snake:\n  start_segments:\n    - {x: 3, y: 3}\n"},
		{"zero move interval", "snake:\n  move_interval: 0\n"},
		{"unknown direction", "snake:\n  start_direction: sideways\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Grid.Width = 12

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, cfg.WriteYAML(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, loaded.Grid.Width)
	assert.Equal(t, cfg.Snake.StartDirection, loaded.Snake.StartDirection)
}

func TestCfgBeforeInitPanics(t *testing.T) {
	saved := global
	global = nil
	defer func() { global = saved }()

	assert.Panics(t, func() { Cfg() })
}
