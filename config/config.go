// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/gridsnake/components"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Grid      GridConfig      `yaml:"grid"`
	Snake     SnakeConfig     `yaml:"snake"`
	Food      FoodConfig      `yaml:"food"`
	Render    RenderConfig    `yaml:"render"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Headless  HeadlessConfig  `yaml:"headless"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// GridConfig holds the playfield dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig holds the starting layout and movement cadence.
type SnakeConfig struct {
	StartHead      components.GridPos   `yaml:"start_head"`
	StartSegments  []components.GridPos `yaml:"start_segments"` // Head-adjacent first
	StartDirection components.Direction `yaml:"start_direction"`
	MoveInterval   float64              `yaml:"move_interval"` // Seconds between movement steps
}

// FoodConfig holds food spawning parameters.
type FoodConfig struct {
	SpawnInterval        float64 `yaml:"spawn_interval"`         // Seconds between spawn attempts
	MaxPlacementAttempts int     `yaml:"max_placement_attempts"` // Rejection samples before falling back to the free-cell list
}

// Color is an RGBA color as written in YAML.
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// RenderConfig holds sprite and text appearance.
type RenderConfig struct {
	CellFill   float64 `yaml:"cell_fill"` // Sprite size as a fraction of a cell
	Background Color   `yaml:"background"`
	Head       Color   `yaml:"head"`
	Segment    Color   `yaml:"segment"`
	Food       Color   `yaml:"food"`
	Text       Color   `yaml:"text"`
	FontSize   int     `yaml:"font_size"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow  int     `yaml:"perf_window"`
	LogInterval float64 `yaml:"log_interval"`
}

// HeadlessConfig holds batch-run parameters for -headless.
type HeadlessConfig struct {
	Games    int     `yaml:"games"`
	MaxTicks int     `yaml:"max_ticks"`
	DT       float64 `yaml:"dt"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WindowW32 float32 // Screen.Width as float32
	WindowH32 float32 // Screen.Height as float32
	CellW32   float32 // Window width / grid width
	CellH32   float32 // Window height / grid height
	GridCells int     // Grid.Width * Grid.Height
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate checks that the loaded values describe a playable game.
func (c *Config) Validate() error {
	var errs []error

	if c.Grid.Width < 2 || c.Grid.Height < 2 {
		errs = append(errs, fmt.Errorf("grid must be at least 2x2, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Snake.MoveInterval <= 0 {
		errs = append(errs, errors.New("snake.move_interval must be positive"))
	}
	if c.Food.SpawnInterval <= 0 {
		errs = append(errs, errors.New("food.spawn_interval must be positive"))
	}
	if c.Headless.DT <= 0 {
		errs = append(errs, errors.New("headless.dt must be positive"))
	}

	seen := make(map[components.GridPos]bool, len(c.Snake.StartSegments)+1)
	for _, p := range append([]components.GridPos{c.Snake.StartHead}, c.Snake.StartSegments...) {
		if p.X < 0 || p.X >= c.Grid.Width || p.Y < 0 || p.Y >= c.Grid.Height {
			errs = append(errs, fmt.Errorf("start cell %v outside %dx%d grid", p, c.Grid.Width, c.Grid.Height))
		}
		if seen[p] {
			errs = append(errs, fmt.Errorf("start cell %v used twice", p))
		}
		seen[p] = true
	}

	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.WindowW32 = float32(c.Screen.Width)
	c.Derived.WindowH32 = float32(c.Screen.Height)
	c.Derived.CellW32 = c.Derived.WindowW32 / float32(c.Grid.Width)
	c.Derived.CellH32 = c.Derived.WindowH32 / float32(c.Grid.Height)
	c.Derived.GridCells = c.Grid.Width * c.Grid.Height

	if c.Food.MaxPlacementAttempts < 0 {
		c.Food.MaxPlacementAttempts = 0
	}
	if c.Telemetry.PerfWindow < 1 {
		c.Telemetry.PerfWindow = 60
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
