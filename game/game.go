package game

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gridsnake/camera"
	"github.com/pthm-cable/gridsnake/components"
	"github.com/pthm-cable/gridsnake/config"
	"github.com/pthm-cable/gridsnake/systems"
	"github.com/pthm-cable/gridsnake/telemetry"
	"github.com/pthm-cable/gridsnake/ui"
)

// Options configures a Game.
type Options struct {
	Seed     int64
	Session  int  // Index within a headless batch
	Headless bool // No window: autopilot input unless Input is set
	LogStats bool // Periodic perf lines and per-session stats via slog

	// Config overrides the global configuration when non-nil.
	Config *config.Config
	// Input overrides the default input source.
	Input InputSource
	// Output receives session and perf records. May be nil.
	Output *telemetry.OutputManager
}

// Game holds the complete game state.
type Game struct {
	cfg *config.Config

	world   *ecs.World
	board   *systems.Board
	snake   *systems.Snake
	food    systems.FoodState
	spawner *systems.FoodSpawner

	moveTimer *systems.Timer
	foodTimer *systems.Timer

	score uint32
	phase Phase
	cause string

	rng      *rand.Rand
	seed     int64
	session  int
	input    InputSource
	registry *systems.SystemRegistry

	// Telemetry
	collector   *telemetry.Collector
	perf        *telemetry.PerfCollector
	output      *telemetry.OutputManager
	logStats    bool
	simTime     float64
	nextPerfLog float64

	// Rendering
	camera       *camera.Camera
	scoreText    *ui.ScoreText
	hud          *ui.HUD
	overlay      *ui.GameOverOverlay
	spriteFilter *ecs.Filter2[components.GridPos, components.Sprite]
	drawList     []drawItem

	// State
	tick          int32
	headless      bool
	paused        bool
	exitRequested bool
	finished      bool
}

// NewGame creates a graphical game seeded with seed, using the global config.
func NewGame(seed int64) *Game {
	return NewGameWithOptions(Options{Seed: seed})
}

// NewGameWithOptions creates a game and spawns the starting snake.
func NewGameWithOptions(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	world := ecs.NewWorld()
	grid := systems.Grid{Width: cfg.Grid.Width, Height: cfg.Grid.Height}
	rng := rand.New(rand.NewSource(opts.Seed))

	g := &Game{
		cfg:          cfg,
		world:        world,
		board:        systems.NewBoard(world, grid),
		spawner:      systems.NewFoodSpawner(grid, rng, cfg.Food.MaxPlacementAttempts),
		moveTimer:    systems.NewTimer(cfg.Snake.MoveInterval),
		foodTimer:    systems.NewTimer(cfg.Food.SpawnInterval),
		phase:        Playing,
		rng:          rng,
		seed:         opts.Seed,
		session:      opts.Session,
		registry:     systems.NewSystemRegistry(),
		collector:    telemetry.NewCollector(cfg.Headless.DT),
		perf:         telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		output:       opts.Output,
		logStats:     opts.LogStats,
		nextPerfLog:  cfg.Telemetry.LogInterval,
		scoreText:    ui.NewScoreText(),
		spriteFilter: ecs.NewFilter2[components.GridPos, components.Sprite](world),
		headless:     opts.Headless,
	}

	g.snake = systems.SpawnSnake(g.board, cfg.Snake.StartHead, cfg.Snake.StartDirection, cfg.Snake.StartSegments)
	g.collector.Begin(opts.Session, opts.Seed, 0)

	g.input = opts.Input
	if g.input == nil {
		if opts.Headless {
			g.input = NewAutopilotInput(g)
		} else {
			g.input = KeyboardInput{}
		}
	}

	if !opts.Headless {
		theme := ui.ThemeFromConfig(cfg)
		g.camera = camera.New(float32(cfg.Screen.Width), float32(cfg.Screen.Height), cfg.Grid.Width, cfg.Grid.Height)
		g.hud = ui.NewHUD(theme, g.registry)
		g.overlay = ui.NewGameOverOverlay(theme)
	}

	level := slog.LevelInfo
	if opts.Headless {
		level = slog.LevelDebug
	}
	slog.Log(context.Background(), level, "game started",
		"session", opts.Session,
		"seed", opts.Seed,
		"grid_w", cfg.Grid.Width,
		"grid_h", cfg.Grid.Height,
		"move_interval", cfg.Snake.MoveInterval,
		"spawn_interval", cfg.Food.SpawnInterval,
	)

	return g
}

// Tick returns the number of simulation steps run so far.
func (g *Game) Tick() int32 {
	return g.tick
}

// Phase returns the current game phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the number of food items eaten.
func (g *Game) Score() uint32 {
	return g.score
}

// Length returns the number of snake parts, head included.
func (g *Game) Length() int {
	return g.snake.Len()
}

// Cause returns the collision that ended the game, or "" while playing.
func (g *Game) Cause() string {
	return g.cause
}

// ScoreText returns the score label.
func (g *Game) ScoreText() *ui.ScoreText {
	return g.scoreText
}

// Board returns the grid board.
func (g *Game) Board() *systems.Board {
	return g.board
}

// Snake returns the snake.
func (g *Game) Snake() *systems.Snake {
	return g.snake
}

// Food returns the food state.
func (g *Game) Food() *systems.FoodState {
	return &g.food
}

// Paused reports whether the host has frozen ticking.
func (g *Game) Paused() bool {
	return g.paused
}

// ExitRequested reports whether Escape or the Quit button asked to close.
func (g *Game) ExitRequested() bool {
	return g.exitRequested
}

// Unload finishes the session if it has not been finished yet.
func (g *Game) Unload() {
	if !g.finished {
		g.FinishSession()
	}
}
