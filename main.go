package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gridsnake/config"
	"github.com/pthm-cable/gridsnake/game"
	"github.com/pthm-cable/gridsnake/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run an autopilot batch without graphics")
	games := flag.Int("games", 0, "Headless games to play (0 = use config)")
	maxTicks := flag.Int("max-ticks", 0, "Stop each game after N ticks (0 = use config in headless, unlimited otherwise)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	logStats := flag.Bool("log-stats", false, "Output session and perf stats via slog")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output", "dir", *outputDir, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := output.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	if *headless {
		runHeadless(cfg, rngSeed, *games, *maxTicks, *logStats, output)
		return
	}

	runGraphical(cfg, rngSeed, *maxTicks, *logStats, output)
}

// runHeadless plays a batch of autopilot games and logs the summary.
func runHeadless(cfg *config.Config, seed int64, games, maxTicks int, logStats bool, output *telemetry.OutputManager) {
	if games <= 0 {
		games = cfg.Headless.Games
	}
	if maxTicks <= 0 {
		maxTicks = cfg.Headless.MaxTicks
	}

	slog.Info("starting headless batch",
		"seed", seed,
		"games", games,
		"max_ticks", maxTicks,
		"output_dir", output.Dir(),
	)

	start := time.Now()
	sessions := game.RunBatch(game.BatchOptions{
		Games:    games,
		MaxTicks: maxTicks,
		Seed:     seed,
		LogStats: logStats,
		Config:   cfg,
		Output:   output,
	})

	slog.Info("batch finished",
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
		"summary", telemetry.Summarize(sessions),
	)
}

// runGraphical opens the window and runs one game until exit.
func runGraphical(cfg *config.Config, seed int64, maxTicks int, logStats bool, output *telemetry.OutputManager) {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	// Escape is handled by the game's input layer.
	rl.SetExitKey(rl.KeyNull)

	g := game.NewGameWithOptions(game.Options{
		Seed:     seed,
		LogStats: logStats,
		Config:   cfg,
		Output:   output,
	})
	defer g.Unload()

	for !rl.WindowShouldClose() && !g.ExitRequested() {
		g.Update()
		g.Draw()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
}
