package game

import (
	"context"
	"errors"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gridsnake/systems"
	"github.com/pthm-cable/gridsnake/telemetry"
)

// Update runs one graphical frame: host keys, then one simulation step
// using the frame time.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}
	g.Step(float64(rl.GetFrameTime()), g.input.Poll())
}

// UpdateHeadless runs one simulation step with the configured fixed dt.
func (g *Game) UpdateHeadless() {
	g.Step(g.cfg.Headless.DT, g.input.Poll())
}

// Step runs one tick of the schedule. The grid systems run only while the
// phase at the start of the tick is Playing; the score label refreshes
// every tick.
func (g *Game) Step(dt float64, in systems.DirectionalInput) {
	g.perf.StartTick()

	if g.phase == Playing {
		g.perf.StartPhase(telemetry.PhaseInput)
		g.updateInput(in)

		g.perf.StartPhase(telemetry.PhaseMovement)
		g.updateMovement(dt)

		g.perf.StartPhase(telemetry.PhaseFoodSpawn)
		g.updateFoodSpawn(dt)

		g.perf.StartPhase(telemetry.PhaseGrowth)
		g.updateGrowth()
	}

	g.perf.StartPhase(telemetry.PhaseScoreText)
	g.scoreText.Set(g.score)

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.simTime += dt
	g.flushTelemetry()

	g.perf.EndTick()
	g.tick++
}

// updateInput commits the requested heading.
func (g *Game) updateInput(in systems.DirectionalInput) {
	if !systems.ResolveInput(g.board, g.snake, in) {
		return
	}
	if head, ok := systems.HeadPosition(g.board, g.snake); ok {
		g.collector.Record(telemetry.NewTurnEvent(g.tick, head))
	}
}

// updateMovement steps the snake when the movement timer fires.
func (g *Game) updateMovement(dt float64) {
	if !g.moveTimer.Tick(dt) {
		return
	}

	outcome := systems.MoveSnake(g.board, g.snake)
	switch {
	case outcome == systems.MoveOK:
		head, _ := systems.HeadPosition(g.board, g.snake)
		g.collector.Record(telemetry.NewMoveEvent(g.tick, head))
	case outcome.Collided():
		g.endGame(outcome)
	}
}

// updateFoodSpawn places food when the spawn timer fires. The timer
// restarts after every firing whether or not food was placed.
func (g *Game) updateFoodSpawn(dt float64) {
	if !g.foodTimer.Tick(dt) {
		return
	}
	defer g.foodTimer.Reset()

	pos, spawned, err := g.spawner.Spawn(g.board, g.snake, &g.food)
	if err != nil {
		if errors.Is(err, systems.ErrGridFull) {
			slog.Debug("food not placed", "tick", g.tick, "reason", err)
			return
		}
		slog.Error("food spawn failed", "tick", g.tick, "error", err)
		return
	}
	if !spawned {
		return
	}

	slog.Debug("food spawned", "tick", g.tick, "x", pos.X, "y", pos.Y)
	g.collector.Record(telemetry.NewFoodSpawnedEvent(g.tick, pos))
}

// updateGrowth collects food under the head.
func (g *Game) updateGrowth() {
	res := systems.CollectFood(g.board, g.snake, &g.food, &g.score)
	if res.Collected {
		g.collector.Record(telemetry.NewFoodCollectedEvent(g.tick, res.At, res.Grew))
	}
}

// endGame moves to GameOver. Called at most once per game.
func (g *Game) endGame(outcome systems.MoveOutcome) {
	if g.phase == GameOver {
		return
	}
	g.phase = GameOver
	g.cause = outcome.String()

	head, _ := systems.HeadPosition(g.board, g.snake)
	g.collector.Record(telemetry.NewGameOverEvent(g.tick, head, g.cause))

	level := slog.LevelInfo
	if g.headless {
		level = slog.LevelDebug
	}
	slog.Log(context.Background(), level, "game over",
		"session", g.session,
		"tick", g.tick,
		"score", g.score,
		"length", g.snake.Len(),
		"cause", g.cause,
	)
}
