package game

import (
	"log/slog"

	"github.com/pthm-cable/gridsnake/telemetry"
)

// flushTelemetry emits perf stats once per log interval of simulated time.
func (g *Game) flushTelemetry() {
	interval := g.cfg.Telemetry.LogInterval
	if interval <= 0 || g.simTime < g.nextPerfLog {
		return
	}
	for g.nextPerfLog <= g.simTime {
		g.nextPerfLog += interval
	}

	if !g.logStats && g.output == nil {
		return
	}
	perfStats := g.perf.Stats()

	if g.logStats {
		perfStats.LogStats()
	}
	if g.output != nil {
		if err := g.output.WritePerf(perfStats, g.tick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// FinishSession closes out the session: stats are logged when enabled and
// written to the output manager. Later calls return the same stats.
func (g *Game) FinishSession() telemetry.SessionStats {
	stats := g.collector.Finish(g.tick, g.score, g.snake.Len())
	if g.finished {
		return stats
	}
	g.finished = true

	if g.logStats {
		stats.LogStats()
	}
	if g.output != nil {
		if err := g.output.WriteSession(stats); err != nil {
			slog.Error("failed to write session", "error", err)
		}
	}
	return stats
}

// PerfStats returns the rolling performance window.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perf.Stats()
}
