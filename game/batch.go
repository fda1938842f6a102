package game

import (
	"github.com/pthm-cable/gridsnake/config"
	"github.com/pthm-cable/gridsnake/telemetry"
)

// BatchOptions configures a headless batch.
type BatchOptions struct {
	Games    int
	MaxTicks int   // Per game; 0 = until game over
	Seed     int64 // Game i uses Seed+i
	LogStats bool
	Config   *config.Config
	Output   *telemetry.OutputManager
}

// RunBatch plays Games headless games back to back with the autopilot and
// returns their session stats in order.
func RunBatch(opts BatchOptions) []telemetry.SessionStats {
	sessions := make([]telemetry.SessionStats, 0, opts.Games)
	for i := 0; i < opts.Games; i++ {
		g := NewGameWithOptions(Options{
			Seed:     opts.Seed + int64(i),
			Session:  i,
			Headless: true,
			LogStats: opts.LogStats,
			Config:   opts.Config,
			Output:   opts.Output,
		})
		RunHeadless(g, opts.MaxTicks)
		sessions = append(sessions, g.FinishSession())
	}
	return sessions
}

// RunHeadless steps g until game over or maxTicks ticks (0 = no cap).
func RunHeadless(g *Game, maxTicks int) {
	for g.Phase() == Playing {
		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			return
		}
		g.UpdateHeadless()
	}
}
