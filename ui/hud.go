package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gridsnake/systems"
	"github.com/pthm-cable/gridsnake/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Score        *ScoreText
	Length       int
	Tick         int32
	FPS          int32
	Paused       bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the score label, the status line and an optional perf panel.
type HUD struct {
	renderer *Renderer
	perf     *PerfPanel
	showPerf bool
}

// NewHUD creates a new HUD renderer.
func NewHUD(theme Theme, registry *systems.SystemRegistry) *HUD {
	return &HUD{
		renderer: NewRenderer(theme),
		perf:     NewPerfPanel(theme, registry),
	}
}

// ShowPerf reports whether the perf panel is visible.
func (h *HUD) ShowPerf() bool {
	return h.showPerf
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData, perf telemetry.PerfStats) {
	t := h.renderer.Theme
	if data.Score != nil {
		rl.DrawText(data.Score.Text(), t.Padding, t.Padding, t.ScoreFontSize, t.TextColor)
	}

	y := t.Padding + t.ScoreFontSize + 4
	rl.DrawText(
		fmt.Sprintf("Length: %d | Tick: %d | FPS: %d", data.Length, data.Tick, data.FPS),
		t.Padding, y, t.FontSize, t.LabelColor,
	)
	if data.Paused {
		rl.DrawText("PAUSED", t.Padding, y+t.LineHeight, t.HeaderFontSize, rl.Yellow)
	}

	label := "Perf"
	if h.showPerf {
		label = "Hide"
	}
	if gui.Button(rl.Rectangle{X: float32(data.ScreenWidth - 70), Y: float32(t.Padding), Width: 60, Height: 24}, label) {
		h.showPerf = !h.showPerf
	}
	if h.showPerf {
		h.perf.SetPosition(data.ScreenWidth-230, t.Padding+30)
		h.perf.Draw(perf)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, h.renderer.Theme.Padding, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders per-system timings from the perf collector.
type PerfPanel struct {
	renderer *Renderer
	registry *systems.SystemRegistry
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(theme Theme, registry *systems.SystemRegistry) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(theme),
		registry: registry,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	r := p.renderer
	lines := len(telemetry.Phases) + 2
	r.DrawPanel(p.x, p.y, 220, int32(lines)*r.Theme.LineHeight+r.Theme.Padding*2)

	x := p.x + r.Theme.Padding
	y := r.DrawSectionHeader(x, p.y+r.Theme.Padding, "System Performance")
	y = r.DrawLine(x, y, fmt.Sprintf("Tick avg: %s", stats.AvgTickDuration.Round(time.Microsecond)), rl.Yellow)

	for _, id := range telemetry.Phases {
		pct := stats.PhasePct[id]
		color := r.Theme.ValueColor
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}
		name := id
		if p.registry != nil {
			name = p.registry.GetName(id)
		}
		avg := stats.PhaseAvg[id].Round(time.Microsecond)
		y = r.DrawLine(x, y, fmt.Sprintf("%-12s %8s %5.1f%%", name, avg, pct), color)
	}
}

// GameOverOverlay shades the board and offers a Quit button.
type GameOverOverlay struct {
	renderer *Renderer
}

// NewGameOverOverlay creates the overlay.
func NewGameOverOverlay(theme Theme) *GameOverOverlay {
	return &GameOverOverlay{renderer: NewRenderer(theme)}
}

// Draw renders the overlay and returns true if Quit was clicked.
func (o *GameOverOverlay) Draw(screenWidth, screenHeight int32, score *ScoreText, cause string) bool {
	r := o.renderer
	rl.DrawRectangle(0, 0, screenWidth, screenHeight, r.Theme.Dim)

	cx := screenWidth / 2
	cy := screenHeight / 2
	r.DrawCenteredText("GAME OVER", cx, cy-80, 40, rl.Red)
	if score != nil {
		r.DrawCenteredText(score.Text(), cx, cy-30, r.Theme.ScoreFontSize, r.Theme.TextColor)
	}
	if cause != "" {
		r.DrawCenteredText(cause, cx, cy, r.Theme.FontSize, r.Theme.LabelColor)
	}

	return gui.Button(rl.Rectangle{X: float32(cx - 60), Y: float32(cy + 30), Width: 120, Height: 32}, "Quit")
}
