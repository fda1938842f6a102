package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gridsnake/systems"
)

// InputSource produces the directional input for one tick.
type InputSource interface {
	Poll() systems.DirectionalInput
}

// KeyboardInput reads the arrow keys and WASD from raylib.
type KeyboardInput struct{}

// Poll implements InputSource.
func (KeyboardInput) Poll() systems.DirectionalInput {
	return systems.DirectionalInput{
		Left:  rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA),
		Right: rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD),
		Down:  rl.IsKeyDown(rl.KeyDown) || rl.IsKeyDown(rl.KeyS),
		Up:    rl.IsKeyDown(rl.KeyUp) || rl.IsKeyDown(rl.KeyW),
	}
}

// AutopilotInput steers the game's snake with a systems.Autopilot.
type AutopilotInput struct {
	g     *Game
	pilot *systems.Autopilot
}

// NewAutopilotInput creates an autopilot bound to g.
func NewAutopilotInput(g *Game) *AutopilotInput {
	return &AutopilotInput{g: g, pilot: systems.NewAutopilot(g.board.Grid())}
}

// Poll implements InputSource.
func (a *AutopilotInput) Poll() systems.DirectionalInput {
	return a.pilot.Next(a.g.board, a.g.snake, &a.g.food)
}

// ScriptedInput replays a fixed sequence, one entry per tick, then holds nothing.
type ScriptedInput struct {
	Steps []systems.DirectionalInput
	next  int
}

// Poll implements InputSource.
func (s *ScriptedInput) Poll() systems.DirectionalInput {
	if s.next >= len(s.Steps) {
		return systems.DirectionalInput{}
	}
	in := s.Steps[s.next]
	s.next++
	return in
}

// handleInput processes host-level keys: exit, pause and window resize.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyEscape) {
		g.exitRequested = true
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() || g.camera == nil {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.camera.WindowW && h == g.camera.WindowH {
		return
	}
	g.camera.Resize(w, h)
}
