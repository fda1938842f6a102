package game

import (
	"cmp"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gridsnake/components"
	"github.com/pthm-cable/gridsnake/ui"
)

// drawItem is a sprite collected for layer-ordered drawing.
type drawItem struct {
	pos    components.GridPos
	sprite components.Sprite
}

// Draw renders the board, HUD and, after a collision, the game-over overlay.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ui.ToColor(g.cfg.Render.Background))

	g.drawSprites()
	g.drawUI()

	rl.EndDrawing()
	g.perf.RecordFrame()
}

// drawSprites draws every sprite, lower layers first.
func (g *Game) drawSprites() {
	if g.camera == nil {
		return
	}

	g.drawList = g.drawList[:0]
	query := g.spriteFilter.Query()
	for query.Next() {
		pos, sprite := query.Get()
		g.drawList = append(g.drawList, drawItem{pos: *pos, sprite: *sprite})
	}
	slices.SortStableFunc(g.drawList, func(a, b drawItem) int {
		return cmp.Compare(a.sprite.Layer, b.sprite.Layer)
	})

	fill := float32(g.cfg.Render.CellFill)
	for _, it := range g.drawList {
		x, y, w, h := g.camera.CellRect(it.pos, fill)
		rl.DrawRectangleRec(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, g.spriteColor(it.sprite.Kind))
	}
}

func (g *Game) spriteColor(kind components.SpriteKind) rl.Color {
	switch kind {
	case components.SpriteHead:
		return ui.ToColor(g.cfg.Render.Head)
	case components.SpriteSegment:
		return ui.ToColor(g.cfg.Render.Segment)
	default:
		return ui.ToColor(g.cfg.Render.Food)
	}
}

// drawUI renders the HUD and the game-over overlay.
func (g *Game) drawUI() {
	if g.hud == nil {
		return
	}
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())

	g.hud.Draw(ui.HUDData{
		Score:        g.scoreText,
		Length:       g.snake.Len(),
		Tick:         g.tick,
		FPS:          rl.GetFPS(),
		Paused:       g.paused,
		ScreenWidth:  w,
		ScreenHeight: h,
	}, g.perf.Stats())

	if g.phase == GameOver {
		if g.overlay.Draw(w, h, g.scoreText, g.cause) {
			g.exitRequested = true
		}
		return
	}
	g.hud.DrawControls(h, "Arrows/WASD: steer | Space: pause | Esc: quit")
}
