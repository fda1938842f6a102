package camera

import (
	"math"
	"testing"

	"github.com/pthm-cable/gridsnake/components"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNew(t *testing.T) {
	cam := New(800, 800, 20, 20)

	if cam.CellW != 40 || cam.CellH != 40 {
		t.Errorf("expected 40x40 cells, got %fx%f", cam.CellW, cam.CellH)
	}
}

func TestGridToWorld(t *testing.T) {
	cam := New(800, 800, 20, 20)

	testCases := []struct {
		cell   components.GridPos
		wx, wy float32
	}{
		{components.GridPos{X: 0, Y: 0}, -380, -380},
		{components.GridPos{X: 19, Y: 19}, 380, 380},
		{components.GridPos{X: 3, Y: 3}, -260, -260},
		{components.GridPos{X: 10, Y: 0}, 20, -380},
	}

	for _, tc := range testCases {
		wx, wy := cam.GridToWorld(tc.cell)
		if !approx(wx, tc.wx) || !approx(wy, tc.wy) {
			t.Errorf("GridToWorld(%v) = (%f, %f), want (%f, %f)", tc.cell, wx, wy, tc.wx, tc.wy)
		}
	}
}

func TestBottomLeftCellIsBottomLeftOnScreen(t *testing.T) {
	cam := New(800, 600, 20, 15)

	sx, sy := cam.WorldToScreen(cam.GridToWorld(components.GridPos{X: 0, Y: 0}))
	if !approx(sx, 20) || !approx(sy, 580) {
		t.Errorf("expected cell (0,0) centred at (20, 580), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(800, 800, 20, 20)

	testCases := []struct{ sx, sy float32 }{
		{400, 400},
		{10, 10},
		{790, 420},
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if !approx(sx, tc.sx) || !approx(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestScreenToGrid(t *testing.T) {
	cam := New(800, 800, 20, 20)

	for _, cell := range []components.GridPos{{X: 0, Y: 0}, {X: 7, Y: 12}, {X: 19, Y: 19}} {
		sx, sy := cam.WorldToScreen(cam.GridToWorld(cell))
		got, ok := cam.ScreenToGrid(sx, sy)
		if !ok || got != cell {
			t.Errorf("ScreenToGrid of %v centre = %v, %v", cell, got, ok)
		}
	}

	if _, ok := cam.ScreenToGrid(-5, 400); ok {
		t.Error("expected point left of the window to be off-grid")
	}
}

func TestCellRect(t *testing.T) {
	cam := New(800, 800, 20, 20)

	x, y, w, h := cam.CellRect(components.GridPos{X: 0, Y: 0}, 0.8)
	if !approx(w, 32) || !approx(h, 32) {
		t.Errorf("expected 32x32 sprite, got %fx%f", w, h)
	}
	if !approx(x, 4) || !approx(y, 764) {
		t.Errorf("expected sprite at (4, 764), got (%f, %f)", x, y)
	}
}

func TestResize(t *testing.T) {
	cam := New(800, 800, 20, 20)
	cam.Resize(400, 200)

	if cam.CellW != 20 || cam.CellH != 10 {
		t.Errorf("expected 20x10 cells after resize, got %fx%f", cam.CellW, cam.CellH)
	}
}
