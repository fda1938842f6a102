// Package camera maps grid cells to world and screen coordinates.
package camera

import "github.com/pthm-cable/gridsnake/components"

// Camera places grid cells in a window.
//
// World space has its origin at the window centre with Y pointing up, so
// cell (0,0) is the bottom-left cell. Screen space is the window's pixel
// space with the origin top-left and Y pointing down.
type Camera struct {
	// Window dimensions in pixels
	WindowW, WindowH float32

	// Grid dimensions in cells
	GridW, GridH int

	// Size of one cell in pixels
	CellW, CellH float32
}

// New creates a camera showing the whole grid in the window.
func New(windowW, windowH float32, gridW, gridH int) *Camera {
	c := &Camera{GridW: gridW, GridH: gridH}
	c.Resize(windowW, windowH)
	return c
}

// Resize updates the window dimensions and the derived cell size.
func (c *Camera) Resize(windowW, windowH float32) {
	c.WindowW = windowW
	c.WindowH = windowH
	c.CellW = windowW / float32(c.GridW)
	c.CellH = windowH / float32(c.GridH)
}

// GridToWorld returns the centre of cell p in world coordinates:
// coord * cell - window/2 + cell/2 on each axis.
func (c *Camera) GridToWorld(p components.GridPos) (wx, wy float32) {
	wx = float32(p.X)*c.CellW - c.WindowW/2 + c.CellW/2
	wy = float32(p.Y)*c.CellH - c.WindowH/2 + c.CellH/2
	return wx, wy
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	return c.WindowW/2 + wx, c.WindowH/2 - wy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	return sx - c.WindowW/2, c.WindowH/2 - sy
}

// ScreenToGrid returns the cell under a screen point and whether it lies on the grid.
func (c *Camera) ScreenToGrid(sx, sy float32) (components.GridPos, bool) {
	wx, wy := c.ScreenToWorld(sx, sy)
	fx := (wx + c.WindowW/2) / c.CellW
	fy := (wy + c.WindowH/2) / c.CellH
	if fx < 0 || fy < 0 {
		return components.GridPos{}, false
	}
	p := components.GridPos{X: int(fx), Y: int(fy)}
	return p, p.X < c.GridW && p.Y < c.GridH
}

// CellRect returns the screen rectangle of a sprite centred on cell p,
// scaled to fill of the cell.
func (c *Camera) CellRect(p components.GridPos, fill float32) (x, y, w, h float32) {
	wx, wy := c.GridToWorld(p)
	sx, sy := c.WorldToScreen(wx, wy)
	w = c.CellW * fill
	h = c.CellH * fill
	return sx - w/2, sy - h/2, w, h
}
