// Package systems provides the grid simulation systems for the game.
package systems

import "github.com/pthm-cable/gridsnake/components"

// Grid is the playfield size in cells.
type Grid struct {
	Width, Height int
}

// Contains reports whether p lies inside [0,Width) x [0,Height).
func (g Grid) Contains(p components.GridPos) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Index flattens p into a row-major cell index. p must be inside the grid.
func (g Grid) Index(p components.GridPos) int {
	return p.Y*g.Width + p.X
}

// At is the inverse of Index.
func (g Grid) At(idx int) components.GridPos {
	return components.GridPos{X: idx % g.Width, Y: idx / g.Width}
}
