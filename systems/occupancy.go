package systems

import "github.com/pthm-cable/gridsnake/components"

// Occupancy is a flat per-cell bitmap of cells covered by snake parts.
// Rebuilt from a position snapshot whenever a system needs free-cell lookups.
type Occupancy struct {
	grid  Grid
	cells []bool
	count int
}

// NewOccupancy creates an empty occupancy map for the grid.
func NewOccupancy(grid Grid) *Occupancy {
	return &Occupancy{
		grid:  grid,
		cells: make([]bool, grid.Cells()),
	}
}

// Clear marks every cell free.
func (o *Occupancy) Clear() {
	for i := range o.cells {
		o.cells[i] = false
	}
	o.count = 0
}

// Fill clears the map and marks each position. Positions outside the grid are ignored.
func (o *Occupancy) Fill(positions []components.GridPos) {
	o.Clear()
	for _, p := range positions {
		o.Insert(p)
	}
}

// Insert marks p occupied.
func (o *Occupancy) Insert(p components.GridPos) {
	if !o.grid.Contains(p) {
		return
	}
	idx := o.grid.Index(p)
	if !o.cells[idx] {
		o.cells[idx] = true
		o.count++
	}
}

// Occupied reports whether p is covered. Cells outside the grid count as occupied.
func (o *Occupancy) Occupied(p components.GridPos) bool {
	if !o.grid.Contains(p) {
		return true
	}
	return o.cells[o.grid.Index(p)]
}

// FreeCount returns the number of free cells.
func (o *Occupancy) FreeCount() int {
	return len(o.cells) - o.count
}

// AppendFree appends every free cell to dst in row-major order.
func (o *Occupancy) AppendFree(dst []components.GridPos) []components.GridPos {
	for idx, taken := range o.cells {
		if !taken {
			dst = append(dst, o.grid.At(idx))
		}
	}
	return dst
}
