package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gridsnake/components"
)

// newTestBoard returns a board over a fresh world.
func newTestBoard(w, h int) *Board {
	return NewBoard(ecs.NewWorld(), Grid{Width: w, Height: h})
}

// pos is shorthand for a grid position literal.
func pos(x, y int) components.GridPos {
	return components.GridPos{X: x, Y: y}
}

// headDirection reads the snake's heading.
func headDirection(b *Board, s *Snake) components.Direction {
	e, _ := s.Head()
	h, _ := b.Head(e)
	return h.Direction
}

// setHeading overwrites the snake's heading.
func setHeading(b *Board, s *Snake, d components.Direction) {
	e, _ := s.Head()
	h, _ := b.Head(e)
	h.Direction = d
}

// positions returns the snake's positions, ignoring completeness.
func positions(b *Board, s *Snake) []components.GridPos {
	ps, _ := s.Positions(b)
	return ps
}
