package systems

import "github.com/pthm-cable/gridsnake/components"

// MoveOutcome is the result of one movement step.
type MoveOutcome uint8

const (
	MoveIdle          MoveOutcome = iota // Nothing to move this tick
	MoveOK                               // Head advanced and the body followed
	MoveSelfCollision                    // Head would enter a body cell
	MoveWallCollision                    // Head would leave the grid
)

// String implements fmt.Stringer.
func (o MoveOutcome) String() string {
	switch o {
	case MoveIdle:
		return "idle"
	case MoveOK:
		return "moved"
	case MoveSelfCollision:
		return "self_collision"
	case MoveWallCollision:
		return "wall_collision"
	}
	return "unknown"
}

// Collided reports whether the outcome ends the game.
func (o MoveOutcome) Collided() bool {
	return o == MoveSelfCollision || o == MoveWallCollision
}

// MoveSnake advances the snake one cell along the head's heading.
//
// Collisions are checked against the positions every part held before
// the move, the tail included. On collision nothing is written. On success
// the head takes the new cell, every other part takes the pre-move cell of
// the part ahead of it, and the old tail cell is cached for growth.
func MoveSnake(b *Board, s *Snake) MoveOutcome {
	e, ok := s.Head()
	if !ok {
		return MoveIdle
	}
	head, ok := b.Head(e)
	if !ok {
		return MoveIdle
	}

	before, complete := s.Positions(b)
	if !complete {
		return MoveIdle
	}

	next := before[0].Step(head.Direction)

	for _, p := range before {
		if p == next {
			return MoveSelfCollision
		}
	}

	if !b.Grid().Contains(next) {
		return MoveWallCollision
	}

	b.SetPosition(e, next)
	for i := 1; i < s.Len(); i++ {
		b.SetPosition(s.Part(i), before[i-1])
	}
	s.setLastTail(before[len(before)-1])

	return MoveOK
}

// HeadPosition returns the head's current cell.
func HeadPosition(b *Board, s *Snake) (components.GridPos, bool) {
	e, ok := s.Head()
	if !ok {
		return components.GridPos{}, false
	}
	return b.Position(e)
}
