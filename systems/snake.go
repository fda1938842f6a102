package systems

import (
	"github.com/gammazero/deque"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gridsnake/components"
)

// Snake is the ordered chain of body-part handles, head first, plus the
// tail cell vacated by the most recent movement step.
//
// Movement writes lastTail; growth reads it. Nothing else mutates either.
type Snake struct {
	parts *deque.Deque[ecs.Entity]

	lastTail    components.GridPos
	hasLastTail bool
}

// NewSnake creates an empty snake.
func NewSnake() *Snake {
	return &Snake{parts: deque.New[ecs.Entity]()}
}

// SpawnSnake creates the head and its segments on the board, in order.
func SpawnSnake(b *Board, head components.GridPos, dir components.Direction, segments []components.GridPos) *Snake {
	s := NewSnake()
	s.parts.PushFront(b.SpawnHead(head, dir))
	for _, p := range segments {
		s.parts.PushBack(b.SpawnSegment(p))
	}
	return s
}

// Len returns the number of body parts, head included.
func (s *Snake) Len() int {
	return s.parts.Len()
}

// Head returns the head handle.
func (s *Snake) Head() (ecs.Entity, bool) {
	if s.parts.Len() == 0 {
		return ecs.Entity{}, false
	}
	return s.parts.Front(), true
}

// Tail returns the last body-part handle.
func (s *Snake) Tail() (ecs.Entity, bool) {
	if s.parts.Len() == 0 {
		return ecs.Entity{}, false
	}
	return s.parts.Back(), true
}

// Part returns the i-th body part, 0 being the head.
func (s *Snake) Part(i int) ecs.Entity {
	return s.parts.At(i)
}

// Append adds a part at the tail end.
func (s *Snake) Append(e ecs.Entity) {
	s.parts.PushBack(e)
}

// LastTail returns the cached pre-move tail position, if any movement has happened.
func (s *Snake) LastTail() (components.GridPos, bool) {
	return s.lastTail, s.hasLastTail
}

func (s *Snake) setLastTail(p components.GridPos) {
	s.lastTail = p
	s.hasLastTail = true
}

// Positions returns the position of every part, head first. The second
// result is false if any part could not be resolved; the slice then holds
// only the parts that could.
func (s *Snake) Positions(b *Board) ([]components.GridPos, bool) {
	out := make([]components.GridPos, 0, s.parts.Len())
	complete := true
	for i := 0; i < s.parts.Len(); i++ {
		p, ok := b.Position(s.parts.At(i))
		if !ok {
			complete = false
			continue
		}
		out = append(out, p)
	}
	return out, complete
}

// Despawn removes every part from the board and empties the chain.
func (s *Snake) Despawn(b *Board) {
	for s.parts.Len() > 0 {
		b.Despawn(s.parts.PopBack())
	}
	s.hasLastTail = false
}
