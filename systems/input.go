package systems

import "github.com/pthm-cable/gridsnake/components"

// DirectionalInput is the pressed state of the four directional bindings.
type DirectionalInput struct {
	Left, Right, Down, Up bool
}

// Press returns input with only the binding for d held.
func Press(d components.Direction) DirectionalInput {
	var in DirectionalInput
	switch d {
	case components.Left:
		in.Left = true
	case components.Right:
		in.Right = true
	case components.Down:
		in.Down = true
	case components.Up:
		in.Up = true
	}
	return in
}

// Candidate picks the requested heading. When several keys are held the
// first of Left, Right, Down, Up wins; with none held the current heading
// is kept.
func (in DirectionalInput) Candidate(current components.Direction) components.Direction {
	switch {
	case in.Left:
		return components.Left
	case in.Right:
		return components.Right
	case in.Down:
		return components.Down
	case in.Up:
		return components.Up
	}
	return current
}

// ResolveHeading commits the candidate heading to head unless it would
// reverse straight into the body. Returns true if the heading changed.
func ResolveHeading(in DirectionalInput, head *components.Head) bool {
	dir := in.Candidate(head.Direction)
	if dir == head.Direction.Opposite() || dir == head.Direction {
		return false
	}
	head.Direction = dir
	return true
}

// ResolveInput applies in to the snake's head. A missing head is a no-op.
func ResolveInput(b *Board, s *Snake, in DirectionalInput) bool {
	e, ok := s.Head()
	if !ok {
		return false
	}
	head, ok := b.Head(e)
	if !ok {
		return false
	}
	return ResolveHeading(in, head)
}
