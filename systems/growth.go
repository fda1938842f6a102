package systems

import "github.com/pthm-cable/gridsnake/components"

// CollectResult describes what happened when the head reached food.
type CollectResult struct {
	Collected bool
	Grew      bool
	At        components.GridPos
}

// CollectFood eats the food under the head: the food is removed, score
// goes up by one and a segment is appended at the cached tail cell. With
// no cached tail (no movement yet) the snake does not grow.
func CollectFood(b *Board, s *Snake, food *FoodState, score *uint32) CollectResult {
	headPos, ok := HeadPosition(b, s)
	if !ok {
		return CollectResult{}
	}
	foodPos, ok := food.Position(b)
	if !ok || foodPos != headPos {
		return CollectResult{}
	}

	food.Remove(b)
	*score++

	res := CollectResult{Collected: true, At: foodPos}
	if tail, ok := s.LastTail(); ok {
		s.Append(b.SpawnSegment(tail))
		res.Grew = true
	}
	return res
}
