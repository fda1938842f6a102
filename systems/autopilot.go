package systems

import "github.com/pthm-cable/gridsnake/components"

// Autopilot steers the snake for headless runs. It follows the shortest
// path to the food when the first step leaves enough room for the body.
// Otherwise it picks, among the headings that neither reverse nor collide
// next step, the one whose reachable area can still hold the snake and that
// brings the head closest to the food.
type Autopilot struct {
	occupancy *Occupancy
	planner   *PathPlanner
	visited   []bool
	stack     []components.GridPos
}

// NewAutopilot creates an autopilot for the grid.
func NewAutopilot(grid Grid) *Autopilot {
	return &Autopilot{
		occupancy: NewOccupancy(grid),
		planner:   NewPathPlanner(grid),
		visited:   make([]bool, grid.Cells()),
	}
}

// Next returns the input to feed the input resolver this tick.
func (a *Autopilot) Next(b *Board, s *Snake, food *FoodState) DirectionalInput {
	e, ok := s.Head()
	if !ok {
		return DirectionalInput{}
	}
	head, ok := b.Head(e)
	if !ok {
		return DirectionalInput{}
	}
	positions, complete := s.Positions(b)
	if !complete || len(positions) == 0 {
		return DirectionalInput{}
	}

	a.occupancy.Fill(positions)
	foodPos, hasFood := food.Position(b)

	if hasFood {
		if path := a.planner.FindPath(positions[0], foodPos, a.occupancy); len(path) > 0 {
			d, ok := directionTo(positions[0], path[0])
			if ok && d != head.Direction.Opposite() && a.reachable(path[0], len(positions)) >= len(positions) {
				return Press(d)
			}
		}
	}

	best := head.Direction
	bestScore := -1 << 30
	found := false

	for _, d := range components.Directions {
		if d == head.Direction.Opposite() {
			continue
		}
		next := positions[0].Step(d)
		if a.occupancy.Occupied(next) {
			continue
		}

		score := 0
		if a.reachable(next, len(positions)) < len(positions) {
			score -= 1000
		}
		if hasFood {
			score -= manhattan(next, foodPos)
		}
		if d == head.Direction {
			score++ // prefer going straight on ties
		}

		if !found || score > bestScore {
			best, bestScore, found = d, score, true
		}
	}

	if !found {
		return DirectionalInput{}
	}
	return Press(best)
}

// reachable counts free cells connected to start, stopping once limit is reached.
func (a *Autopilot) reachable(start components.GridPos, limit int) int {
	for i := range a.visited {
		a.visited[i] = false
	}
	grid := a.occupancy.grid

	a.stack = append(a.stack[:0], start)
	a.visited[grid.Index(start)] = true
	count := 0

	for len(a.stack) > 0 && count < limit {
		p := a.stack[len(a.stack)-1]
		a.stack = a.stack[:len(a.stack)-1]
		count++

		for _, d := range components.Directions {
			n := p.Step(d)
			if a.occupancy.Occupied(n) || a.visited[grid.Index(n)] {
				continue
			}
			a.visited[grid.Index(n)] = true
			a.stack = append(a.stack, n)
		}
	}
	return count
}

func manhattan(a, b components.GridPos) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
