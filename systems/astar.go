package systems

import (
	"container/heap"

	"github.com/pthm-cable/gridsnake/components"
)

// PathPlanner finds shortest 4-connected paths across free grid cells with A*.
type PathPlanner struct {
	grid Grid

	// Reusable data structures (cleared between searches)
	openHeap *nodeHeap
	closed   []bool
	cameFrom []int
	gScore   []int
	open     []bool
}

// astarNode is a node in the A* search.
type astarNode struct {
	id    int // Cell index
	f     int // f = g + h (priority)
	g     int // Tie-break: prefer deeper nodes
	index int // Heap index
}

// nodeHeap implements heap.Interface for the A* open set.
type nodeHeap []*astarNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].g > h[j].g
}
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *nodeHeap) Push(x any) {
	n := x.(*astarNode)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*h = old[0 : n-1]
	return node
}

// NewPathPlanner creates a planner for the grid.
func NewPathPlanner(grid Grid) *PathPlanner {
	n := grid.Cells()
	return &PathPlanner{
		grid:     grid,
		openHeap: &nodeHeap{},
		closed:   make([]bool, n),
		cameFrom: make([]int, n),
		gScore:   make([]int, n),
		open:     make([]bool, n),
	}
}

// FindPath returns the cells from start (exclusive) to goal (inclusive)
// along a shortest path avoiding occupied cells, or nil if goal cannot be
// reached. start itself may be occupied.
func (a *PathPlanner) FindPath(start, goal components.GridPos, occ *Occupancy) []components.GridPos {
	if !a.grid.Contains(start) || !a.grid.Contains(goal) || start == goal {
		return nil
	}
	if occ.Occupied(goal) {
		return nil
	}

	*a.openHeap = (*a.openHeap)[:0]
	for i := range a.closed {
		a.closed[i] = false
		a.open[i] = false
		a.cameFrom[i] = -1
	}

	startID := a.grid.Index(start)
	goalID := a.grid.Index(goal)

	a.gScore[startID] = 0
	a.open[startID] = true
	heap.Push(a.openHeap, &astarNode{id: startID, f: manhattan(start, goal)})

	for a.openHeap.Len() > 0 {
		current := heap.Pop(a.openHeap).(*astarNode)
		if a.closed[current.id] {
			continue // stale entry
		}
		if current.id == goalID {
			return a.reconstructPath(startID, goalID)
		}
		a.closed[current.id] = true

		p := a.grid.At(current.id)
		for _, d := range components.Directions {
			n := p.Step(d)
			if occ.Occupied(n) {
				continue
			}
			nid := a.grid.Index(n)
			if a.closed[nid] {
				continue
			}

			tentativeG := a.gScore[current.id] + 1
			if a.open[nid] && tentativeG >= a.gScore[nid] {
				continue
			}

			a.cameFrom[nid] = current.id
			a.gScore[nid] = tentativeG
			a.open[nid] = true
			heap.Push(a.openHeap, &astarNode{id: nid, f: tentativeG + manhattan(n, goal), g: tentativeG})
		}
	}

	return nil
}

// reconstructPath walks cameFrom back from goal and returns the path in order.
func (a *PathPlanner) reconstructPath(startID, goalID int) []components.GridPos {
	var ids []int
	for current := goalID; current != startID && current >= 0; current = a.cameFrom[current] {
		ids = append(ids, current)
	}

	path := make([]components.GridPos, len(ids))
	for i, id := range ids {
		path[len(ids)-1-i] = a.grid.At(id)
	}
	return path
}

// directionTo returns the heading that steps from p to the adjacent cell q.
func directionTo(p, q components.GridPos) (components.Direction, bool) {
	for _, d := range components.Directions {
		if p.Step(d) == q {
			return d, true
		}
	}
	return 0, false
}
