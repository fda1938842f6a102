package systems

import (
	"errors"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gridsnake/components"
)

// ErrGridFull is returned when the snake covers every cell.
var ErrGridFull = errors.New("no free cell for food")

// FoodState tracks the single live food item.
type FoodState struct {
	entity ecs.Entity
	live   bool
}

// Entity returns the live food handle.
func (f *FoodState) Entity() (ecs.Entity, bool) {
	return f.entity, f.live
}

// Exists reports whether a food item is on the board.
func (f *FoodState) Exists(b *Board) bool {
	if f.live && !b.Alive(f.entity) {
		f.live = false
	}
	return f.live
}

// Position returns the food's cell.
func (f *FoodState) Position(b *Board) (components.GridPos, bool) {
	if !f.Exists(b) {
		return components.GridPos{}, false
	}
	return b.Position(f.entity)
}

// Remove despawns the food item.
func (f *FoodState) Remove(b *Board) {
	if f.live {
		b.Despawn(f.entity)
		f.live = false
	}
}

// FoodSpawner places food on free cells.
type FoodSpawner struct {
	rng         *rand.Rand
	maxAttempts int
	occupancy   *Occupancy
	free        []components.GridPos
}

// NewFoodSpawner creates a spawner drawing from rng. maxAttempts bounds
// the uniform random draws before it samples the free-cell list directly.
func NewFoodSpawner(grid Grid, rng *rand.Rand, maxAttempts int) *FoodSpawner {
	return &FoodSpawner{
		rng:         rng,
		maxAttempts: maxAttempts,
		occupancy:   NewOccupancy(grid),
	}
}

// Spawn places a food item if none exists. Returns the new cell and true,
// or false if food was already present. ErrGridFull means every cell is
// covered by the snake.
func (fs *FoodSpawner) Spawn(b *Board, s *Snake, food *FoodState) (components.GridPos, bool, error) {
	if food.Exists(b) {
		return components.GridPos{}, false, nil
	}

	positions, _ := s.Positions(b)
	fs.occupancy.Fill(positions)

	pos, err := fs.pick(b.Grid())
	if err != nil {
		return components.GridPos{}, false, err
	}

	food.entity = b.SpawnFood(pos)
	food.live = true
	return pos, true, nil
}

// pick draws a uniformly random free cell. Rejection sampling keeps the
// common case allocation-free; the free list bounds the worst case.
func (fs *FoodSpawner) pick(grid Grid) (components.GridPos, error) {
	if fs.occupancy.FreeCount() == 0 {
		return components.GridPos{}, ErrGridFull
	}

	for i := 0; i < fs.maxAttempts; i++ {
		p := components.GridPos{X: fs.rng.Intn(grid.Width), Y: fs.rng.Intn(grid.Height)}
		if !fs.occupancy.Occupied(p) {
			return p, nil
		}
	}

	fs.free = fs.occupancy.AppendFree(fs.free[:0])
	return fs.free[fs.rng.Intn(len(fs.free))], nil
}
