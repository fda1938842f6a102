package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gridsnake/components"
)

// Board bundles the ECS world with the typed component mappers the grid
// systems share. All lookups go through explicit entity handles; nothing
// here iterates the world.
type Board struct {
	world *ecs.World
	grid  Grid

	posMap  *ecs.Map[components.GridPos]
	headMap *ecs.Map[components.Head]

	headMapper *ecs.Map4[components.GridPos, components.Head, components.Segment, components.Sprite]
	segMapper  *ecs.Map3[components.GridPos, components.Segment, components.Sprite]
	foodMapper *ecs.Map3[components.GridPos, components.Food, components.Sprite]
}

// NewBoard creates a board over the given world.
func NewBoard(world *ecs.World, grid Grid) *Board {
	return &Board{
		world:      world,
		grid:       grid,
		posMap:     ecs.NewMap[components.GridPos](world),
		headMap:    ecs.NewMap[components.Head](world),
		headMapper: ecs.NewMap4[components.GridPos, components.Head, components.Segment, components.Sprite](world),
		segMapper:  ecs.NewMap3[components.GridPos, components.Segment, components.Sprite](world),
		foodMapper: ecs.NewMap3[components.GridPos, components.Food, components.Sprite](world),
	}
}

// Grid returns the playfield size.
func (b *Board) Grid() Grid {
	return b.grid
}

// World returns the underlying ECS world.
func (b *Board) World() *ecs.World {
	return b.world
}

// Alive reports whether e still refers to a live entity.
func (b *Board) Alive(e ecs.Entity) bool {
	return b.world.Alive(e)
}

// Position returns the grid position of e, or false if e is gone or has none.
func (b *Board) Position(e ecs.Entity) (components.GridPos, bool) {
	if !b.world.Alive(e) || !b.posMap.Has(e) {
		return components.GridPos{}, false
	}
	return *b.posMap.Get(e), true
}

// SetPosition moves e to p. Returns false if e is gone or has no position.
func (b *Board) SetPosition(e ecs.Entity, p components.GridPos) bool {
	if !b.world.Alive(e) || !b.posMap.Has(e) {
		return false
	}
	*b.posMap.Get(e) = p
	return true
}

// Head returns the head component of e for in-place mutation.
func (b *Board) Head(e ecs.Entity) (*components.Head, bool) {
	if !b.world.Alive(e) || !b.headMap.Has(e) {
		return nil, false
	}
	return b.headMap.Get(e), true
}

// SpawnHead creates a snake head entity.
func (b *Board) SpawnHead(p components.GridPos, dir components.Direction) ecs.Entity {
	head := components.Head{Direction: dir}
	seg := components.Segment{}
	sprite := components.NewSprite(components.SpriteHead)
	return b.headMapper.NewEntity(&p, &head, &seg, &sprite)
}

// SpawnSegment creates a body segment entity.
func (b *Board) SpawnSegment(p components.GridPos) ecs.Entity {
	seg := components.Segment{}
	sprite := components.NewSprite(components.SpriteSegment)
	return b.segMapper.NewEntity(&p, &seg, &sprite)
}

// SpawnFood creates a food entity.
func (b *Board) SpawnFood(p components.GridPos) ecs.Entity {
	food := components.Food{}
	sprite := components.NewSprite(components.SpriteFood)
	return b.foodMapper.NewEntity(&p, &food, &sprite)
}

// Despawn removes e from the world if it is still alive.
func (b *Board) Despawn(e ecs.Entity) {
	if b.world.Alive(e) {
		b.world.RemoveEntity(e)
	}
}
