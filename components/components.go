// Package components defines ECS components for the game.
package components

import (
	"fmt"
	"strings"
)

// GridPos is a cell on the playfield. (0,0) is the bottom-left cell.
type GridPos struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Step returns the neighbouring cell one unit along d.
func (p GridPos) Step(d Direction) GridPos {
	dx, dy := d.Delta()
	return GridPos{X: p.X + dx, Y: p.Y + dy}
}

// String implements fmt.Stringer.
func (p GridPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a heading on the grid.
type Direction uint8

const (
	Left Direction = iota
	Up
	Right
	Down
)

// Directions lists every heading in declaration order.
var Directions = [...]Direction{Left, Up, Right, Down}

// Opposite returns the heading that would reverse into the body.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Delta returns the one-cell offset for d. Up increases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, 1
	default:
		return 0, -1
	}
}

// String returns the lower-case name used in config files.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	}
	return "unknown"
}

// ParseDirection parses a heading name, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Head marks the snake's first body part and carries its heading.
type Head struct {
	Direction Direction
}

// Segment marks any snake body part, the head included.
type Segment struct{}

// Food marks the collectible item.
type Food struct{}

// SpriteKind selects the palette entry used to draw an entity.
type SpriteKind uint8

const (
	SpriteFood SpriteKind = iota
	SpriteSegment
	SpriteHead
)

// Sprite describes how an entity is drawn. Higher layers draw on top.
type Sprite struct {
	Kind  SpriteKind
	Layer int8
}

// NewSprite returns a sprite whose layer matches its kind:
// food 0, segments 1, head 2.
func NewSprite(kind SpriteKind) Sprite {
	return Sprite{Kind: kind, Layer: int8(kind)}
}
