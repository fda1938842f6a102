// Package telemetry provides session tracking, performance sampling and CSV output.
package telemetry

import "github.com/pthm-cable/gridsnake/components"

// EventType identifies telemetry events.
type EventType uint8

const (
	EventTurn EventType = iota
	EventMove
	EventFoodSpawned
	EventFoodCollected
	EventGameOver
)

// String implements fmt.Stringer.
func (t EventType) String() string {
	switch t {
	case EventTurn:
		return "turn"
	case EventMove:
		return "move"
	case EventFoodSpawned:
		return "food_spawned"
	case EventFoodCollected:
		return "food_collected"
	case EventGameOver:
		return "game_over"
	}
	return "unknown"
}

// Event represents a single telemetry event.
type Event struct {
	Type EventType
	Tick int32
	Pos  components.GridPos

	// Optional fields depending on event type
	Grew  bool   // food collected: a segment was appended
	Cause string // game over: which collision ended it
}

// NewTurnEvent creates a heading change event.
func NewTurnEvent(tick int32, head components.GridPos) Event {
	return Event{Type: EventTurn, Tick: tick, Pos: head}
}

// NewMoveEvent creates a successful movement step event.
func NewMoveEvent(tick int32, head components.GridPos) Event {
	return Event{Type: EventMove, Tick: tick, Pos: head}
}

// NewFoodSpawnedEvent creates a food placement event.
func NewFoodSpawnedEvent(tick int32, at components.GridPos) Event {
	return Event{Type: EventFoodSpawned, Tick: tick, Pos: at}
}

// NewFoodCollectedEvent creates a food collection event.
func NewFoodCollectedEvent(tick int32, at components.GridPos, grew bool) Event {
	return Event{Type: EventFoodCollected, Tick: tick, Pos: at, Grew: grew}
}

// NewGameOverEvent creates the terminal collision event.
func NewGameOverEvent(tick int32, head components.GridPos, cause string) Event {
	return Event{Type: EventGameOver, Tick: tick, Pos: head, Cause: cause}
}
