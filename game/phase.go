package game

// Phase is the game's lifecycle state.
type Phase uint8

const (
	Playing  Phase = iota // Initial
	GameOver              // Terminal; the grid systems no longer run
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}
