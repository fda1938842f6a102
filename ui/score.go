package ui

import "strconv"

// ScoreText is the one-line score label. The string is rebuilt only when
// the value it shows changes.
type ScoreText struct {
	value   uint32
	text    string
	renders int
}

// NewScoreText creates a label showing "Score: 0".
func NewScoreText() *ScoreText {
	s := &ScoreText{}
	s.render()
	return s
}

// Set updates the label for score. Returns true if the text was re-rendered.
func (s *ScoreText) Set(score uint32) bool {
	if score == s.value {
		return false
	}
	s.value = score
	s.render()
	return true
}

func (s *ScoreText) render() {
	s.text = "Score: " + strconv.FormatUint(uint64(s.value), 10)
	s.renders++
}

// Text returns the current label.
func (s *ScoreText) Text() string {
	return s.text
}

// Value returns the score the label shows.
func (s *ScoreText) Value() uint32 {
	return s.value
}

// Renders returns how many times the label has been rebuilt, initial render included.
func (s *ScoreText) Renders() int {
	return s.renders
}
