package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimerFiresOnPeriod(t *testing.T) {
	timer := NewTimer(0.5)

	assert.False(t, timer.Tick(0.25))
	assert.False(t, timer.JustFinished())
	assert.True(t, timer.Tick(0.25))
	assert.True(t, timer.JustFinished())
	assert.False(t, timer.Tick(0.25))
	assert.True(t, timer.Tick(0.25))
}

func TestTimerCarriesOvershoot(t *testing.T) {
	timer := NewTimer(1.0)

	assert.True(t, timer.Tick(1.25))
	assert.InDelta(t, 0.25, timer.Elapsed(), 1e-9)
	assert.True(t, timer.Tick(0.75))
	assert.InDelta(t, 0.0, timer.Elapsed(), 1e-9)
}

func TestTimerLongTickFiresOnce(t *testing.T) {
	timer := NewTimer(0.5)

	assert.True(t, timer.Tick(1.6))
	assert.InDelta(t, 0.1, timer.Elapsed(), 1e-9)
}

func TestTimerReset(t *testing.T) {
	timer := NewTimer(1.0)

	assert.True(t, timer.Tick(1.5))
	timer.Reset()
	assert.Equal(t, 0.0, timer.Elapsed())
	assert.False(t, timer.Tick(0.9))
}

func TestTimerZeroDurationFiresEveryTick(t *testing.T) {
	timer := NewTimer(0)

	for i := 0; i < 3; i++ {
		assert.True(t, timer.Tick(0.01))
	}
}
