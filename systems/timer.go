package systems

// Timer is a repeating countdown driven by simulated time.
type Timer struct {
	duration float64
	elapsed  float64
	finished bool
}

// NewTimer creates a repeating timer that fires every duration seconds.
func NewTimer(duration float64) *Timer {
	return &Timer{duration: duration}
}

// Tick advances the timer by dt seconds and reports whether it fired.
// Overshoot carries into the next period; a tick spanning several periods
// still fires once.
func (t *Timer) Tick(dt float64) bool {
	t.finished = false
	if t.duration <= 0 {
		t.finished = true
		return true
	}

	t.elapsed += dt
	for t.elapsed >= t.duration {
		t.elapsed -= t.duration
		t.finished = true
	}
	return t.finished
}

// JustFinished reports whether the last Tick fired.
func (t *Timer) JustFinished() bool {
	return t.finished
}

// Reset discards accumulated time, overshoot included.
func (t *Timer) Reset() {
	t.elapsed = 0
}

// Elapsed returns seconds accumulated toward the next firing.
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Duration returns the timer period in seconds.
func (t *Timer) Duration() float64 {
	return t.duration
}
