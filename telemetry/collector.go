package telemetry

// Collector accumulates events for one game session and produces SessionStats.
type Collector struct {
	dt float64

	session   int
	seed      int64
	startTick int32

	// Event counters for the current session
	turns          int
	moves          int
	foodSpawned    int
	foodCollected  int
	growthSkipped  int
	lastSpawnTick  int32
	spawnToCollect []float64 // ticks from spawn to collection, per item

	over  bool
	cause string
}

// NewCollector creates a new session collector.
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(dt float64) *Collector {
	return &Collector{dt: dt}
}

// Begin resets the counters for a new session.
func (c *Collector) Begin(session int, seed int64, tick int32) {
	*c = Collector{
		dt:        c.dt,
		session:   session,
		seed:      seed,
		startTick: tick,
	}
}

// Record updates the counters for a single event.
func (c *Collector) Record(e Event) {
	switch e.Type {
	case EventTurn:
		c.turns++
	case EventMove:
		c.moves++
	case EventFoodSpawned:
		c.foodSpawned++
		c.lastSpawnTick = e.Tick
	case EventFoodCollected:
		c.foodCollected++
		c.spawnToCollect = append(c.spawnToCollect, float64(e.Tick-c.lastSpawnTick))
		if !e.Grew {
			c.growthSkipped++
		}
	case EventGameOver:
		c.over = true
		c.cause = e.Cause
	}
}

// Over reports whether a game over event was recorded.
func (c *Collector) Over() bool {
	return c.over
}

// Finish produces the stats for the session ending at tick.
func (c *Collector) Finish(tick int32, score uint32, length int) SessionStats {
	ticks := tick - c.startTick
	cause := c.cause
	if !c.over {
		cause = "unfinished"
	}

	mean, _, p50, _ := ComputeDistribution(c.spawnToCollect)

	return SessionStats{
		Session:          c.session,
		Seed:             c.seed,
		Ticks:            ticks,
		SimTimeSec:       float64(ticks) * c.dt,
		Score:            score,
		Length:           length,
		Turns:            c.turns,
		Moves:            c.moves,
		FoodSpawned:      c.foodSpawned,
		FoodCollected:    c.foodCollected,
		GrowthSkipped:    c.growthSkipped,
		CollectTicksMean: mean,
		CollectTicksP50:  p50,
		Cause:            cause,
	}
}
