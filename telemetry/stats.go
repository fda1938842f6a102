package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SessionStats holds the outcome of one game.
type SessionStats struct {
	Session    int     `csv:"session"`
	Seed       int64   `csv:"seed"`
	Ticks      int32   `csv:"ticks"`
	SimTimeSec float64 `csv:"sim_time"`

	Score  uint32 `csv:"score"`
	Length int    `csv:"length"`

	// Events during the session
	Turns         int `csv:"turns"`
	Moves         int `csv:"moves"`
	FoodSpawned   int `csv:"food_spawned"`
	FoodCollected int `csv:"food_collected"`
	GrowthSkipped int `csv:"growth_skipped"`

	// Ticks between a food item appearing and being eaten
	CollectTicksMean float64 `csv:"collect_ticks_mean"`
	CollectTicksP50  float64 `csv:"collect_ticks_p50"`

	Cause string `csv:"cause"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// ComputeDistribution calculates mean and percentiles of values.
func ComputeDistribution(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, p10, p50, p90
}

// BatchSummary aggregates the sessions of a headless run.
type BatchSummary struct {
	Games int

	ScoreMean, ScoreStd float64
	ScoreP10, ScoreP50  float64
	ScoreP90, ScoreMax  float64

	LengthMean float64
	TicksMean  float64

	WallCollisions int
	SelfCollisions int
	Unfinished     int
}

// Summarize computes a BatchSummary over sessions.
func Summarize(sessions []SessionStats) BatchSummary {
	sum := BatchSummary{Games: len(sessions)}
	if len(sessions) == 0 {
		return sum
	}

	scores := make([]float64, len(sessions))
	lengths := make([]float64, len(sessions))
	ticks := make([]float64, len(sessions))
	for i, s := range sessions {
		scores[i] = float64(s.Score)
		lengths[i] = float64(s.Length)
		ticks[i] = float64(s.Ticks)

		switch s.Cause {
		case "wall_collision":
			sum.WallCollisions++
		case "self_collision":
			sum.SelfCollisions++
		default:
			sum.Unfinished++
		}
	}

	sum.ScoreMean, sum.ScoreP10, sum.ScoreP50, sum.ScoreP90 = ComputeDistribution(scores)
	if len(scores) > 1 {
		sum.ScoreStd = stat.StdDev(scores, nil)
	}
	sum.ScoreMax = scores[0]
	for _, s := range scores[1:] {
		sum.ScoreMax = max(sum.ScoreMax, s)
	}
	sum.LengthMean = stat.Mean(lengths, nil)
	sum.TicksMean = stat.Mean(ticks, nil)

	return sum
}

// LogValue implements slog.LogValuer for structured logging.
func (s SessionStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("session", s.Session),
		slog.Int64("seed", s.Seed),
		slog.Int("ticks", int(s.Ticks)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("score", int(s.Score)),
		slog.Int("length", s.Length),
		slog.Int("turns", s.Turns),
		slog.Int("moves", s.Moves),
		slog.Int("food_spawned", s.FoodSpawned),
		slog.Int("food_collected", s.FoodCollected),
		slog.Int("growth_skipped", s.GrowthSkipped),
		slog.Float64("collect_ticks_mean", s.CollectTicksMean),
		slog.String("cause", s.Cause),
	)
}

// LogStats logs the session stats using slog.
func (s SessionStats) LogStats() {
	slog.Info("session", "stats", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (b BatchSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("games", b.Games),
		slog.Float64("score_mean", b.ScoreMean),
		slog.Float64("score_std", b.ScoreStd),
		slog.Float64("score_p10", b.ScoreP10),
		slog.Float64("score_p50", b.ScoreP50),
		slog.Float64("score_p90", b.ScoreP90),
		slog.Float64("score_max", b.ScoreMax),
		slog.Float64("length_mean", b.LengthMean),
		slog.Float64("ticks_mean", b.TicksMean),
		slog.Int("wall_collisions", b.WallCollisions),
		slog.Int("self_collisions", b.SelfCollisions),
		slog.Int("unfinished", b.Unfinished),
	)
}
