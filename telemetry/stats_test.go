package telemetry

import (
	"math"
	"slices"
	"testing"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestPercentileReturnsSample(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	prev := math.Inf(-1)
	for _, p := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		got := Percentile(sorted, p)
		if !slices.Contains(sorted, got) {
			t.Errorf("Percentile(%v) = %v, not a sample value", p, got)
		}
		if got < prev {
			t.Errorf("Percentile(%v) = %v, below previous %v", p, got, prev)
		}
		prev = got
	}
}

func TestComputeDistribution(t *testing.T) {
	values := []float64{10, 1, 9, 2, 8, 3, 7, 4, 6, 5}
	mean, p10, p50, p90 := ComputeDistribution(values)

	if math.Abs(mean-5.5) > 0.001 {
		t.Errorf("mean = %v, want 5.5", mean)
	}
	if !(p10 <= p50 && p50 <= p90) {
		t.Errorf("percentiles not ordered: p10=%v p50=%v p90=%v", p10, p50, p90)
	}
	if p10 < 1 || p90 > 10 {
		t.Errorf("percentiles out of range: p10=%v p90=%v", p10, p90)
	}

	// Input must not be reordered.
	if values[0] != 10 || values[1] != 1 {
		t.Errorf("ComputeDistribution sorted its input: %v", values)
	}
}

func TestComputeDistributionEmpty(t *testing.T) {
	mean, p10, p50, p90 := ComputeDistribution(nil)

	if mean != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty slice should return all zeros")
	}
}

func TestSummarize(t *testing.T) {
	sessions := []SessionStats{
		{Score: 2, Length: 4, Ticks: 100, Cause: "wall_collision"},
		{Score: 4, Length: 6, Ticks: 200, Cause: "self_collision"},
		{Score: 6, Length: 8, Ticks: 300, Cause: "wall_collision"},
		{Score: 0, Length: 2, Ticks: 400, Cause: "unfinished"},
	}

	sum := Summarize(sessions)

	if sum.Games != 4 {
		t.Errorf("Games = %d, want 4", sum.Games)
	}
	if math.Abs(sum.ScoreMean-3) > 0.001 {
		t.Errorf("ScoreMean = %v, want 3", sum.ScoreMean)
	}
	if sum.ScoreMax != 6 {
		t.Errorf("ScoreMax = %v, want 6", sum.ScoreMax)
	}
	if sum.ScoreStd <= 0 {
		t.Errorf("ScoreStd = %v, want > 0", sum.ScoreStd)
	}
	if math.Abs(sum.LengthMean-5) > 0.001 {
		t.Errorf("LengthMean = %v, want 5", sum.LengthMean)
	}
	if math.Abs(sum.TicksMean-250) > 0.001 {
		t.Errorf("TicksMean = %v, want 250", sum.TicksMean)
	}
	if sum.WallCollisions != 2 || sum.SelfCollisions != 1 || sum.Unfinished != 1 {
		t.Errorf("causes = wall %d, self %d, unfinished %d; want 2, 1, 1",
			sum.WallCollisions, sum.SelfCollisions, sum.Unfinished)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	if sum.Games != 0 || sum.ScoreMean != 0 || sum.ScoreMax != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero summary", sum)
	}
}

func TestSummarizeSingleSession(t *testing.T) {
	sum := Summarize([]SessionStats{{Score: 7, Cause: "self_collision"}})
	if sum.ScoreStd != 0 {
		t.Errorf("ScoreStd = %v, want 0 for one session", sum.ScoreStd)
	}
	if sum.ScoreMax != 7 {
		t.Errorf("ScoreMax = %v, want 7", sum.ScoreMax)
	}
}
