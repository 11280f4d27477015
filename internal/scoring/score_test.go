package scoring

import (
	"math"
	"testing"

	"trailcut/internal/signals"
)

func TestWeightsSumToOne(t *testing.T) {
	if math.Abs(WeightSum()-1.0) > 1e-9 {
		t.Fatalf("weights sum to %f, want 1.0", WeightSum())
	}
	if len(Weights) != len(signals.Keys) {
		t.Fatalf("weight table has %d entries, want %d", len(Weights), len(signals.Keys))
	}
}

func TestNormalizePool(t *testing.T) {
	got := NormalizePool([]float64{0.0, 10.0, 5.0})
	want := []float64{0.0, 1.0, 0.5}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("normalize[%d] = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestNormalizePoolDegenerate(t *testing.T) {
	got := NormalizePool([]float64{5.0, 5.0, 5.0})
	for i, v := range got {
		if v != 0.5 {
			t.Fatalf("degenerate pool value[%d] = %f, want exactly 0.5", i, v)
		}
		if math.IsNaN(v) {
			t.Fatalf("degenerate pool produced NaN at %d", i)
		}
	}
}

func TestNormalizePoolEmpty(t *testing.T) {
	if got := NormalizePool(nil); got != nil {
		t.Fatalf("expected nil for empty pool, got %v", got)
	}
}

func uniformSignals(v float64) signals.RawSignals {
	return signals.RawSignals{
		MotionMagnitude:         v,
		VisualContrast:          v,
		SceneUniqueness:         v,
		SubtitleEmotionalWeight: v,
		FacePresence:            v,
		DescriptionConfidence:   v,
		Saturation:              v,
		ChronologicalPosition:   v,
	}
}

func TestNormalizeAllAndScore(t *testing.T) {
	pool := []signals.RawSignals{uniformSignals(1.0), uniformSignals(0.0), uniformSignals(0.5)}
	normalized := NormalizeAll(pool)
	want := []float64{1.0, 0.0, 0.5}
	for i, norm := range normalized {
		score := Score(norm)
		if math.Abs(score-want[i]) > 1e-9 {
			t.Fatalf("score[%d] = %f, want %f", i, score, want[i])
		}
	}
}

func TestNormalizeAllDegeneratePool(t *testing.T) {
	pool := []signals.RawSignals{uniformSignals(3.0), uniformSignals(3.0)}
	for _, norm := range NormalizeAll(pool) {
		for key, v := range norm {
			if v != 0.5 {
				t.Fatalf("degenerate pool: %s = %f, want 0.5", key, v)
			}
		}
		if score := Score(norm); math.Abs(score-0.5) > 1e-9 {
			t.Fatalf("degenerate pool score = %f, want 0.5", score)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	pools := [][]signals.RawSignals{
		{uniformSignals(0), uniformSignals(1000), uniformSignals(-3)},
		{uniformSignals(42)},
		{
			{MotionMagnitude: 9, Saturation: 120},
			{VisualContrast: 400, FacePresence: 1},
			{SubtitleEmotionalWeight: 0.7, ChronologicalPosition: 0.99},
		},
	}
	for _, pool := range pools {
		for _, norm := range NormalizeAll(pool) {
			score := Score(norm)
			if score < 0 || score > 1+1e-9 {
				t.Fatalf("score %f outside [0,1]", score)
			}
		}
	}
}
