package anchors

import "math"

// Source records how a set of anchors was derived.
type Source string

const (
	SourceModel     Source = "model"
	SourceHeuristic Source = "heuristic"
)

// Anchors holds the three pivot timestamps, in seconds on the film timeline.
// Computed once per run and immutable afterwards.
type Anchors struct {
	BeginT      float64 `json:"begin_t"`
	EscalationT float64 `json:"escalation_t"`
	ClimaxT     float64 `json:"climax_t"`
	Source      Source  `json:"source"`
}

// Heuristic fractions of the film duration used when no model is available.
const (
	heuristicBeginFrac      = 0.05
	heuristicEscalationFrac = 0.45
	heuristicClimaxFrac     = 0.80
)

// Heuristic returns the fixed-fraction anchors for a film of the given
// duration: 5% / 45% / 80%, rounded to centiseconds.
func Heuristic(durationS float64) Anchors {
	return Anchors{
		BeginT:      round2(durationS * heuristicBeginFrac),
		EscalationT: round2(durationS * heuristicEscalationFrac),
		ClimaxT:     round2(durationS * heuristicClimaxFrac),
		Source:      SourceHeuristic,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
