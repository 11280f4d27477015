package assemble

import (
	"trailcut/internal/film"
	"trailcut/internal/scoring"
	"trailcut/internal/signals"
	"trailcut/internal/zone"
)

// scoredScene is one candidate after scoring and classification, before
// selection.
type scoredScene struct {
	scene      film.CandidateScene
	raw        signals.RawSignals
	normalized scoring.Normalized
	score      float64
	emotion    film.Emotion
	beat       scoring.BeatType
	act        scoring.Act
}

// clip is a kept scene with its resolved window and zone, ready to become a
// manifest entry.
type clip struct {
	scoredScene
	window ClipWindow
	zone   zone.Zone
}
