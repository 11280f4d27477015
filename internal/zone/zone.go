package zone

import (
	"strings"

	"trailcut/internal/anchors"
	"trailcut/internal/textutil"
)

// Zone is a macro arc bucket on the trailer's dramatic curve.
type Zone string

const (
	Beginning  Zone = "BEGINNING"
	Escalation Zone = "ESCALATION"
	Climax     Zone = "CLIMAX"
)

// Priority returns the ordering rank of a zone. Unknown zones sort last.
func (z Zone) Priority() int {
	switch z {
	case Beginning:
		return 0
	case Escalation:
		return 1
	case Climax:
		return 2
	default:
		return 3
	}
}

// Zone description phrases. These characterize each zone's semantic register
// and are stable across films, so they are embedded once at construction.
var zonePhrases = []struct {
	zone   Zone
	phrase string
}{
	{Beginning, "introduction setup ordinary world character establishment calm before the storm"},
	{Escalation, "rising tension conflict confrontation danger intensifying stakes escalating pressure"},
	{Climax, "peak crisis final battle decisive moment maximum intensity explosive showdown climax"},
}

// Assigner places clips into zones by semantic similarity against the zone
// phrases, with a position fallback for silent clips.
type Assigner struct {
	phrases []*textutil.Fingerprint
}

// NewAssigner builds an assigner with the zone phrases pre-embedded.
func NewAssigner() *Assigner {
	a := &Assigner{phrases: make([]*textutil.Fingerprint, len(zonePhrases))}
	for i, zp := range zonePhrases {
		a.phrases[i] = textutil.NewFingerprint(zp.phrase)
	}
	return a
}

// Assign picks the zone for one clip. With dialogue text present, the
// nearest zone phrase by cosine similarity wins; when the text is empty or
// shares no vocabulary with any phrase, the clip's midpoint is placed against
// the structural anchors instead.
func (a *Assigner) Assign(dialogueText string, midpointS, durationS float64, anc *anchors.Anchors) Zone {
	if strings.TrimSpace(dialogueText) == "" {
		return byPosition(midpointS, durationS, anc)
	}
	text := textutil.NewFingerprint(dialogueText)
	if text == nil {
		return byPosition(midpointS, durationS, anc)
	}

	best := -1
	bestSim := 0.0
	for i, phrase := range a.phrases {
		sim := textutil.CosineSimilarity(text, phrase)
		if sim > bestSim {
			best = i
			bestSim = sim
		}
	}
	// All similarities zero: the text told us nothing, fall back to position.
	if best < 0 {
		return byPosition(midpointS, durationS, anc)
	}
	return zonePhrases[best].zone
}

// byPosition splits the timeline at the escalation and climax anchors,
// substituting the fixed-fraction heuristic when no anchors exist at all.
func byPosition(midpointS, durationS float64, anc *anchors.Anchors) Zone {
	if anc == nil {
		h := anchors.Heuristic(durationS)
		anc = &h
	}
	switch {
	case midpointS < anc.EscalationT:
		return Beginning
	case midpointS < anc.ClimaxT:
		return Escalation
	default:
		return Climax
	}
}
