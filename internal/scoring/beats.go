package scoring

import "trailcut/internal/film"

// BeatType is one of the 7 narrative-function labels a scene can play in the
// trailer.
type BeatType string

const (
	BeatIncitingIncident BeatType = "inciting_incident"
	BeatCharacterIntro   BeatType = "character_introduction"
	BeatEscalation       BeatType = "escalation_beat"
	BeatRelationship     BeatType = "relationship_beat"
	BeatMoneyShot        BeatType = "money_shot"
	BeatClimaxPeak       BeatType = "climax_peak"
	BeatBreath           BeatType = "breath"
)

// Act is the six-way chronological bucket used for visual treatment only.
// It must never be conflated with the narrative zone, which drives ordering.
type Act string

const (
	ActColdOpen Act = "cold_open"
	ActOne      Act = "act1"
	ActTwo      Act = "act2"
	ActBeatDrop Act = "beat_drop"
	ActBreath   Act = "breath"
	ActThree    Act = "act3"
)

// BeatInput is everything the classifier looks at for one scene.
type BeatInput struct {
	Position float64
	Emotion  film.Emotion
	Score    float64
	HasFace  bool
}

type beatRule struct {
	name  string
	match func(in BeatInput) bool
	beat  BeatType
}

// beatRules is the ordered priority chain; the first matching rule wins and
// the final catch-all keeps the classifier total.
var beatRules = []beatRule{
	{
		name:  "low score and neutral sentiment",
		match: func(in BeatInput) bool { return in.Score < 0.20 && in.Emotion == film.EmotionNeutral },
		beat:  BeatBreath,
	},
	{
		name:  "late and strong",
		match: func(in BeatInput) bool { return in.Position > 0.75 && in.Score > 0.70 },
		beat:  BeatClimaxPeak,
	},
	{
		name:  "very high score anywhere",
		match: func(in BeatInput) bool { return in.Score > 0.80 },
		beat:  BeatMoneyShot,
	},
	{
		name: "early face, not intense",
		match: func(in BeatInput) bool {
			return in.Position < 0.15 && in.HasFace && in.Emotion != film.EmotionIntense
		},
		beat: BeatCharacterIntro,
	},
	{
		name:  "early-ish and intense",
		match: func(in BeatInput) bool { return in.Position < 0.30 && in.Emotion == film.EmotionIntense },
		beat:  BeatIncitingIncident,
	},
	{
		name:  "romantic with face",
		match: func(in BeatInput) bool { return in.Emotion == film.EmotionRomantic && in.HasFace },
		beat:  BeatRelationship,
	},
	{
		name: "intense or negative sentiment",
		match: func(in BeatInput) bool {
			return in.Emotion == film.EmotionIntense || in.Emotion == film.EmotionNegative
		},
		beat: BeatEscalation,
	},
	{
		name:  "catch-all",
		match: func(BeatInput) bool { return true },
		beat:  BeatEscalation,
	},
}

// ClassifyBeat walks the rule chain and returns the first matching beat.
// The catch-all guarantees a result for every input.
func ClassifyBeat(in BeatInput) BeatType {
	for _, rule := range beatRules {
		if rule.match(in) {
			return rule.beat
		}
	}
	// Unreachable: the last rule always matches.
	return BeatEscalation
}

// AssignAct buckets a scene chronologically for visual treatment. A breath
// beat forces the breath act regardless of position.
func AssignAct(position float64, beat BeatType) Act {
	if beat == BeatBreath {
		return ActBreath
	}
	switch {
	case position < 0.08:
		return ActColdOpen
	case position < 0.35:
		return ActOne
	case position < 0.55:
		return ActTwo
	case position < 0.65:
		return ActBeatDrop
	case position < 0.82:
		return ActTwo
	default:
		return ActThree
	}
}
