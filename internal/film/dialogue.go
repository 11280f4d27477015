package film

import "math"

// DialogueWindowS bounds how far (in seconds) a candidate timestamp may sit
// from a dialogue event before the event stops counting as "nearby".
const DialogueWindowS = 5.0

// NearestEmotion returns the sentiment of the dialogue event closest to
// timestampS. Events that directly overlap the timestamp win outright;
// otherwise the event with the nearest midpoint within windowS is used.
// Returns EmotionNeutral when nothing is close enough.
func NearestEmotion(events []DialogueEvent, timestampS, windowS float64) Emotion {
	if ev, ok := nearestEvent(events, timestampS, windowS); ok {
		return ev.Emotion
	}
	return EmotionNeutral
}

// ExcerptNear returns the text of the dialogue event closest to timestampS,
// or an empty string when no event lies within windowS. Silent action shots
// legitimately produce empty excerpts.
func ExcerptNear(events []DialogueEvent, timestampS, windowS float64) string {
	if ev, ok := nearestEvent(events, timestampS, windowS); ok {
		return ev.Text
	}
	return ""
}

func nearestEvent(events []DialogueEvent, timestampS, windowS float64) (DialogueEvent, bool) {
	if len(events) == 0 {
		return DialogueEvent{}, false
	}
	for _, ev := range events {
		if ev.StartS <= timestampS && timestampS <= ev.EndS {
			return ev, true
		}
	}
	bestDist := math.Inf(1)
	var best DialogueEvent
	for _, ev := range events {
		dist := math.Abs(timestampS - ev.MidpointS())
		if dist < bestDist {
			bestDist = dist
			best = ev
		}
	}
	if bestDist <= windowS {
		return best, true
	}
	return DialogueEvent{}, false
}
