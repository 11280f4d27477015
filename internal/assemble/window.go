package assemble

import (
	"trailcut/internal/scoring"
	"trailcut/internal/vibes"
)

const (
	// minClipGapS separates chronologically adjacent clips after overlap
	// resolution.
	minClipGapS = 0.5
	// minClipDurationS is the shortest clip the renderer can use.
	minClipDurationS = 0.5
	// windowBiasBefore places the keyframe 30% into its clip window, so most
	// of the clip plays out after the moment that earned its score.
	windowBiasBefore = 0.3
)

// ClipWindow is a half-open interval on the source film's timeline.
type ClipWindow struct {
	StartS float64
	EndS   float64
}

// DurationS returns the window length in seconds.
func (w ClipWindow) DurationS() float64 {
	return w.EndS - w.StartS
}

// MidpointS returns the window's midpoint on the film timeline.
func (w ClipWindow) MidpointS() float64 {
	return (w.StartS + w.EndS) / 2
}

// actDuration maps an act to its target clip duration from the vibe profile.
// Breath clips linger half again as long as the act 2 target.
func actDuration(act scoring.Act, profile vibes.Profile) float64 {
	switch act {
	case scoring.ActColdOpen, scoring.ActOne:
		return profile.Act1AvgCutS
	case scoring.ActBreath:
		return profile.Act2AvgCutS * 1.5
	case scoring.ActThree:
		return profile.Act3AvgCutS
	default:
		return profile.Act2AvgCutS
	}
}

// computeWindow builds the clip window around a keyframe timestamp, biased
// 30% before / 70% after, clamped to the film bounds.
func computeWindow(timestampS float64, act scoring.Act, profile vibes.Profile, durationS float64) ClipWindow {
	target := actDuration(act, profile)
	start := timestampS - target*windowBiasBefore
	if start < 0 {
		start = 0
	}
	end := timestampS + target*(1-windowBiasBefore)
	if end > durationS {
		end = durationS
	}
	return ClipWindow{StartS: start, EndS: end}
}

// resolveOverlaps walks chronologically ordered windows and shrinks any
// window that runs into its successor, leaving at least minClipGapS between
// adjacent clips. A window squeezed below the start of its own keyframe
// range becomes degenerate (EndS <= StartS) and is dropped by the caller.
func resolveOverlaps(windows []ClipWindow) []ClipWindow {
	if len(windows) <= 1 {
		return windows
	}
	out := append([]ClipWindow(nil), windows...)
	for i := 0; i < len(out)-1; i++ {
		if out[i].EndS > out[i+1].StartS {
			out[i].EndS = out[i+1].StartS - minClipGapS
		}
	}
	return out
}
