package vibes

import (
	"fmt"
	"sort"
	"strings"
)

// Transition is a cut style between adjacent clips.
type Transition string

const (
	HardCut     Transition = "hard_cut"
	Crossfade   Transition = "crossfade"
	FadeToBlack Transition = "fade_to_black"
	FadeToWhite Transition = "fade_to_white"
)

// Profile carries the editing constraints for one genre.
type Profile struct {
	Name         string
	ClipCountMin int
	ClipCountMax int

	// Target average clip duration per act, in seconds. The pacing curve
	// shrinks toward act 3.
	Act1AvgCutS float64
	Act2AvgCutS float64
	Act3AvgCutS float64

	// PrimaryTransition joins most clips; SecondaryTransition marks act
	// boundaries (cold open, beat drop, act 3 entry).
	PrimaryTransition   Transition
	SecondaryTransition Transition
}

// profiles is keyed by canonical genre name. Every Profile.Name matches its
// key.
var profiles = map[string]Profile{
	"action": {
		Name: "action", ClipCountMin: 20, ClipCountMax: 32,
		Act1AvgCutS: 4.0, Act2AvgCutS: 2.5, Act3AvgCutS: 1.2,
		PrimaryTransition: HardCut, SecondaryTransition: FadeToBlack,
	},
	"adventure": {
		Name: "adventure", ClipCountMin: 18, ClipCountMax: 28,
		Act1AvgCutS: 4.5, Act2AvgCutS: 3.0, Act3AvgCutS: 1.8,
		PrimaryTransition: Crossfade, SecondaryTransition: FadeToBlack,
	},
	"animation": {
		Name: "animation", ClipCountMin: 16, ClipCountMax: 26,
		Act1AvgCutS: 4.0, Act2AvgCutS: 3.0, Act3AvgCutS: 2.0,
		PrimaryTransition: HardCut, SecondaryTransition: FadeToWhite,
	},
	"comedy": {
		Name: "comedy", ClipCountMin: 14, ClipCountMax: 24,
		Act1AvgCutS: 4.5, Act2AvgCutS: 3.5, Act3AvgCutS: 2.2,
		PrimaryTransition: HardCut, SecondaryTransition: FadeToWhite,
	},
	"crime": {
		Name: "crime", ClipCountMin: 16, ClipCountMax: 26,
		Act1AvgCutS: 5.0, Act2AvgCutS: 3.0, Act3AvgCutS: 1.6,
		PrimaryTransition: HardCut, SecondaryTransition: FadeToBlack,
	},
	"documentary": {
		Name: "documentary", ClipCountMin: 10, ClipCountMax: 18,
		Act1AvgCutS: 6.0, Act2AvgCutS: 5.0, Act3AvgCutS: 3.5,
		PrimaryTransition: Crossfade, SecondaryTransition: FadeToBlack,
	},
	"drama": {
		Name: "drama", ClipCountMin: 12, ClipCountMax: 20,
		Act1AvgCutS: 5.5, Act2AvgCutS: 4.0, Act3AvgCutS: 2.5,
		PrimaryTransition: Crossfade, SecondaryTransition: FadeToBlack,
	},
	"family": {
		Name: "family", ClipCountMin: 14, ClipCountMax: 22,
		Act1AvgCutS: 4.5, Act2AvgCutS: 3.5, Act3AvgCutS: 2.5,
		PrimaryTransition: Crossfade, SecondaryTransition: FadeToWhite,
	},
	"fantasy": {
		Name: "fantasy", ClipCountMin: 16, ClipCountMax: 26,
		Act1AvgCutS: 5.0, Act2AvgCutS: 3.5, Act3AvgCutS: 1.8,
		PrimaryTransition: Crossfade, SecondaryTransition: FadeToWhite,
	},
	"history": {
		Name: "history", ClipCountMin: 12, ClipCountMax: 20,
		Act1AvgCutS: 6.0, Act2AvgCutS: 4.5, Act3AvgCutS: 2.8,
		PrimaryTransition: Crossfade, SecondaryTransition: FadeToBlack,
	},
	"horror": {
		Name: "horror", ClipCountMin: 16, ClipCountMax: 28,
		Act1AvgCutS: 5.5, Act2AvgCutS: 3.0, Act3AvgCutS: 1.0,
		PrimaryTransition: FadeToBlack, SecondaryTransition: HardCut,
	},
	"music": {
		Name: "music", ClipCountMin: 14, ClipCountMax: 24,
		Act1AvgCutS: 4.0, Act2AvgCutS: 3.0, Act3AvgCutS: 2.0,
		PrimaryTransition: Crossfade, SecondaryTransition: FadeToWhite,
	},
	"mystery": {
		Name: "mystery", ClipCountMin: 14, ClipCountMax: 22,
		Act1AvgCutS: 5.5, Act2AvgCutS: 3.5, Act3AvgCutS: 1.8,
		PrimaryTransition: FadeToBlack, SecondaryTransition: HardCut,
	},
	"romance": {
		Name: "romance", ClipCountMin: 12, ClipCountMax: 20,
		Act1AvgCutS: 5.5, Act2AvgCutS: 4.5, Act3AvgCutS: 3.0,
		PrimaryTransition: Crossfade, SecondaryTransition: FadeToWhite,
	},
	"sci-fi": {
		Name: "sci-fi", ClipCountMin: 18, ClipCountMax: 28,
		Act1AvgCutS: 4.5, Act2AvgCutS: 3.0, Act3AvgCutS: 1.4,
		PrimaryTransition: HardCut, SecondaryTransition: FadeToBlack,
	},
	"thriller": {
		Name: "thriller", ClipCountMin: 18, ClipCountMax: 28,
		Act1AvgCutS: 4.5, Act2AvgCutS: 2.8, Act3AvgCutS: 1.2,
		PrimaryTransition: HardCut, SecondaryTransition: FadeToBlack,
	},
	"war": {
		Name: "war", ClipCountMin: 16, ClipCountMax: 26,
		Act1AvgCutS: 5.0, Act2AvgCutS: 3.0, Act3AvgCutS: 1.5,
		PrimaryTransition: HardCut, SecondaryTransition: FadeToBlack,
	},
	"western": {
		Name: "western", ClipCountMin: 12, ClipCountMax: 20,
		Act1AvgCutS: 6.0, Act2AvgCutS: 4.0, Act3AvgCutS: 2.0,
		PrimaryTransition: Crossfade, SecondaryTransition: FadeToBlack,
	},
}

// aliases maps common spelling variants to canonical names.
var aliases = map[string]string{
	"scifi":  "sci-fi",
	"sci_fi": "sci-fi",
}

// Lookup resolves a vibe name, case-insensitively and through the alias
// table, to its profile.
func Lookup(name string) (Profile, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	profile, ok := profiles[key]
	if !ok {
		return Profile{}, fmt.Errorf("unknown vibe %q (valid vibes: %s)", name, strings.Join(Names(), ", "))
	}
	return profile, nil
}

// Names returns the canonical vibe names in sorted order.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
