package assemble

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"trailcut/internal/anchors"
	"trailcut/internal/film"
	"trailcut/internal/manifest"
	"trailcut/internal/scoring"
	"trailcut/internal/signals"
	"trailcut/internal/vibes"
	"trailcut/internal/zone"
)

// Structurally invalid input is an upstream configuration error and the only
// condition that aborts a run.
var (
	ErrEmptyPool       = errors.New("candidate pool is empty")
	ErrInvalidDuration = errors.New("film duration must be positive")
)

// Input is everything one assembly run consumes. All fields are staged by
// collaborators before the run and treated as immutable.
type Input struct {
	SourceFile string
	Profile    vibes.Profile
	Scenes     []film.CandidateScene
	Dialogue   []film.DialogueEvent
	DurationS  float64
}

// Engine orchestrates one assembly run. Construct once, run per film.
type Engine struct {
	signals *signals.Extractor
	anchors *anchors.Extractor
	zones   *zone.Assigner
	logger  *slog.Logger
}

// NewEngine wires the pipeline stages together. The anchor extractor may be
// built without a text generator; the run then uses heuristic anchors.
func NewEngine(sig *signals.Extractor, anc *anchors.Extractor, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		signals: sig,
		anchors: anc,
		zones:   zone.NewAssigner(),
		logger:  logger,
	}
}

// Run executes the full pipeline and returns the ordered trailer manifest.
func (e *Engine) Run(ctx context.Context, in Input) (*manifest.Manifest, error) {
	if len(in.Scenes) == 0 {
		return nil, ErrEmptyPool
	}
	if in.DurationS <= 0 {
		return nil, fmt.Errorf("%w: got %.3f", ErrInvalidDuration, in.DurationS)
	}

	e.logger.Info("assembly run started",
		"source", in.SourceFile, "vibe", in.Profile.Name,
		"candidates", len(in.Scenes), "dialogue_events", len(in.Dialogue))

	scored := e.scorePool(in)
	anc := e.anchors.Extract(ctx, in.Dialogue, in.DurationS)
	clips := e.buildClips(scored, in, anc)
	if len(clips) == 0 {
		return nil, errors.New("no usable clips survived windowing")
	}

	orderClips(clips)
	enforcePacing(clips, in.Profile.Act3AvgCutS)

	m := manifest.New(in.SourceFile, in.Profile.Name)
	m.Anchors = &anc
	m.Clips = make([]manifest.ClipEntry, len(clips))
	for i, c := range clips {
		m.Clips[i] = e.clipEntry(c, in)
	}

	e.logger.Info("assembly run finished",
		"run_id", m.RunID, "clips", len(m.Clips), "anchor_source", anc.Source)
	return m, nil
}

// scorePool extracts signals, normalizes them across the pool, and scores
// and classifies every candidate.
func (e *Engine) scorePool(in Input) []scoredScene {
	raw := e.signals.ExtractPool(in.Scenes, in.Dialogue, in.DurationS)
	normalized := scoring.NormalizeAll(raw)

	scored := make([]scoredScene, len(in.Scenes))
	for i, scene := range in.Scenes {
		score := scoring.Score(normalized[i])
		emotion := film.NearestEmotion(in.Dialogue, scene.TimestampS, film.DialogueWindowS)
		beat := scoring.ClassifyBeat(scoring.BeatInput{
			Position: raw[i].ChronologicalPosition,
			Emotion:  emotion,
			Score:    score,
			HasFace:  raw[i].FacePresence > 0.5,
		})
		scored[i] = scoredScene{
			scene:      scene,
			raw:        raw[i],
			normalized: normalized[i],
			score:      score,
			emotion:    emotion,
			beat:       beat,
			act:        scoring.AssignAct(raw[i].ChronologicalPosition, beat),
		}
	}
	return scored
}

// buildClips selects the top scenes, computes their windows chronologically,
// resolves overlaps, and assigns zones. Windows squeezed below the minimum
// usable duration are dropped.
func (e *Engine) buildClips(scored []scoredScene, in Input, anc anchors.Anchors) []clip {
	keep := len(scored)
	if keep > in.Profile.ClipCountMax {
		keep = in.Profile.ClipCountMax
	}
	selected := append([]scoredScene(nil), scored...)
	sort.SliceStable(selected, func(i, j int) bool { return selected[i].score > selected[j].score })
	selected = selected[:keep]

	// Windowing and overlap resolution operate in film order.
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].scene.TimestampS < selected[j].scene.TimestampS
	})

	windows := make([]ClipWindow, len(selected))
	for i, s := range selected {
		windows[i] = computeWindow(s.scene.TimestampS, s.act, in.Profile, in.DurationS)
	}
	windows = resolveOverlaps(windows)

	clips := make([]clip, 0, len(selected))
	for i, s := range selected {
		if windows[i].DurationS() < minClipDurationS {
			e.logger.Debug("dropping degenerate clip window",
				"timestamp_s", s.scene.TimestampS, "duration_s", windows[i].DurationS())
			continue
		}
		excerpt := film.ExcerptNear(in.Dialogue, s.scene.TimestampS, film.DialogueWindowS)
		clips = append(clips, clip{
			scoredScene: s,
			window:      windows[i],
			zone:        e.zones.Assign(excerpt, windows[i].MidpointS(), in.DurationS, &anc),
		})
	}
	return clips
}

// clipEntry renders one ordered clip as its manifest entry.
func (e *Engine) clipEntry(c clip, in Input) manifest.ClipEntry {
	entry := manifest.ClipEntry{
		SourceStartS:    c.window.StartS,
		SourceEndS:      c.window.EndS,
		BeatType:        c.beat,
		Act:             c.act,
		Zone:            c.zone,
		Transition:      transitionFor(c.act, in.Profile),
		DialogueExcerpt: film.ExcerptNear(in.Dialogue, c.scene.TimestampS, film.DialogueWindowS),
		Reasoning:       buildReasoning(c),
		StandoutScore:   round4(c.score),
	}
	if desc := c.scene.Description; desc != nil {
		entry.VisualAnalysis = fmt.Sprintf("%s. %s. %s. %s.",
			desc.VisualContent, desc.Mood, desc.Action, desc.Setting)
	}
	if c.emotion != film.EmotionNeutral {
		entry.SubtitleAnalysis = fmt.Sprintf("Emotion: %s. Weight: %.2f.",
			c.emotion, c.raw.SubtitleEmotionalWeight)
	}
	return entry
}

// transitionFor picks the cut style: act boundaries (cold open, beat drop,
// act 3) use the vibe's secondary transition, everything else the primary.
func transitionFor(act scoring.Act, profile vibes.Profile) vibes.Transition {
	switch act {
	case scoring.ActColdOpen, scoring.ActBeatDrop, scoring.ActThree:
		return profile.SecondaryTransition
	default:
		return profile.PrimaryTransition
	}
}

func buildReasoning(c clip) string {
	visual := "No visual description."
	if c.scene.Description != nil {
		visual = fmt.Sprintf("Visual: %s, %s.", c.scene.Description.Mood, c.scene.Description.Action)
	}
	return fmt.Sprintf("Beat: %s. Score: %.2f. Source: %s. %s", c.beat, c.score, c.scene.Source, visual)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
