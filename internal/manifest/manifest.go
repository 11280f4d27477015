package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"trailcut/internal/anchors"
	"trailcut/internal/scoring"
	"trailcut/internal/vibes"
	"trailcut/internal/zone"
)

// SchemaVersion identifies the manifest document layout.
const SchemaVersion = "2.0"

// FileName is the conventional manifest file name inside a work directory.
const FileName = "TRAILER_MANIFEST.json"

// ClipEntry is one ordered clip in the trailer, addressed on the source
// film's timeline.
type ClipEntry struct {
	SourceStartS float64 `json:"source_start_s"`
	SourceEndS   float64 `json:"source_end_s"`

	BeatType   scoring.BeatType `json:"beat_type"`
	Act        scoring.Act      `json:"act"`
	Zone       zone.Zone        `json:"narrative_zone,omitempty"`
	Transition vibes.Transition `json:"transition"`

	DialogueExcerpt  string  `json:"dialogue_excerpt"`
	Reasoning        string  `json:"reasoning,omitempty"`
	VisualAnalysis   string  `json:"visual_analysis,omitempty"`
	SubtitleAnalysis string  `json:"subtitle_analysis,omitempty"`
	StandoutScore    float64 `json:"standout_score"`
}

// DurationS returns the clip's length in seconds.
func (c ClipEntry) DurationS() float64 {
	return c.SourceEndS - c.SourceStartS
}

// Manifest is the complete assembly output for one run.
type Manifest struct {
	SchemaVersion string           `json:"schema_version"`
	RunID         string           `json:"run_id"`
	SourceFile    string           `json:"source_file"`
	Vibe          string           `json:"vibe"`
	Clips         []ClipEntry      `json:"clips"`
	Anchors       *anchors.Anchors `json:"structural_anchors,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// New creates an empty manifest shell with a fresh run identifier.
func New(sourceFile, vibe string) *Manifest {
	return &Manifest{
		SchemaVersion: SchemaVersion,
		RunID:         uuid.NewString(),
		SourceFile:    sourceFile,
		Vibe:          vibe,
		CreatedAt:     time.Now().UTC(),
	}
}

// Validate checks the structural invariants the renderer depends on.
func (m *Manifest) Validate() error {
	if m.SourceFile == "" {
		return errors.New("manifest missing source file")
	}
	if len(m.Clips) == 0 {
		return errors.New("manifest has no clips")
	}
	for i, clip := range m.Clips {
		if clip.SourceStartS < 0 {
			return fmt.Errorf("clip %d: negative start %.3f", i, clip.SourceStartS)
		}
		if clip.SourceEndS <= clip.SourceStartS {
			return fmt.Errorf("clip %d: end %.3f not after start %.3f", i, clip.SourceEndS, clip.SourceStartS)
		}
		if clip.StandoutScore < 0 || clip.StandoutScore > 1 {
			return fmt.Errorf("clip %d: standout score %.4f outside [0,1]", i, clip.StandoutScore)
		}
	}
	return nil
}

// Write validates the manifest and writes it as indented JSON, replacing any
// existing file atomically.
func (m *Manifest) Write(path string) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}
	payload, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	payload = append(payload, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace manifest: %w", err)
	}
	return nil
}

// Load reads and validates a manifest document from disk.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", filepath.Base(path), err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", filepath.Base(path), err)
	}
	return &m, nil
}
