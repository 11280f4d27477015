package signals

import (
	"log/slog"

	"trailcut/internal/film"
)

// Extractor computes raw signal vectors for a candidate pool.
type Extractor struct {
	faces  FaceDetector
	logger *slog.Logger
}

// NewExtractor builds an extractor. faces may be nil, in which case the face
// signal is 0 for every scene.
func NewExtractor(faces FaceDetector, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{faces: faces, logger: logger}
}

// ExtractPool measures every candidate scene and returns one RawSignals per
// scene, in input order. An unreadable frame yields an all-zero vector and a
// warning; it never aborts the pool. Scene uniqueness is filled by the
// pool-wide pass at the end, which is why a single scene cannot be extracted
// in isolation.
func (e *Extractor) ExtractPool(scenes []film.CandidateScene, dialogue []film.DialogueEvent, durationS float64) []RawSignals {
	if len(scenes) == 0 {
		return nil
	}
	safeDuration := durationS
	if safeDuration <= 0 {
		safeDuration = 1e-9
	}

	out := make([]RawSignals, len(scenes))
	var prevGrid []float64

	for i, scene := range scenes {
		img, err := decodeFrame(scene.FramePath)
		if err != nil {
			e.logger.Warn("frame unreadable, zeroing signals", "frame", scene.FramePath, "error", err)
			out[i] = RawSignals{}
			// prevGrid intentionally unchanged: motion skips unreadable frames.
			continue
		}

		metrics := measureFrame(img)

		var motion float64
		if prevGrid != nil {
			motion = meanAbsDiff(metrics.lumaGrid, prevGrid)
		}
		prevGrid = metrics.lumaGrid

		var face float64
		if e.faces != nil && e.faces.HasFace(img) {
			face = 1.0
		}

		position := scene.TimestampS / safeDuration
		if position > 1 {
			position = 1
		}

		out[i] = RawSignals{
			MotionMagnitude:         motion,
			VisualContrast:          metrics.contrast,
			SubtitleEmotionalWeight: emotionalWeightNear(scene.TimestampS, dialogue),
			FacePresence:            face,
			DescriptionConfidence:   DescriptionConfidence(scene.Description),
			Saturation:              metrics.saturation,
			ChronologicalPosition:   position,
			histogram:               metrics.histogram,
		}
	}

	fillUniqueness(out)
	return out
}

// emotionalWeightNear looks up the sentiment weight of the dialogue event
// overlapping or nearest (within the dialogue window) to the timestamp.
func emotionalWeightNear(timestampS float64, dialogue []film.DialogueEvent) float64 {
	emotion := film.NearestEmotion(dialogue, timestampS, film.DialogueWindowS)
	if emotion == film.EmotionNeutral {
		// NearestEmotion returns neutral both for neutral dialogue and for
		// no dialogue at all; in the latter case the signal is zero.
		if film.ExcerptNear(dialogue, timestampS, film.DialogueWindowS) == "" {
			return 0
		}
	}
	return EmotionWeight(emotion)
}

// fillUniqueness computes scene uniqueness across the pool:
// 1 minus the maximum histogram correlation against any other scene.
// Pools with fewer than two fingerprinted scenes get the neutral 0.5;
// zeroed scenes (nil histogram) stay at 0.
func fillUniqueness(pool []RawSignals) {
	withHist := 0
	for i := range pool {
		if pool[i].histogram != nil {
			withHist++
		}
	}
	if withHist < 2 {
		for i := range pool {
			if pool[i].histogram != nil {
				pool[i].SceneUniqueness = 0.5
			}
		}
		return
	}

	for i := range pool {
		if pool[i].histogram == nil {
			continue
		}
		maxSim := 0.0
		for j := range pool {
			if i == j || pool[j].histogram == nil {
				continue
			}
			if sim := histogramCorrelation(pool[i].histogram, pool[j].histogram); sim > maxSim {
				maxSim = sim
			}
		}
		uniq := 1.0 - maxSim
		if uniq < 0 {
			uniq = 0
		}
		pool[i].SceneUniqueness = uniq
	}
}
