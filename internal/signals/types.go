package signals

import "trailcut/internal/film"

// Signal dimension names. The narrative scorer keys its weight table on these.
const (
	KeyMotion                = "motion_magnitude"
	KeyContrast              = "visual_contrast"
	KeyUniqueness            = "scene_uniqueness"
	KeyEmotionalWeight       = "subtitle_emotional_weight"
	KeyFacePresence          = "face_presence"
	KeyDescriptionConfidence = "description_confidence"
	KeySaturation            = "saturation"
	KeyPosition              = "chronological_position"
)

// Keys lists all 8 signal dimensions in canonical order.
var Keys = []string{
	KeyMotion,
	KeyContrast,
	KeyUniqueness,
	KeyEmotionalWeight,
	KeyFacePresence,
	KeyDescriptionConfidence,
	KeySaturation,
	KeyPosition,
}

// RawSignals holds the unnormalized signal vector for a single scene.
// The histogram is kept for the pool-wide uniqueness pass and is not itself
// a signal dimension.
type RawSignals struct {
	MotionMagnitude         float64
	VisualContrast          float64
	SceneUniqueness         float64
	SubtitleEmotionalWeight float64
	FacePresence            float64
	DescriptionConfidence   float64
	Saturation              float64
	ChronologicalPosition   float64

	histogram []float64
}

// Map returns the 8 signal dimensions keyed by their canonical names.
func (s RawSignals) Map() map[string]float64 {
	return map[string]float64{
		KeyMotion:                s.MotionMagnitude,
		KeyContrast:              s.VisualContrast,
		KeyUniqueness:            s.SceneUniqueness,
		KeyEmotionalWeight:       s.SubtitleEmotionalWeight,
		KeyFacePresence:          s.FacePresence,
		KeyDescriptionConfidence: s.DescriptionConfidence,
		KeySaturation:            s.Saturation,
		KeyPosition:              s.ChronologicalPosition,
	}
}

// emotionWeights maps dialogue sentiment to its raw emotional signal value.
var emotionWeights = map[film.Emotion]float64{
	film.EmotionIntense:  1.0,
	film.EmotionRomantic: 0.7,
	film.EmotionNegative: 0.6,
	film.EmotionComedic:  0.5,
	film.EmotionPositive: 0.4,
	film.EmotionNeutral:  0.1,
}

// EmotionWeight returns the raw emotional weight for a sentiment label,
// 0 for unknown labels.
func EmotionWeight(emotion film.Emotion) float64 {
	return emotionWeights[emotion]
}

// DescriptionConfidence scores a vision-model scene description in [0,1]:
// half field completeness, half text-length richness. Nil descriptions
// (failed inference) score 0.
func DescriptionConfidence(desc *film.SceneDescription) float64 {
	if desc == nil {
		return 0
	}
	fields := []string{desc.VisualContent, desc.Mood, desc.Action, desc.Setting}
	var filled, chars int
	for _, f := range fields {
		chars += len(f)
		if trimmedNonEmpty(f) {
			filled++
		}
	}
	completeness := float64(filled) / 4.0
	richness := float64(chars) / 200.0
	if richness > 1 {
		richness = 1
	}
	return 0.5*completeness + 0.5*richness
}

func trimmedNonEmpty(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}
