package film

// Emotion labels a dialogue event with its dominant sentiment.
type Emotion string

const (
	EmotionIntense  Emotion = "intense"
	EmotionRomantic Emotion = "romantic"
	EmotionComedic  Emotion = "comedic"
	EmotionNegative Emotion = "negative"
	EmotionPositive Emotion = "positive"
	EmotionNeutral  Emotion = "neutral"
)

// SceneDescription is the structured output of upstream vision inference for
// one candidate frame. All four fields are free text and may be empty.
type SceneDescription struct {
	VisualContent string `json:"visual_content"`
	Mood          string `json:"mood"`
	Action        string `json:"action"`
	Setting       string `json:"setting"`
}

// CandidateScene is a representative timestamp/frame considered for trailer
// inclusion. Description is nil when vision inference failed for the frame;
// every consumer must handle both cases.
type CandidateScene struct {
	TimestampS  float64           `json:"timestamp_s"`
	FramePath   string            `json:"frame_path"`
	Source      string            `json:"source,omitempty"`
	Description *SceneDescription `json:"description,omitempty"`
}

// DialogueEvent is a single subtitle cue with timing and sentiment.
type DialogueEvent struct {
	StartS  float64 `json:"start_s"`
	EndS    float64 `json:"end_s"`
	Text    string  `json:"text"`
	Emotion Emotion `json:"emotion"`
	Speaker string  `json:"speaker,omitempty"`
}

// MidpointS returns the event's midpoint on the film timeline.
func (e DialogueEvent) MidpointS() float64 {
	return (e.StartS + e.EndS) / 2
}
