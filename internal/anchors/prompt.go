package anchors

import (
	"fmt"
	"strings"

	"trailcut/internal/film"
)

// structuralPrompt instructs the model to locate the three narrative pivots
// inside one transcript chunk. Absolute timestamps only: replies are
// validated against the chunk's own span, so normalized or relative values
// would be discarded.
const structuralPrompt = `You analyze a timestamped excerpt of a film's dialogue transcript.

Identify three narrative pivot points within this excerpt:

- "begin_t": the timestamp (in seconds) where the story's setup is clearest.
- "escalation_t": the timestamp where tension or conflict visibly rises.
- "climax_t": the timestamp of the most intense or decisive moment.

Rules:

- Use ABSOLUTE timestamps taken from the bracketed markers in the excerpt.
- Every value must lie within the excerpt's own time range.
- If a pivot is not clearly present, pick the excerpt timestamp that comes closest in spirit.

You must respond ONLY with a JSON object like:
{"begin_t": 123.4, "escalation_t": 456.7, "climax_t": 789.0}`

// formatChunk renders dialogue events as a timestamped transcript, one line
// per event, using absolute start timestamps.
func formatChunk(events []film.DialogueEvent) string {
	var b strings.Builder
	for i, ev := range events {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "[%.1fs] %s", ev.StartS, ev.Text)
	}
	return b.String()
}
