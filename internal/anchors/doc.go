// Package anchors derives the three structural pivot timestamps of a film
// (story-start, escalation, and climax) from its dialogue transcript.
//
// The transcript is analyzed in bounded chunks through a text-generation
// capability; per-chunk replies outside their own timestamp span are
// discarded as hallucinations, and surviving candidates are aggregated
// (median by default). A missing or completely failing capability is a
// normal condition: extraction then falls back to fixed fractions of the
// film duration and never returns an error.
package anchors
