// Package assemble runs the narrative assembly pipeline: it scores a
// candidate pool, classifies beats and acts, extracts structural anchors,
// selects and windows the top scenes, and reorders them zone-first into the
// final trailer manifest.
//
// The pipeline deliberately replaces chronology at the ordering step. Clips
// are grouped BEGINNING, then ESCALATION, then CLIMAX, score-descending
// within each group, which is what turns a film's timeline into a trailer's
// dramatic curve.
package assemble
