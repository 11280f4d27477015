// Package zone assigns each clip to one of the three macro arc buckets
// (BEGINNING, ESCALATION, CLIMAX) that drive the trailer's non-chronological
// ordering.
//
// Clips with nearby dialogue are matched semantically: the dialogue text and
// three fixed zone description phrases are embedded as term-frequency
// vectors in a shared space and the nearest zone by cosine similarity wins.
// Silent clips (a large share of real candidates) fall back to position
// against the structural anchors; that fallback is first-class, not a
// degradation.
package zone
