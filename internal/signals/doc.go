// Package signals computes the fixed 8-signal raw vector for each candidate
// scene: five image measurements (motion, contrast, uniqueness fingerprint,
// face presence, saturation), two dialogue/description measurements, and the
// chronological position.
//
// Extraction is deliberately two-phase. Per-scene measurement is a pure
// function of the scene (plus the previous frame for motion), while scene
// uniqueness and normalization are pool-wide and only meaningful once every
// candidate has been measured. Callers therefore always go through
// ExtractPool and never compute a single scene in isolation.
package signals
