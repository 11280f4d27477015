// Package scoring turns raw signal vectors into a single standout score per
// scene and classifies each scene's narrative function.
//
// Normalization is pool-relative min-max; a degenerate dimension (all values
// equal) maps to exactly 0.5 by definition. The beat classifier is an
// explicit ordered rule chain with a mandatory catch-all, so it is total
// over every reachable input.
package scoring
