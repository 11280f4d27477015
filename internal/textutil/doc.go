// Package textutil provides the lightweight text vectorization used by the
// narrative engine: accent folding, word extraction for keyword matching, and
// term-frequency fingerprints compared by cosine similarity for semantic zone
// matching.
//
// Fingerprints use term frequency vectors with precomputed norms. The
// tokenization process folds accents, lowercases text, splits on
// non-alphanumeric characters, and filters tokens shorter than 3 characters.
package textutil
