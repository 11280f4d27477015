// Package film defines the staged inputs the narrative engine consumes: the
// candidate scene pool discovered upstream, the dialogue event track parsed
// from subtitles, and the optional vision-model scene descriptions.
//
// All types here are plain values owned by the caller. The engine never
// mutates them.
package film
