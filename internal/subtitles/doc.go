// Package subtitles parses SRT subtitle files into dialogue events and tags
// each event with a keyword-based sentiment label.
//
// Parsing is a staging concern that runs before the narrative engine; the
// engine itself only ever sees the resulting film.DialogueEvent slice.
package subtitles
