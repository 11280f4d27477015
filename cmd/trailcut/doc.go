// Command trailcut assembles a trailer clip manifest from a film's candidate
// scenes and subtitles.
package main
