// Package vibes defines the per-genre editing profiles that parameterize
// trailer assembly: clip count bounds, per-act target cut durations, and
// transition choices. Profiles are static data; callers look one up by name
// at the start of a run and thread it through selection and pacing.
package vibes
