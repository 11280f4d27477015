// Package logging constructs the application's slog loggers. The console
// format is a compact single-line key=value rendering for interactive use;
// the json format targets log aggregation. Log files accumulate in the
// configured log directory and are pruned by age.
package logging
