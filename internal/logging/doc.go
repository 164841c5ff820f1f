// Package logging assembles the structured slog logger used across vox.
//
// Output goes to stderr so stdout stays clean for --stdout transcript
// emission. Verbosity maps to console detail: 0 prints bare messages, 1 adds
// timestamps and levels, 2+ switches to debug with source locations. The
// package also provides a no-op logger for tests.
package logging
