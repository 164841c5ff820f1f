// Package errs defines the sentinel errors shared across the vox pipeline.
//
// Every failure the CLI can surface maps to one of the exported sentinels so
// command code can classify errors with errors.Is without inspecting message
// text. Constructors attach human-readable detail while preserving the
// sentinel in the wrap chain.
package errs
