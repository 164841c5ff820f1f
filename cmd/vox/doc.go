// Package main hosts the vox CLI entrypoint and command graph.
//
// The Cobra-based command tree collects flags, overlays file-backed
// defaults, and hands a validated configuration to the pipeline. Heavy
// lifting lives in the internal packages; this package owns wiring,
// terminal prompts, and table rendering only.
package main
