// Package pipeline orchestrates one transcription run end to end.
//
// A Runner drives three stages over a temporary working directory: acquire
// (download or stage the input and normalize it to MP3), transcribe, and
// emit (render each requested format and write or print it). The interrupt
// token is polled between stages; an interrupt observed at a checkpoint ends
// the run quietly as a success. Collaborators that shell out to external
// tools sit behind one-method interfaces so the runner can be tested with
// fakes.
package pipeline
