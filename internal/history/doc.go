// Package history keeps a per-user ledger of completed transcription runs
// in SQLite. Recording is best effort from the pipeline's point of view;
// the ledger exists so `vox history` can answer "what did I transcribe and
// where did it go" without scanning the filesystem.
package history
