// Package whisper runs speech-to-text inference through the whisper.cpp
// command line tool.
//
// It owns the model cache: ggml model files are fetched from Hugging Face
// into a per-user directory on first use, guarded by a file lock so
// concurrent invocations never download the same model twice. Audio is
// decoded to the mono 16kHz PCM whisper.cpp expects before inference, and
// the tool's JSON output is parsed back into the transcript model.
package whisper
