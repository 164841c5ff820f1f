// Package media wraps the ffmpeg and ffprobe binaries behind the narrow
// conversion contract the pipeline consumes.
//
// Conversion always produces an MP3 at the requested output path; failures
// surface the last line of ffmpeg's diagnostic output so the user sees the
// actual decoder complaint rather than a generic exit status.
package media
