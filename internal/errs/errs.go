package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for every failure class the CLI can report. Callers
// classify with errors.Is and attach detail via the constructors below.
var (
	ErrInvalidFormat        = errors.New("invalid format")
	ErrMultipleStdoutOutput = errors.New("multiple formats not allowed with --stdout")
	ErrFileNotFound         = errors.New("file not found")
	ErrInvalidURL           = errors.New("invalid URL")
	ErrDownloadFailed       = errors.New("download failed")
	ErrTranscriptionFailed  = errors.New("transcription failed")
	ErrFFmpeg               = errors.New("ffmpeg error")
	ErrFFmpegNotFound       = errors.New("ffmpeg not found; please install ffmpeg")
	ErrInvalidModel         = errors.New("invalid model")
	ErrUserAborted          = errors.New("user aborted")
)

// InvalidFormat reports an unrecognized output format token.
func InvalidFormat(token string) error {
	return fmt.Errorf("%w: %q", ErrInvalidFormat, token)
}

// InvalidModel reports a model name outside the catalog.
func InvalidModel(name string) error {
	return fmt.Errorf("%w: %q", ErrInvalidModel, name)
}

// FileNotFound reports a missing local input file.
func FileNotFound(path string) error {
	return fmt.Errorf("%w: %s", ErrFileNotFound, path)
}

// DownloadFailed wraps an acquisition failure with its originating cause.
func DownloadFailed(detail string, err error) error {
	return wrap(ErrDownloadFailed, detail, err)
}

// TranscriptionFailed wraps a speech-to-text failure with its originating cause.
func TranscriptionFailed(detail string, err error) error {
	return wrap(ErrTranscriptionFailed, detail, err)
}

// FFmpeg wraps an audio conversion failure with its originating cause.
func FFmpeg(detail string, err error) error {
	return wrap(ErrFFmpeg, detail, err)
}

func wrap(marker error, detail string, err error) error {
	switch {
	case detail != "" && err != nil:
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	case err != nil:
		return fmt.Errorf("%w: %w", marker, err)
	case detail != "":
		return fmt.Errorf("%w: %s", marker, detail)
	default:
		return marker
	}
}
