package config

import (
	"strings"

	"vox/internal/errs"
)

// OutputFormat enumerates the supported transcript serializations.
type OutputFormat int

const (
	FormatTXT OutputFormat = iota
	FormatJSON
	FormatSRT
	FormatVTT
)

// Extension returns the file extension (without dot) for the format.
func (f OutputFormat) Extension() string {
	switch f {
	case FormatTXT:
		return "txt"
	case FormatJSON:
		return "json"
	case FormatSRT:
		return "srt"
	case FormatVTT:
		return "vtt"
	default:
		return "txt"
	}
}

// String returns the lowercase token used on the command line.
func (f OutputFormat) String() string {
	return f.Extension()
}

// ParseFormat maps a single token, case-insensitively, to its format.
func ParseFormat(token string) (OutputFormat, error) {
	switch strings.ToLower(token) {
	case "txt":
		return FormatTXT, nil
	case "json":
		return FormatJSON, nil
	case "srt":
		return FormatSRT, nil
	case "vtt":
		return FormatVTT, nil
	default:
		return 0, errs.InvalidFormat(token)
	}
}

// ParseFormats splits a comma-separated format spec, trims whitespace, drops
// empty tokens, and resolves each remaining token. The first unknown token
// fails the whole spec. In stdout mode more than one format is rejected;
// an empty result is accepted and left for the caller to police.
func ParseFormats(spec string, stdoutMode bool) ([]OutputFormat, error) {
	var formats []OutputFormat
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		format, err := ParseFormat(token)
		if err != nil {
			return nil, err
		}
		formats = append(formats, format)
	}

	if stdoutMode && len(formats) > 1 {
		return nil, errs.ErrMultipleStdoutOutput
	}
	return formats, nil
}
