package transcript

import (
	"fmt"
	"strings"
)

// FormatVTT renders a WebVTT document: the WEBVTT header, five metadata NOTE
// blocks, then one cue per segment, all joined by blank lines. Unknown
// duration and language render as the literal "unknown".
func FormatVTT(t Transcript) string {
	parts := make([]string, 0, len(t.Segments)+2)
	parts = append(parts, "WEBVTT")
	parts = append(parts, vttMetadata(t.Meta))

	for _, seg := range t.Segments {
		parts = append(parts, fmt.Sprintf(
			"%s --> %s\n%s",
			VTTTimestamp(seg.Start),
			VTTTimestamp(seg.End),
			strings.TrimSpace(seg.Text),
		))
	}

	return strings.Join(parts, "\n\n")
}

func vttMetadata(meta Metadata) string {
	duration := "unknown"
	if meta.Duration != nil {
		duration = VTTTimestamp(*meta.Duration)
	}
	language := meta.Language
	if language == "" {
		language = "unknown"
	}

	notes := []string{
		"NOTE Title\n" + meta.Title,
		"NOTE Source\n" + meta.Source,
		"NOTE Duration\n" + duration,
		"NOTE Language\n" + language,
		"NOTE Model\n" + meta.Model,
	}
	return strings.Join(notes, "\n\n")
}
