package transcript

import (
	"fmt"
	"strings"
)

// FormatSRT renders numbered SubRip blocks separated by blank lines. Segment
// text is trimmed of surrounding whitespace; empty input yields an empty
// string.
func FormatSRT(t Transcript) string {
	blocks := make([]string, 0, len(t.Segments))
	for i, seg := range t.Segments {
		blocks = append(blocks, fmt.Sprintf(
			"%d\n%s --> %s\n%s",
			i+1,
			SRTTimestamp(seg.Start),
			SRTTimestamp(seg.End),
			strings.TrimSpace(seg.Text),
		))
	}
	return strings.Join(blocks, "\n\n")
}
