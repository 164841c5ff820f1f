package transcript

import (
	"fmt"
	"strings"
)

// FormatTXT renders one line per segment as "[start - end]: text" with fixed
// two-decimal seconds. Empty input yields an empty string.
func FormatTXT(t Transcript) string {
	lines := make([]string, 0, len(t.Segments))
	for _, seg := range t.Segments {
		lines = append(lines, fmt.Sprintf("[%.2f - %.2f]: %s", seg.Start, seg.End, seg.Text))
	}
	return strings.Join(lines, "\n")
}
