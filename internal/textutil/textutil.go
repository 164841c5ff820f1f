// Package textutil provides small text helpers for human-facing output.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayTitle cleans a raw title for display: separator runes collapse to
// single spaces, everything else non-alphanumeric is dropped, and the result
// is title-cased. Used for log lines and history listings only; output file
// names always use the raw title.
func DisplayTitle(raw string) string {
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range raw {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return raw
	}
	return cases.Title(language.Und).String(title)
}
