package language

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Normalize maps a recognizer language code to its ISO 639-1 base form
// ("eng" -> "en"). Unrecognized input returns the trimmed lowercase original
// so nothing the engine reports is ever discarded.
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	base, conf := tag.Base()
	if conf == language.No {
		return code
	}
	return base.String()
}

// DisplayName returns the English name for a language code, or the code
// itself when no name is known. Used for log lines only; serialized output
// always carries the code.
func DisplayName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return "unknown"
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return code
}
