package language_test

import (
	"testing"

	"vox/internal/language"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"en":      "en",
		"eng":     "en",
		"EN":      "en",
		" en ":    "en",
		"deu":     "de",
		"":        "",
		"zzzzzzz": "zzzzzzz",
	}
	for in, want := range cases {
		if got := language.Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := language.DisplayName("en"); got != "English" {
		t.Errorf("DisplayName(en) = %q, want English", got)
	}
	if got := language.DisplayName(""); got != "unknown" {
		t.Errorf("DisplayName(\"\") = %q, want unknown", got)
	}
}
