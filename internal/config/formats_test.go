package config_test

import (
	"errors"
	"strings"
	"testing"

	"vox/internal/config"
	"vox/internal/errs"
)

func TestParseFormatsAllTokensAllCases(t *testing.T) {
	tokens := map[string]config.OutputFormat{
		"txt":  config.FormatTXT,
		"json": config.FormatJSON,
		"srt":  config.FormatSRT,
		"vtt":  config.FormatVTT,
	}
	for token, want := range tokens {
		mixed := strings.ToUpper(token[:1]) + token[1:]
		for _, variant := range []string{token, strings.ToUpper(token), mixed} {
			formats, err := config.ParseFormats(variant, false)
			if err != nil {
				t.Fatalf("ParseFormats(%q) returned error: %v", variant, err)
			}
			if len(formats) != 1 || formats[0] != want {
				t.Errorf("ParseFormats(%q) = %v, want [%v]", variant, formats, want)
			}
		}
	}
}

func TestParseFormatsList(t *testing.T) {
	formats, err := config.ParseFormats("txt, json ,srt", false)
	if err != nil {
		t.Fatalf("ParseFormats returned error: %v", err)
	}
	want := []config.OutputFormat{config.FormatTXT, config.FormatJSON, config.FormatSRT}
	if len(formats) != len(want) {
		t.Fatalf("got %d formats, want %d", len(formats), len(want))
	}
	for i := range want {
		if formats[i] != want[i] {
			t.Errorf("formats[%d] = %v, want %v", i, formats[i], want[i])
		}
	}
}

func TestParseFormatsInvalidToken(t *testing.T) {
	for _, spec := range []string{"docx", "txt,docx", "docx,txt"} {
		_, err := config.ParseFormats(spec, false)
		if !errors.Is(err, errs.ErrInvalidFormat) {
			t.Errorf("ParseFormats(%q): expected ErrInvalidFormat, got %v", spec, err)
		}
	}
}

func TestParseFormatsStdoutMutualExclusion(t *testing.T) {
	specs := []string{"txt,json", "srt,vtt", "txt,json,srt,vtt", "json , txt"}
	for _, spec := range specs {
		if _, err := config.ParseFormats(spec, true); !errors.Is(err, errs.ErrMultipleStdoutOutput) {
			t.Errorf("ParseFormats(%q, stdout): expected ErrMultipleStdoutOutput, got %v", spec, err)
		}
		if _, err := config.ParseFormats(spec, false); err != nil {
			t.Errorf("ParseFormats(%q, no stdout): unexpected error %v", spec, err)
		}
	}
}

func TestParseFormatsSingleWithStdout(t *testing.T) {
	formats, err := config.ParseFormats("json", true)
	if err != nil {
		t.Fatalf("single format with stdout should be allowed: %v", err)
	}
	if len(formats) != 1 || formats[0] != config.FormatJSON {
		t.Errorf("got %v, want [json]", formats)
	}
}

func TestParseFormatsEmptyTokensAccepted(t *testing.T) {
	for _, spec := range []string{"", "  ", ",,", " , "} {
		formats, err := config.ParseFormats(spec, true)
		if err != nil {
			t.Errorf("ParseFormats(%q): unexpected error %v", spec, err)
		}
		if len(formats) != 0 {
			t.Errorf("ParseFormats(%q) = %v, want empty", spec, formats)
		}
	}
}

func TestOutputFormatExtensions(t *testing.T) {
	cases := map[config.OutputFormat]string{
		config.FormatTXT:  "txt",
		config.FormatJSON: "json",
		config.FormatSRT:  "srt",
		config.FormatVTT:  "vtt",
	}
	for format, want := range cases {
		if got := format.Extension(); got != want {
			t.Errorf("%v.Extension() = %q, want %q", format, got, want)
		}
	}
}
