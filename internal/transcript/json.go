package transcript

import (
	"bytes"
	"encoding/json"
	"strings"
)

type jsonSegment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

type jsonMetadata struct {
	Title    string   `json:"title"`
	Source   string   `json:"source"`
	Duration *float64 `json:"duration"`
	Model    string   `json:"model"`
	Language string   `json:"language"`
}

type jsonDocument struct {
	Transcript []jsonSegment `json:"transcript"`
	Metadata   jsonMetadata  `json:"metadata"`
}

// FormatJSON renders the transcript as a pretty-printed JSON object with a
// 1-based sequential id per segment. An absent language defaults to "en";
// an unknown duration serializes as null.
func FormatJSON(t Transcript) string {
	segments := make([]jsonSegment, 0, len(t.Segments))
	for i, seg := range t.Segments {
		segments = append(segments, jsonSegment{
			ID:    i + 1,
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}

	language := t.Meta.Language
	if language == "" {
		language = "en"
	}

	doc := jsonDocument{
		Transcript: segments,
		Metadata: jsonMetadata{
			Title:    t.Meta.Title,
			Source:   t.Meta.Source,
			Duration: t.Meta.Duration,
			Model:    t.Meta.Model,
			Language: language,
		},
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "{}"
	}
	return strings.TrimRight(buf.String(), "\n")
}
