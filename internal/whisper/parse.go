package whisper

import (
	"encoding/json"
	"fmt"
	"os"

	"vox/internal/transcript"
)

// resultFile mirrors the JSON document whisper-cli writes with -oj. Offsets
// are milliseconds from the start of the audio.
type resultFile struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// parseResultFile reads whisper-cli JSON output into segments plus the
// detected language code. Segment text is kept verbatim; renderers decide
// what to trim.
func parseResultFile(path string) ([]transcript.Segment, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read result: %w", err)
	}
	return parseResult(data)
}

func parseResult(data []byte) ([]transcript.Segment, string, error) {
	var doc resultFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, "", fmt.Errorf("decode result: %w", err)
	}

	segments := make([]transcript.Segment, 0, len(doc.Transcription))
	for _, entry := range doc.Transcription {
		segments = append(segments, transcript.Segment{
			Start: float64(entry.Offsets.From) / 1000.0,
			End:   float64(entry.Offsets.To) / 1000.0,
			Text:  entry.Text,
		})
	}
	return segments, doc.Result.Language, nil
}
