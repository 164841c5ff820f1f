package transcript

// Segment is a single timed utterance. Start and End are seconds from the
// beginning of the audio; Text is kept exactly as the recognizer produced it,
// including surrounding whitespace. Renderers trim where their format calls
// for it.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Metadata describes one transcription run. Duration is nil when the total
// length is unknown; Language is empty when no language was detected or
// declared.
type Metadata struct {
	Title    string
	Source   string
	Duration *float64
	Model    string
	Language string
}

// Transcript is the ordered segment list plus run metadata produced by the
// transcription stage. A zero segment count is valid; every renderer emits
// well-formed output for it.
type Transcript struct {
	Segments []Segment
	Meta     Metadata
}

// New constructs a transcript from segments and metadata. Segments must
// already be in non-decreasing start order; this is not re-validated here.
func New(segments []Segment, meta Metadata) Transcript {
	return Transcript{Segments: segments, Meta: meta}
}
