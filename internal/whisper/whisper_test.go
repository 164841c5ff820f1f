package whisper

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vox/internal/errs"
	"vox/internal/logging"
	"vox/internal/pipeline"
)

type fakeDecoder struct{}

func (fakeDecoder) DecodePCM(_ context.Context, _, output string) error {
	return os.WriteFile(output, []byte("wav"), 0o644)
}

func newTestService(t *testing.T, runner func(ctx context.Context, name string, args ...string) error) *Service {
	t.Helper()
	modelDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(modelDir, "ggml-small.bin"), []byte("model"), 0o644); err != nil {
		t.Fatal(err)
	}
	svc, err := NewService("whisper-cli", modelDir, fakeDecoder{}, logging.NewNop())
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}
	svc.WithCommandRunner(runner)
	return svc
}

func testRequest(t *testing.T) pipeline.TranscribeRequest {
	t.Helper()
	workDir := t.TempDir()
	audioPath := filepath.Join(workDir, "audio.mp3")
	if err := os.WriteFile(audioPath, []byte("mp3"), 0o644); err != nil {
		t.Fatal(err)
	}
	return pipeline.TranscribeRequest{
		AudioPath: audioPath,
		WorkDir:   workDir,
		Title:     "Episode",
		Source:    "/in/episode.mp3",
		Model:     "small",
	}
}

func TestTranscribeParsesEngineOutput(t *testing.T) {
	payload := `{
	  "result": {"language": "eng"},
	  "transcription": [
	    {"offsets": {"from": 0, "to": 5200}, "text": " Hello"},
	    {"offsets": {"from": 5200, "to": 10500}, "text": " World"}
	  ]
	}`
	svc := newTestService(t, func(_ context.Context, _ string, args ...string) error {
		for i, arg := range args {
			if arg == "-of" && i+1 < len(args) {
				return os.WriteFile(args[i+1]+".json", []byte(payload), 0o644)
			}
		}
		t.Fatal("no -of argument in whisper invocation")
		return nil
	})

	result, err := svc.Transcribe(context.Background(), testRequest(t))
	if err != nil {
		t.Fatalf("Transcribe returned error: %v", err)
	}
	if len(result.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(result.Segments))
	}
	if result.Meta.Language != "en" {
		t.Errorf("language should be normalized to en, got %q", result.Meta.Language)
	}
	if result.Meta.Title != "Episode" || result.Meta.Model != "small" {
		t.Errorf("metadata not carried through: %+v", result.Meta)
	}
	if result.Meta.Duration == nil || *result.Meta.Duration != 10.5 {
		t.Errorf("duration should fall back to the last segment end, got %v", result.Meta.Duration)
	}
}

func TestTranscribeEngineFailureWrapsOnce(t *testing.T) {
	svc := newTestService(t, func(context.Context, string, ...string) error {
		return errs.TranscriptionFailed("engine crashed", nil)
	})

	_, err := svc.Transcribe(context.Background(), testRequest(t))
	if !errors.Is(err, errs.ErrTranscriptionFailed) {
		t.Fatalf("expected ErrTranscriptionFailed, got %v", err)
	}
	if got := strings.Count(err.Error(), "transcription failed"); got != 1 {
		t.Errorf("error should carry a single wrap, found %d in %q", got, err)
	}
}

func TestModelURL(t *testing.T) {
	cases := map[string]string{
		"tiny":     "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-tiny.bin",
		"small.en": "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-small.en.bin",
		"large-v3": "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-large-v3.bin",
	}
	for model, want := range cases {
		if got := ModelURL(model); got != want {
			t.Errorf("ModelURL(%q) = %q, want %q", model, got, want)
		}
	}
}

func TestInferenceArgsLanguageSelection(t *testing.T) {
	args := inferenceArgs("/models/ggml-small.bin", "/work/in.wav", "/work/out", "small")
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "-l auto") {
		t.Errorf("multilingual model should auto-detect: %v", args)
	}

	args = inferenceArgs("/models/ggml-small.en.bin", "/work/in.wav", "/work/out", "small.en")
	joined = strings.Join(args, " ")
	if !strings.Contains(joined, "-l en") {
		t.Errorf("english-only model should pin language: %v", args)
	}
	for _, want := range []string{"-oj", "-of /work/out", "-m /models/ggml-small.en.bin"} {
		if !strings.Contains(joined, want) {
			t.Errorf("args missing %q: %v", want, args)
		}
	}
}

func TestParseResult(t *testing.T) {
	payload := `{
	  "result": {"language": "en"},
	  "transcription": [
	    {"offsets": {"from": 0, "to": 5200}, "text": " Hello world"},
	    {"offsets": {"from": 5200, "to": 10500}, "text": " This is a test"}
	  ]
	}`

	segments, lang, err := parseResult([]byte(payload))
	if err != nil {
		t.Fatalf("parseResult returned error: %v", err)
	}
	if lang != "en" {
		t.Errorf("language = %q, want en", lang)
	}
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].Start != 0.0 || segments[0].End != 5.2 {
		t.Errorf("first segment times = %v..%v, want 0..5.2", segments[0].Start, segments[0].End)
	}
	if segments[0].Text != " Hello world" {
		t.Errorf("segment text should be kept verbatim, got %q", segments[0].Text)
	}
}

func TestParseResultEmptyTranscription(t *testing.T) {
	segments, lang, err := parseResult([]byte(`{"result":{"language":""},"transcription":[]}`))
	if err != nil {
		t.Fatalf("parseResult returned error: %v", err)
	}
	if len(segments) != 0 || lang != "" {
		t.Errorf("expected empty result, got %d segments lang %q", len(segments), lang)
	}
}

func TestParseResultMalformed(t *testing.T) {
	if _, _, err := parseResult([]byte("not json")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
