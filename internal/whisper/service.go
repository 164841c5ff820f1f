package whisper

import (
	"context"
	"log/slog"
	"net/http"
	"os/exec"
	"path/filepath"
	"strings"

	"vox/internal/errs"
	langpkg "vox/internal/language"
	"vox/internal/media"
	"vox/internal/pipeline"
	"vox/internal/transcript"
)

const whisperCommand = "whisper-cli"

// PCMDecoder converts audio into the mono 16kHz WAV stream whisper.cpp
// expects. Satisfied by media.FFmpeg.
type PCMDecoder interface {
	DecodePCM(ctx context.Context, input, output string) error
}

// Service transcribes audio with the whisper.cpp CLI.
type Service struct {
	binary   string
	modelDir string
	ffmpeg   PCMDecoder
	client   *http.Client
	logger   *slog.Logger

	commandRunner func(ctx context.Context, name string, args ...string) error
}

// NewService builds a transcriber. Empty binary and modelDir fall back to
// "whisper-cli" on PATH and the per-user cache directory.
func NewService(binary, modelDir string, ffmpeg PCMDecoder, logger *slog.Logger) (*Service, error) {
	if binary == "" {
		binary = whisperCommand
	}
	if modelDir == "" {
		var err error
		modelDir, err = DefaultModelDir()
		if err != nil {
			return nil, err
		}
	}
	return &Service{
		binary:   binary,
		modelDir: modelDir,
		ffmpeg:   ffmpeg,
		client:   http.DefaultClient,
		logger:   logger,
	}, nil
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	s.commandRunner = runner
}

// Transcribe decodes the normalized audio to PCM, runs whisper.cpp against
// the cached model, and parses the JSON result into a transcript.
func (s *Service) Transcribe(ctx context.Context, req pipeline.TranscribeRequest) (transcript.Transcript, error) {
	var empty transcript.Transcript

	modelPath, err := s.EnsureModel(ctx, req.Model)
	if err != nil {
		return empty, err
	}

	wavPath := filepath.Join(req.WorkDir, "whisper_input.wav")
	if err := s.ffmpeg.DecodePCM(ctx, req.AudioPath, wavPath); err != nil {
		return empty, err
	}

	outPrefix := filepath.Join(req.WorkDir, "whisper_output")
	args := inferenceArgs(modelPath, wavPath, outPrefix, req.Model)
	if err := s.run(ctx, s.binary, args...); err != nil {
		return empty, err
	}

	segments, detected, err := parseResultFile(outPrefix + ".json")
	if err != nil {
		return empty, errs.TranscriptionFailed("parse whisper output", err)
	}

	duration := transcriptDuration(ctx, req.AudioPath, segments)
	meta := transcript.Metadata{
		Title:    req.Title,
		Source:   req.Source,
		Duration: duration,
		Model:    req.Model,
		Language: langpkg.Normalize(detected),
	}
	return transcript.New(segments, meta), nil
}

// inferenceArgs builds the whisper-cli invocation. English-only models pin
// the language; multilingual models auto-detect.
func inferenceArgs(modelPath, wavPath, outPrefix, model string) []string {
	lang := "auto"
	if strings.HasSuffix(model, ".en") {
		lang = "en"
	}
	return []string{
		"-m", modelPath,
		"-f", wavPath,
		"-l", lang,
		"-oj",
		"-of", outPrefix,
		"-np",
	}
}

// transcriptDuration probes the container duration, falling back to the end
// of the last segment. Nil means unknown.
func transcriptDuration(ctx context.Context, audioPath string, segments []transcript.Segment) *float64 {
	if probed, err := media.ProbeDuration(ctx, audioPath); err == nil && probed > 0 {
		return &probed
	}
	if len(segments) > 0 {
		end := segments[len(segments)-1].End
		return &end
	}
	return nil
}

func (s *Service) run(ctx context.Context, name string, args ...string) error {
	if s.commandRunner != nil {
		return s.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return errs.TranscriptionFailed(lastLine(output), err)
	}
	return nil
}

func lastLine(output []byte) string {
	trimmed := strings.TrimSpace(string(output))
	if trimmed == "" {
		return ""
	}
	lines := strings.Split(trimmed, "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
