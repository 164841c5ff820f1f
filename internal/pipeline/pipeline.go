package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"vox/internal/config"
	"vox/internal/errs"
	"vox/internal/fileutil"
	"vox/internal/interrupt"
	langpkg "vox/internal/language"
	"vox/internal/textutil"
	"vox/internal/transcript"
)

// stagedAudioName is the normalized audio file inside the working directory.
const stagedAudioName = "audio.mp3"

// Downloader fetches remote audio into destDir, returning the local file
// path and the discovered title.
type Downloader interface {
	Download(ctx context.Context, rawURL, destDir string) (path, title string, err error)
}

// Converter transcodes input into an MP3 at output.
type Converter interface {
	Convert(ctx context.Context, input, output string) error
}

// TranscribeRequest carries everything a transcriber needs for one run.
type TranscribeRequest struct {
	AudioPath string
	WorkDir   string
	Title     string
	Source    string
	Model     string
}

// Transcriber produces a transcript from normalized audio.
type Transcriber interface {
	Transcribe(ctx context.Context, req TranscribeRequest) (transcript.Transcript, error)
}

// RunRecord summarizes a completed run for the history ledger.
type RunRecord struct {
	RunID     string
	Title     string
	Source    string
	Model     string
	Language  string
	Duration  *float64
	Formats   []string
	OutputDir string
}

// Recorder persists run records. Recording is best effort; failures are
// logged, never fatal.
type Recorder interface {
	Record(ctx context.Context, rec RunRecord) error
}

// ConfirmFunc asks whether an existing file at path may be overwritten.
type ConfirmFunc func(path string) (bool, error)

// Runner executes the transcription pipeline for a single validated Config.
type Runner struct {
	cfg         *config.Config
	token       *interrupt.Token
	logger      *slog.Logger
	downloader  Downloader
	converter   Converter
	transcriber Transcriber

	recorder Recorder
	confirm  ConfirmFunc
	stdout   io.Writer
}

// NewRunner wires a runner with its required collaborators. Overwrite
// confirmation defaults to declining, and rendered stdout output goes to
// os.Stdout; both can be replaced with the With setters.
func NewRunner(cfg *config.Config, token *interrupt.Token, logger *slog.Logger, downloader Downloader, converter Converter, transcriber Transcriber) *Runner {
	return &Runner{
		cfg:         cfg,
		token:       token,
		logger:      logger,
		downloader:  downloader,
		converter:   converter,
		transcriber: transcriber,
		confirm:     func(string) (bool, error) { return false, nil },
		stdout:      os.Stdout,
	}
}

// WithConfirm sets the overwrite confirmation callback.
func (r *Runner) WithConfirm(confirm ConfirmFunc) *Runner {
	r.confirm = confirm
	return r
}

// WithRecorder sets the optional history recorder.
func (r *Runner) WithRecorder(recorder Recorder) *Runner {
	r.recorder = recorder
	return r
}

// WithStdout redirects rendered stdout-mode output (for testing).
func (r *Runner) WithStdout(w io.Writer) *Runner {
	r.stdout = w
	return r
}

// Run executes the full pipeline. An interrupt observed at a stage boundary
// returns nil; partial outputs written before the interrupt are kept.
func (r *Runner) Run(ctx context.Context) error {
	runID := uuid.NewString()
	logger := r.logger.With("run_id", runID)

	workDir, err := os.MkdirTemp("", "vox-*")
	if err != nil {
		return fmt.Errorf("create working directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	audioPath, title, err := r.acquire(ctx, logger, workDir)
	if err != nil {
		return err
	}

	if r.token.Requested() {
		logger.Info("interrupted, exiting")
		return nil
	}

	logger.Info("transcribing", "title", textutil.DisplayTitle(title), "model", r.cfg.Model)
	result, err := r.transcriber.Transcribe(ctx, TranscribeRequest{
		AudioPath: audioPath,
		WorkDir:   workDir,
		Title:     title,
		Source:    r.cfg.InputPath,
		Model:     r.cfg.Model,
	})
	if err != nil {
		return err
	}
	logger.Info("transcription complete",
		"segments", len(result.Segments),
		"language", langpkg.DisplayName(result.Meta.Language))

	if r.token.Requested() {
		logger.Info("interrupted, exiting")
		return nil
	}

	base := r.cfg.OutputBaseName(title)
	if err := r.emit(logger, result, base); err != nil {
		return err
	}

	if r.cfg.KeepAudio && !r.cfg.StdoutMode {
		if err := r.keepAudio(logger, audioPath, base); err != nil {
			return err
		}
	}

	r.record(ctx, logger, runID, result)
	return nil
}

// acquire stages the input as MP3 inside workDir and returns its path plus
// the derived title.
func (r *Runner) acquire(ctx context.Context, logger *slog.Logger, workDir string) (string, string, error) {
	staged := filepath.Join(workDir, stagedAudioName)

	if config.IsURL(r.cfg.InputPath) {
		logger.Info("downloading audio", "url", r.cfg.InputPath)
		downloaded, title, err := r.downloader.Download(ctx, r.cfg.InputPath, workDir)
		if err != nil {
			return "", "", err
		}
		if err := r.converter.Convert(ctx, downloaded, staged); err != nil {
			return "", "", err
		}
		return staged, title, nil
	}

	info, err := os.Stat(r.cfg.InputPath)
	if err != nil || !info.Mode().IsRegular() {
		return "", "", errs.FileNotFound(r.cfg.InputPath)
	}

	title := fileutil.Stem(r.cfg.InputPath, "audio")
	if strings.EqualFold(filepath.Ext(r.cfg.InputPath), ".mp3") {
		if err := fileutil.CopyFile(r.cfg.InputPath, staged); err != nil {
			return "", "", fmt.Errorf("stage input: %w", err)
		}
		return staged, title, nil
	}

	logger.Info("converting to mp3", "input", r.cfg.InputPath)
	if err := r.converter.Convert(ctx, r.cfg.InputPath, staged); err != nil {
		return "", "", err
	}
	return staged, title, nil
}

func (r *Runner) record(ctx context.Context, logger *slog.Logger, runID string, result transcript.Transcript) {
	if r.recorder == nil {
		return
	}
	formats := make([]string, 0, len(r.cfg.Formats))
	for _, f := range r.cfg.Formats {
		formats = append(formats, f.String())
	}
	rec := RunRecord{
		RunID:     runID,
		Title:     result.Meta.Title,
		Source:    result.Meta.Source,
		Model:     result.Meta.Model,
		Language:  result.Meta.Language,
		Duration:  result.Meta.Duration,
		Formats:   formats,
		OutputDir: r.cfg.OutputDir,
	}
	if err := r.recorder.Record(ctx, rec); err != nil {
		logger.Warn("history record failed", "error", err)
	}
}
