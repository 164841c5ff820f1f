package whisper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"vox/internal/errs"
)

const modelBaseURL = "https://huggingface.co/ggerganov/whisper.cpp/resolve/main"

// ModelURL returns the download location for a validated model name.
func ModelURL(model string) string {
	return fmt.Sprintf("%s/%s", modelBaseURL, modelFileName(model))
}

func modelFileName(model string) string {
	return fmt.Sprintf("ggml-%s.bin", model)
}

// DefaultModelDir returns the per-user model cache directory.
func DefaultModelDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "vox", "models"), nil
}

// EnsureModel returns the local path of the model file, downloading it into
// dir when absent. A file lock on the cache directory keeps concurrent
// invocations from racing on the same download.
func (s *Service) EnsureModel(ctx context.Context, model string) (string, error) {
	path := filepath.Join(s.modelDir, modelFileName(model))
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(s.modelDir, 0o755); err != nil {
		return "", fmt.Errorf("create model directory: %w", err)
	}

	lock := flock.New(filepath.Join(s.modelDir, ".download.lock"))
	if err := lock.Lock(); err != nil {
		return "", fmt.Errorf("lock model cache: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	// Another process may have finished the download while we waited.
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	s.logger.Info("downloading model", "model", model)
	if err := s.downloadModel(ctx, model, path); err != nil {
		return "", err
	}
	s.logger.Info("model saved", "path", path)
	return path, nil
}

func (s *Service) downloadModel(ctx context.Context, model, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ModelURL(model), nil)
	if err != nil {
		return errs.DownloadFailed("build model request", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return errs.DownloadFailed("fetch model", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errs.DownloadFailed(fmt.Sprintf("fetch model: HTTP %d", resp.StatusCode), nil)
	}

	partial := dest + ".partial"
	out, err := os.Create(partial)
	if err != nil {
		return fmt.Errorf("create model file: %w", err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		_ = os.Remove(partial)
		return errs.DownloadFailed("write model file", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(partial)
		return fmt.Errorf("close model file: %w", err)
	}
	return os.Rename(partial, dest)
}
