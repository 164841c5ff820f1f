package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"vox/internal/config"
	"vox/internal/errs"
	"vox/internal/fileutil"
	"vox/internal/transcript"
)

// emit renders every requested format. In stdout mode the single format is
// printed; otherwise each format is written to its own file, prompting
// before overwriting unless overwrites were pre-approved.
func (r *Runner) emit(logger *slog.Logger, result transcript.Transcript, base string) error {
	for _, format := range r.cfg.Formats {
		content := render(format, result)

		if r.cfg.StdoutMode {
			fmt.Fprint(r.stdout, content)
			if !strings.HasSuffix(content, "\n") {
				fmt.Fprintln(r.stdout)
			}
			continue
		}

		dest := filepath.Join(r.cfg.OutputDir, base+"."+format.Extension())
		if err := r.checkOverwrite(dest); err != nil {
			return err
		}
		if err := os.WriteFile(dest, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", dest, err)
		}
		logger.Info("saved transcript", "format", format.String(), "path", dest)
	}
	return nil
}

// keepAudio copies the staged MP3 next to the transcripts.
func (r *Runner) keepAudio(logger *slog.Logger, audioPath, base string) error {
	dest := filepath.Join(r.cfg.OutputDir, base+".mp3")
	if err := r.checkOverwrite(dest); err != nil {
		return err
	}
	if err := fileutil.CopyFile(audioPath, dest); err != nil {
		return fmt.Errorf("keep audio: %w", err)
	}
	logger.Info("audio file kept", "path", dest)
	return nil
}

// checkOverwrite asks for confirmation when dest already exists. A declined
// or failed prompt aborts the run.
func (r *Runner) checkOverwrite(dest string) error {
	if r.cfg.OverwriteFiles {
		return nil
	}
	if _, err := os.Stat(dest); err != nil {
		return nil
	}
	ok, err := r.confirm(dest)
	if err != nil || !ok {
		return fmt.Errorf("%w: %s", errs.ErrUserAborted, dest)
	}
	return nil
}

func render(format config.OutputFormat, result transcript.Transcript) string {
	switch format {
	case config.FormatJSON:
		return transcript.FormatJSON(result)
	case config.FormatSRT:
		return transcript.FormatSRT(result)
	case config.FormatVTT:
		return transcript.FormatVTT(result)
	default:
		return transcript.FormatTXT(result)
	}
}
