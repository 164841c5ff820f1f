package download

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"strings"

	"vox/internal/errs"
)

const ytdlpCommand = "yt-dlp"

// YTDLP downloads remote audio by shelling out to yt-dlp.
type YTDLP struct {
	binary string
}

// New returns a downloader using the given binary, or "yt-dlp" from PATH
// when empty.
func New(binary string) *YTDLP {
	if binary == "" {
		binary = ytdlpCommand
	}
	return &YTDLP{binary: binary}
}

// Args builds the yt-dlp invocation: best audio extracted to m4a in destDir,
// printing the video title followed by the final file path so both can be
// read from stdout.
func Args(rawURL, destDir string) []string {
	return []string{
		"--no-playlist",
		"--no-simulate",
		"-f", "bestaudio/best",
		"-x",
		"--audio-format", "m4a",
		"-o", filepath.Join(destDir, "audio.%(ext)s"),
		"--print", "title",
		"--print", "after_move:filepath",
		rawURL,
	}
}

// Download fetches the audio stream for rawURL into destDir and returns the
// downloaded file path plus the discovered title.
func (y *YTDLP) Download(ctx context.Context, rawURL, destDir string) (string, string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", "", fmt.Errorf("%w: %s", errs.ErrInvalidURL, rawURL)
	}

	cmd := exec.CommandContext(ctx, y.binary, Args(rawURL, destDir)...)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", "", errs.DownloadFailed(lastLine(stderr.String()), err)
	}

	title, audioPath, err := parseOutput(string(out))
	if err != nil {
		return "", "", errs.DownloadFailed("", err)
	}
	return audioPath, title, nil
}

// parseOutput extracts the two printed lines: title first, file path second.
func parseOutput(output string) (title, path string, err error) {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return "", "", fmt.Errorf("unexpected yt-dlp output: %q", output)
	}
	return lines[0], lines[len(lines)-1], nil
}

func lastLine(output string) string {
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return ""
	}
	lines := strings.Split(trimmed, "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
