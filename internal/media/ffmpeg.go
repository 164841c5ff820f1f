package media

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"vox/internal/errs"
)

const (
	ffmpegCommand  = "ffmpeg"
	ffprobeCommand = "ffprobe"
)

// FFmpeg converts media files by shelling out to the ffmpeg binary.
type FFmpeg struct {
	binary string
}

// NewFFmpeg returns a converter using the given binary, or "ffmpeg" from
// PATH when empty.
func NewFFmpeg(binary string) *FFmpeg {
	if binary == "" {
		binary = ffmpegCommand
	}
	return &FFmpeg{binary: binary}
}

// ConvertArgs builds the argument list for an MP3 conversion: strip video,
// encode mp3 at quality 2, overwrite the output.
func ConvertArgs(input, output string) []string {
	return []string{
		"-i", input,
		"-vn",
		"-acodec", "mp3",
		"-q:a", "2",
		"-y",
		output,
	}
}

// Convert transcodes input into an MP3 at output.
func (f *FFmpeg) Convert(ctx context.Context, input, output string) error {
	cmd := exec.CommandContext(ctx, f.binary, ConvertArgs(input, output)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errs.FFmpeg(lastLine(out), err)
	}
	return nil
}

// PCMArgs builds the argument list for decoding into the mono 16kHz WAV
// stream whisper.cpp expects.
func PCMArgs(input, output string) []string {
	return []string{
		"-i", input,
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		output,
	}
}

// DecodePCM converts input into a mono 16kHz WAV file at output.
func (f *FFmpeg) DecodePCM(ctx context.Context, input, output string) error {
	cmd := exec.CommandContext(ctx, f.binary, PCMArgs(input, output)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errs.FFmpeg(lastLine(out), err)
	}
	return nil
}

// ProbeDuration reads the container duration in seconds via ffprobe.
// Returns 0 with no error when the duration is absent from the container.
func ProbeDuration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, ffprobeCommand,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "json",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}

	var probe struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal(out, &probe); err != nil {
		return 0, fmt.Errorf("ffprobe output: %w", err)
	}
	if probe.Format.Duration == "" {
		return 0, nil
	}
	duration, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration %q: %w", probe.Format.Duration, err)
	}
	return duration, nil
}

func lastLine(output []byte) string {
	trimmed := strings.TrimSpace(string(output))
	if trimmed == "" {
		return "unknown error"
	}
	lines := strings.Split(trimmed, "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
