package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Args carries raw, flag-level input exactly as the CLI collected it.
type Args struct {
	Input     string
	Format    string
	Name      string
	Output    string
	Verbose   int
	Keep      bool
	Model     string
	Overwrite bool
	Stdout    bool
}

// Config is the validated, immutable parameter set for one pipeline run.
type Config struct {
	InputPath      string
	Formats        []OutputFormat
	CustomName     string
	OutputDir      string
	VerboseLevel   int
	KeepAudio      bool
	Model          string
	OverwriteFiles bool
	StdoutMode     bool
}

// FromArgs validates raw arguments into a Config. Input may be empty only
// when the caller is in list-models mode, which is checked upstream.
func FromArgs(args Args) (*Config, error) {
	formats, err := ParseFormats(args.Format, args.Stdout)
	if err != nil {
		return nil, err
	}

	model, err := ValidateModel(args.Model)
	if err != nil {
		return nil, err
	}

	outputDir, err := ResolveOutputDir(args.Output)
	if err != nil {
		return nil, err
	}

	return &Config{
		InputPath:      args.Input,
		Formats:        formats,
		CustomName:     StripTxtExtension(args.Name),
		OutputDir:      outputDir,
		VerboseLevel:   args.Verbose,
		KeepAudio:      args.Keep,
		Model:          model,
		OverwriteFiles: args.Overwrite,
		StdoutMode:     args.Stdout,
	}, nil
}

// OutputBaseName returns the base filename for outputs: the custom name when
// present, otherwise the discovered title.
func (c *Config) OutputBaseName(title string) string {
	if c.CustomName != "" {
		return c.CustomName
	}
	return title
}

// ResolveOutputDir expands a leading ~ and creates the directory (and
// parents) when absent. An empty value resolves to the current working
// directory.
func ResolveOutputDir(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		return cwd, nil
	}

	expanded, err := ExpandPath(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(expanded, 0o755); err != nil {
		return "", fmt.Errorf("create output directory %q: %w", expanded, err)
	}
	return expanded, nil
}

// StripTxtExtension removes one trailing ".txt" suffix. Idempotent.
func StripTxtExtension(name string) string {
	return strings.TrimSuffix(name, ".txt")
}

// IsURL reports whether the input names a remote source.
func IsURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// ExpandPath expands a leading ~ to the user's home directory and resolves
// the result to an absolute, cleaned path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && pathValue[1] == '/' {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
