package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Defaults holds the optional file-backed defaults that seed CLI flags.
// Flags set explicitly on the command line always win.
type Defaults struct {
	Model     string `toml:"model"`
	Format    string `toml:"format"`
	OutputDir string `toml:"output_dir"`
	KeepAudio bool   `toml:"keep_audio"`
	Overwrite bool   `toml:"overwrite"`
}

// DefaultConfigPath returns the default defaults-file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/vox/config.toml")
}

// BuiltinDefaults returns the defaults used when no config file exists.
func BuiltinDefaults() Defaults {
	return Defaults{
		Model:  DefaultModel,
		Format: "txt",
	}
}

// LoadDefaults reads the defaults file when present. It returns the resolved
// path and whether a file was found; a missing file is not an error.
func LoadDefaults(path string) (Defaults, string, bool, error) {
	defaults := BuiltinDefaults()

	resolved := path
	if resolved == "" {
		var err error
		resolved, err = DefaultConfigPath()
		if err != nil {
			return defaults, "", false, err
		}
	} else {
		var err error
		resolved, err = ExpandPath(resolved)
		if err != nil {
			return defaults, "", false, err
		}
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults, resolved, false, nil
		}
		return defaults, resolved, false, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	if err := decoder.Decode(&defaults); err != nil {
		return defaults, resolved, false, fmt.Errorf("parse config: %w", err)
	}
	if defaults.Model == "" {
		defaults.Model = DefaultModel
	}
	if defaults.Format == "" {
		defaults.Format = "txt"
	}
	return defaults, resolved, true, nil
}

// CreateSample writes the embedded sample defaults file to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
