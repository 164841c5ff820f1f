package config

import "vox/internal/errs"

// Model describes one entry in the Whisper model catalog.
type Model struct {
	Name        string
	Description string
	Params      string
	VRAM        string
	Languages   string
}

// DefaultModel is used when no --model flag or config default is given.
const DefaultModel = "small"

// Catalog is the closed set of accepted Whisper models.
var Catalog = []Model{
	{"tiny", "Fastest model, 39M parameters", "39M", "~1GB", "multilingual"},
	{"tiny.en", "English-only tiny model", "39M", "~1GB", "English only"},
	{"base", "Smaller balanced model, 74M parameters", "74M", "~1GB", "multilingual"},
	{"base.en", "English-only base model", "74M", "~1GB", "English only"},
	{"small", "Default balanced model, 244M parameters", "244M", "~2GB", "multilingual"},
	{"small.en", "English-only small model", "244M", "~2GB", "English only"},
	{"medium", "Good accuracy model, 769M parameters", "769M", "~5GB", "multilingual"},
	{"medium.en", "English-only medium model", "769M", "~5GB", "English only"},
	{"large", "Highest accuracy model, 1550M parameters", "1550M", "~10GB", "multilingual"},
	{"large-v2", "Improved large model, 1550M parameters", "1550M", "~10GB", "multilingual"},
	{"large-v3", "Latest large model, 1550M parameters", "1550M", "~10GB", "multilingual"},
}

// ValidateModel normalizes and checks a model name against the catalog.
// The bare "large" alias resolves to "large-v3".
func ValidateModel(name string) (string, error) {
	normalized := name
	if normalized == "large" {
		normalized = "large-v3"
	}
	for _, model := range Catalog {
		if model.Name == normalized {
			return normalized, nil
		}
	}
	return "", errs.InvalidModel(name)
}

// LookupModel returns the catalog entry for a validated model name.
func LookupModel(name string) (Model, bool) {
	for _, model := range Catalog {
		if model.Name == name {
			return model, true
		}
	}
	return Model{}, false
}
