// Package config turns raw CLI input into a validated, immutable run
// configuration before any I/O-heavy work begins.
//
// It owns the closed output-format enumeration, the Whisper model catalog,
// path expansion and output directory resolution, and the optional TOML
// defaults file (~/.config/vox/config.toml) that seeds flag defaults.
// Validation errors are terminal: the caller reports them and exits.
package config
