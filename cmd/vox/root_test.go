package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListModelsNeedsNoInput(t *testing.T) {
	out, err := executeCommand(t, "--list-models")
	if err != nil {
		t.Fatalf("--list-models returned error: %v", err)
	}
	for _, want := range []string{"tiny", "small (default)", "large-v3", "multilingual"} {
		if !strings.Contains(out, want) {
			t.Errorf("catalog output missing %q", want)
		}
	}
}

func TestNoInputFails(t *testing.T) {
	out, err := executeCommand(t)
	if err == nil {
		t.Fatal("bare invocation without input should fail")
	}
	if !strings.Contains(err.Error(), "input file or URL is required") {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "vox [input]") {
		t.Errorf("usage should be printed, got %q", out)
	}
}

func TestInvalidFormatFlagFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	input := filepath.Join(t.TempDir(), "clip.mp3")
	if err := os.WriteFile(input, []byte("mp3"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := executeCommand(t, "-f", "docx", input)
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "invalid format") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestInvalidModelFlagFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	input := filepath.Join(t.TempDir(), "clip.mp3")
	if err := os.WriteFile(input, []byte("mp3"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := executeCommand(t, "--model", "gigantic", input)
	if err == nil {
		t.Fatal("expected error for unknown model")
	}
	if !strings.Contains(err.Error(), "invalid model") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStdoutRejectsMultipleFormats(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	input := filepath.Join(t.TempDir(), "clip.mp3")
	if err := os.WriteFile(input, []byte("mp3"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := executeCommand(t, "--stdout", "-f", "txt,json", input)
	if err == nil {
		t.Fatal("expected error for multiple formats with --stdout")
	}
}

func TestConfigInitAndPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	out, err := executeCommand(t, "config", "init")
	if err != nil {
		t.Fatalf("config init returned error: %v", err)
	}
	expected := filepath.Join(home, ".config", "vox", "config.toml")
	if !strings.Contains(out, expected) {
		t.Errorf("init output %q missing path %q", out, expected)
	}
	if _, err := os.Stat(expected); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	if _, err := executeCommand(t, "config", "init"); err == nil {
		t.Fatal("second init without --overwrite should fail")
	}
	if _, err := executeCommand(t, "config", "init", "--overwrite"); err != nil {
		t.Fatalf("init --overwrite returned error: %v", err)
	}

	out, err = executeCommand(t, "config", "path")
	if err != nil {
		t.Fatalf("config path returned error: %v", err)
	}
	if !strings.Contains(out, expected) || strings.Contains(out, "not present") {
		t.Errorf("config path output = %q", out)
	}
}

func TestHistoryEmptyLedger(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := executeCommand(t, "history")
	if err != nil {
		t.Fatalf("history returned error: %v", err)
	}
	if !strings.Contains(out, "No runs recorded yet.") {
		t.Errorf("unexpected history output: %q", out)
	}
}
