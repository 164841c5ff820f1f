package history

import (
	"context"
	"path/filepath"
	"testing"

	"vox/internal/pipeline"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	duration := 123.4
	records := []pipeline.RunRecord{
		{RunID: "run-1", Title: "First", Source: "/in/first.mp3", Model: "small", Language: "en", Duration: &duration, Formats: []string{"txt"}, OutputDir: "/out"},
		{RunID: "run-2", Title: "Second", Source: "https://example.com/v", Model: "tiny", Formats: []string{"srt", "vtt"}, OutputDir: "/out"},
	}
	for _, rec := range records {
		if err := store.Record(ctx, rec); err != nil {
			t.Fatalf("Record(%s) returned error: %v", rec.RunID, err)
		}
	}

	entries, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].RunID != "run-2" {
		t.Errorf("newest entry should come first, got %q", entries[0].RunID)
	}
	if entries[0].Duration != nil {
		t.Error("unset duration should read back as nil")
	}
	if len(entries[0].Formats) != 2 || entries[0].Formats[0] != "srt" {
		t.Errorf("formats = %v", entries[0].Formats)
	}
	if entries[1].Duration == nil || *entries[1].Duration != duration {
		t.Errorf("duration did not round-trip: %v", entries[1].Duration)
	}
	if entries[1].CreatedAt.IsZero() {
		t.Error("created_at should parse")
	}
}

func TestListLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		rec := pipeline.RunRecord{RunID: id, Title: id, Source: id, Model: "small", Formats: []string{"txt"}, OutputDir: "/out"}
		if err := store.Record(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].RunID != "c" || entries[1].RunID != "b" {
		t.Errorf("unexpected order: %q, %q", entries[0].RunID, entries[1].RunID)
	}
}

func TestDuplicateRunIDRejected(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	rec := pipeline.RunRecord{RunID: "dup", Title: "T", Source: "s", Model: "small", Formats: []string{"txt"}, OutputDir: "/out"}
	if err := store.Record(ctx, rec); err != nil {
		t.Fatal(err)
	}
	if err := store.Record(ctx, rec); err == nil {
		t.Fatal("expected unique constraint violation for duplicate run_id")
	}
}
