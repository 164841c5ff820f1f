package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"vox/internal/pipeline"
)

//go:embed schema.sql
var schemaSQL string

// Entry is one recorded run as read back from the ledger.
type Entry struct {
	ID        int64
	RunID     string
	Title     string
	Source    string
	Model     string
	Language  string
	Duration  *float64
	Formats   []string
	OutputDir string
	CreatedAt time.Time
}

// Store persists run history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// DefaultPath returns the per-user ledger location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "vox", "history.db"), nil
}

// Open initializes or connects to the ledger database at path, creating
// parent directories and the schema as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts one completed run. Satisfies the pipeline's Recorder.
func (s *Store) Record(ctx context.Context, rec pipeline.RunRecord) error {
	var duration any
	if rec.Duration != nil {
		duration = *rec.Duration
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (
            run_id, title, source, model, language,
            duration, formats, output_dir, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID,
		rec.Title,
		rec.Source,
		rec.Model,
		rec.Language,
		duration,
		strings.Join(rec.Formats, ","),
		rec.OutputDir,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first, capped at limit. A
// non-positive limit returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT id, run_id, title, source, model, language,
            duration, formats, output_dir, created_at
        FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry     Entry
			duration  sql.NullFloat64
			formats   string
			createdAt string
		)
		if err := rows.Scan(
			&entry.ID, &entry.RunID, &entry.Title, &entry.Source,
			&entry.Model, &entry.Language, &duration, &formats,
			&entry.OutputDir, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if duration.Valid {
			value := duration.Float64
			entry.Duration = &value
		}
		if formats != "" {
			entry.Formats = strings.Split(formats, ",")
		}
		if parsed, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			entry.CreatedAt = parsed
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
