package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"docket/internal/classifier"
	"docket/internal/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS classifications (
    content_hash TEXT NOT NULL,
    model        TEXT NOT NULL,
    vocabulary   TEXT NOT NULL,
    payload      TEXT NOT NULL,
    created_at   TEXT NOT NULL,
    PRIMARY KEY (content_hash, model, vocabulary)
)`

// Key identifies a cached classification. The same document classified by a
// different model or against a different vocabulary is a different entry.
type Key struct {
	ContentHash string
	Model       string
	Vocabulary  string
}

// Stats summarizes cache state for the CLI.
type Stats struct {
	Path    string `json:"path"`
	Entries int    `json:"entries"`
	Bytes   int64  `json:"bytes"`
}

// Store persists classification results in SQLite. A flock-guarded sidecar
// file keeps concurrent docket processes from opening the database at once.
type Store struct {
	db     *sql.DB
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

// Open initializes or connects to the cache database under dir.
func Open(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.NewComponentLogger(logger, "cache")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, "cache.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !ok {
		return nil, errors.New("cache database is locked by another docket process")
	}

	dbPath := filepath.Join(dir, "cache.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: dbPath, lock: lock, logger: logger}, nil
}

// Close releases the database connection and the process lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var dbErr error
	if s.db != nil {
		dbErr = s.db.Close()
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && dbErr == nil {
			dbErr = err
		}
	}
	return dbErr
}

// Get returns a cached classification, if present.
func (s *Store) Get(ctx context.Context, key Key) (classifier.RawClassification, bool, error) {
	var empty classifier.RawClassification
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM classifications WHERE content_hash = ? AND model = ? AND vocabulary = ?`,
		key.ContentHash, key.Model, key.Vocabulary,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return empty, false, nil
	}
	if err != nil {
		return empty, false, fmt.Errorf("query cache: %w", err)
	}

	var raw classifier.RawClassification
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		// A corrupt row is treated as a miss; the fresh result overwrites it.
		s.logger.Warn("discarding corrupt cache entry",
			logging.Any("key", key),
			logging.Error(err))
		return empty, false, nil
	}
	return raw, true, nil
}

// Put stores a classification result, replacing any existing entry.
func (s *Store) Put(ctx context.Context, key Key, raw classifier.RawClassification) error {
	if strings.TrimSpace(key.ContentHash) == "" {
		return errors.New("content hash required")
	}
	payload, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode classification: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO classifications (content_hash, model, vocabulary, payload, created_at)
         VALUES (?, ?, ?, ?, ?)`,
		key.ContentHash, key.Model, key.Vocabulary, string(payload),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert cache entry: %w", err)
	}
	return nil
}

// Purge removes every cached classification.
func (s *Store) Purge(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM classifications`)
	if err != nil {
		return 0, fmt.Errorf("purge cache: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	s.logger.Info("purged classification cache", logging.Int64("removed", removed))
	return removed, nil
}

// Stats reports entry count and on-disk size.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{Path: s.path}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM classifications`).Scan(&stats.Entries); err != nil {
		return stats, fmt.Errorf("count cache entries: %w", err)
	}
	if info, err := os.Stat(s.path); err == nil {
		stats.Bytes = info.Size()
	}
	return stats, nil
}
