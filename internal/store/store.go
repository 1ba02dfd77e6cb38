package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the database handle and provides access to repositories.
type Store struct {
	db *sqlx.DB
}

// Open creates a Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying handle for raw queries.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Capsules returns a CapsuleRepo backed by this store.
func (s *Store) Capsules() CapsuleRepo {
	return &capsuleRepo{db: s.db}
}

// Profile returns a ProfileRepo backed by this store.
func (s *Store) Profile() ProfileRepo {
	return &profileRepo{db: s.db}
}

// StudyEvents returns a StudyEventRepo backed by this store.
func (s *Store) StudyEvents() (StudyEventRepo, error) {
	seq, err := newSequenceCounter(s.db)
	if err != nil {
		return nil, err
	}
	return &studyEventRepo{db: s.db, seq: seq}, nil
}

// Reset wipes all learner data: capsules, profile, events, and the
// sequence counter. The schema survives, so the store stays usable.
func (s *Store) Reset(ctx context.Context) error {
	tables := []string{"capsules", "profile", "study_events"}
	for _, tbl := range tables {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+tbl); err != nil {
			return fmt.Errorf("reset %s: %w", tbl, err)
		}
	}
	// Rewind rather than drop the row so live sequence counters keep working.
	if _, err := s.db.ExecContext(ctx, "UPDATE global_sequence SET next_val = 1 WHERE id = 1"); err != nil {
		return fmt.Errorf("reset sequence: %w", err)
	}
	return nil
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. MEMORAID_DB environment variable
// 2. $XDG_DATA_HOME/memoraid/memoraid.db
// 3. ~/.local/share/memoraid/memoraid.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("MEMORAID_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "memoraid", "memoraid.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
