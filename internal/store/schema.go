package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// migrate creates missing tables. All statements are idempotent, so the
// schema can be applied on every open.
func migrate(db *sqlx.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS capsules (
			id            TEXT PRIMARY KEY,
			title         TEXT NOT NULL,
			created_at    TEXT NOT NULL,
			last_reviewed TEXT,
			review_stage  INTEGER NOT NULL DEFAULT 0,
			history       TEXT NOT NULL DEFAULT '[]'
		)`,
		`CREATE TABLE IF NOT EXISTS profile (
			id              INTEGER PRIMARY KEY CHECK (id = 1),
			xp              INTEGER NOT NULL DEFAULT 0,
			current_streak  INTEGER NOT NULL DEFAULT 0,
			last_study_date TEXT NOT NULL DEFAULT '',
			badges          TEXT NOT NULL DEFAULT '[]'
		)`,
		`CREATE TABLE IF NOT EXISTS study_events (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence   INTEGER NOT NULL,
			action     TEXT NOT NULL,
			score      INTEGER NOT NULL DEFAULT 0,
			xp_awarded INTEGER NOT NULL DEFAULT 0,
			capsule_id TEXT NOT NULL DEFAULT '',
			timestamp  TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}
