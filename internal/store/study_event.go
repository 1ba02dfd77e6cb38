package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
)

// StudyEvent is one append-only record of study activity. The event log is
// the tool's observability surface: stats and history views read it back
// instead of a log file.
type StudyEvent struct {
	Sequence  int64     `db:"sequence"`
	Action    string    `db:"action"`
	Score     int       `db:"score"`
	XPAwarded int       `db:"xp_awarded"`
	CapsuleID string    `db:"capsule_id"`
	Timestamp time.Time `db:"-"`
}

// StudyEventRepo provides append and query access to the study event log.
type StudyEventRepo interface {
	Append(ctx context.Context, ev StudyEvent) error
	Recent(ctx context.Context, limit int) ([]StudyEvent, error)
	CountByAction(ctx context.Context) (map[string]int, error)
}

// sequenceCounter assigns a single increasing sequence to every event so
// the log stays totally ordered even if more event tables are added later.
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sqlx.DB
}

func newSequenceCounter(db *sqlx.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

type studyEventRepo struct {
	db  *sqlx.DB
	seq *sequenceCounter
}

func (r *studyEventRepo) Append(ctx context.Context, ev StudyEvent) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	ts := ev.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO study_events (sequence, action, score, xp_awarded, capsule_id, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`,
		seqNum, ev.Action, ev.Score, ev.XPAwarded, ev.CapsuleID, ts.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("append study event: %w", err)
	}
	return nil
}

func (r *studyEventRepo) Recent(ctx context.Context, limit int) ([]StudyEvent, error) {
	rows, err := r.db.QueryxContext(ctx, `
		SELECT sequence, action, score, xp_awarded, capsule_id, timestamp
		FROM study_events ORDER BY sequence DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query study events: %w", err)
	}
	defer rows.Close()

	var events []StudyEvent
	for rows.Next() {
		var ev StudyEvent
		var ts string
		if err := rows.Scan(&ev.Sequence, &ev.Action, &ev.Score, &ev.XPAwarded, &ev.CapsuleID, &ts); err != nil {
			return nil, fmt.Errorf("scan study event: %w", err)
		}
		if ev.Timestamp, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			return nil, fmt.Errorf("parse event timestamp: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *studyEventRepo) CountByAction(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT action, COUNT(*) FROM study_events GROUP BY action`)
	if err != nil {
		return nil, fmt.Errorf("count study events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var action string
		var n int
		if err := rows.Scan(&action, &n); err != nil {
			return nil, fmt.Errorf("scan event count: %w", err)
		}
		counts[action] = n
	}
	return counts, rows.Err()
}
