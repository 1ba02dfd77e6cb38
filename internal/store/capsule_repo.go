package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/skherchache-oss/memoraid-app-sub001/internal/capsule"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// CapsuleRepo persists capsule records. The engine packages never touch
// this layer; the app layer loads records, derives, and saves the returned
// copies.
type CapsuleRepo interface {
	Save(ctx context.Context, c capsule.Capsule) error
	Get(ctx context.Context, id string) (capsule.Capsule, error)
	List(ctx context.Context) ([]capsule.Capsule, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type capsuleRepo struct {
	db *sqlx.DB
}

// capsuleRow is the flat database shape of a capsule. Timestamps are
// RFC 3339 strings; history is a JSON array.
type capsuleRow struct {
	ID           string         `db:"id"`
	Title        string         `db:"title"`
	CreatedAt    string         `db:"created_at"`
	LastReviewed sql.NullString `db:"last_reviewed"`
	ReviewStage  int            `db:"review_stage"`
	History      string         `db:"history"`
}

func (r *capsuleRepo) Save(ctx context.Context, c capsule.Capsule) error {
	row, err := toRow(c)
	if err != nil {
		return fmt.Errorf("encode capsule: %w", err)
	}
	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO capsules (id, title, created_at, last_reviewed, review_stage, history)
		VALUES (:id, :title, :created_at, :last_reviewed, :review_stage, :history)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			last_reviewed = excluded.last_reviewed,
			review_stage = excluded.review_stage,
			history = excluded.history`,
		row)
	if err != nil {
		return fmt.Errorf("save capsule: %w", err)
	}
	return nil
}

func (r *capsuleRepo) Get(ctx context.Context, id string) (capsule.Capsule, error) {
	var row capsuleRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM capsules WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return capsule.Capsule{}, fmt.Errorf("capsule %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return capsule.Capsule{}, fmt.Errorf("get capsule: %w", err)
	}
	return fromRow(row)
}

func (r *capsuleRepo) List(ctx context.Context) ([]capsule.Capsule, error) {
	var rows []capsuleRow
	err := r.db.SelectContext(ctx, &rows, `SELECT * FROM capsules ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list capsules: %w", err)
	}
	capsules := make([]capsule.Capsule, 0, len(rows))
	for _, row := range rows {
		c, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		capsules = append(capsules, c)
	}
	return capsules, nil
}

func (r *capsuleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM capsules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete capsule: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("capsule %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *capsuleRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM capsules`); err != nil {
		return 0, fmt.Errorf("count capsules: %w", err)
	}
	return n, nil
}

func toRow(c capsule.Capsule) (capsuleRow, error) {
	history, err := json.Marshal(c.History)
	if err != nil {
		return capsuleRow{}, err
	}
	row := capsuleRow{
		ID:          c.ID,
		Title:       c.Title,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339Nano),
		ReviewStage: c.ReviewStage,
		History:     string(history),
	}
	if c.LastReviewed != nil {
		row.LastReviewed = sql.NullString{
			String: c.LastReviewed.Format(time.RFC3339Nano),
			Valid:  true,
		}
	}
	return row, nil
}

func fromRow(row capsuleRow) (capsule.Capsule, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, row.CreatedAt)
	if err != nil {
		return capsule.Capsule{}, fmt.Errorf("parse created_at: %w", err)
	}
	c := capsule.Capsule{
		ID:          row.ID,
		Title:       row.Title,
		CreatedAt:   createdAt,
		ReviewStage: row.ReviewStage,
	}
	if row.LastReviewed.Valid {
		t, err := time.Parse(time.RFC3339Nano, row.LastReviewed.String)
		if err != nil {
			return capsule.Capsule{}, fmt.Errorf("parse last_reviewed: %w", err)
		}
		c.LastReviewed = &t
	}
	if err := json.Unmarshal([]byte(row.History), &c.History); err != nil {
		return capsule.Capsule{}, fmt.Errorf("decode history: %w", err)
	}
	return c, nil
}
