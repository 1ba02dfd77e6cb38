package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/skherchache-oss/memoraid-app-sub001/internal/progression"
)

// ProfileRepo persists the learner's gamification state. The tool is
// single-user, so the profile is one fixed row; Load returns the zero state
// before the first save.
type ProfileRepo interface {
	Load(ctx context.Context) (progression.State, error)
	Save(ctx context.Context, s progression.State) error
}

type profileRepo struct {
	db *sqlx.DB
}

type profileRow struct {
	ID            int    `db:"id"`
	XP            int    `db:"xp"`
	CurrentStreak int    `db:"current_streak"`
	LastStudyDate string `db:"last_study_date"`
	Badges        string `db:"badges"`
}

func (r *profileRepo) Load(ctx context.Context) (progression.State, error) {
	var row profileRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM profile WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return progression.State{}, nil
	}
	if err != nil {
		return progression.State{}, fmt.Errorf("load profile: %w", err)
	}

	state := progression.State{
		XP:            row.XP,
		CurrentStreak: row.CurrentStreak,
		LastStudyDate: row.LastStudyDate,
	}
	if err := json.Unmarshal([]byte(row.Badges), &state.Badges); err != nil {
		return progression.State{}, fmt.Errorf("decode badges: %w", err)
	}
	return state, nil
}

func (r *profileRepo) Save(ctx context.Context, s progression.State) error {
	badges, err := json.Marshal(s.Badges)
	if err != nil {
		return fmt.Errorf("encode badges: %w", err)
	}
	if s.Badges == nil {
		badges = []byte("[]")
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO profile (id, xp, current_streak, last_study_date, badges)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			xp = excluded.xp,
			current_streak = excluded.current_streak,
			last_study_date = excluded.last_study_date,
			badges = excluded.badges`,
		s.XP, s.CurrentStreak, s.LastStudyDate, string(badges))
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
