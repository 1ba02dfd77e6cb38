package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skherchache-oss/memoraid-app-sub001/internal/capsule"
	"github.com/skherchache-oss/memoraid-app-sub001/internal/progression"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCapsuleRepo_SaveGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Capsules()
	ctx := context.Background()

	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	c := capsule.New("Cell division", created)
	c = c.WithReview(capsule.ReviewLog{At: created.Add(time.Hour), Score: 85, Type: capsule.ReviewQuiz})

	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Cell division" || got.ReviewStage != 1 {
		t.Errorf("got %+v", got)
	}
	if got.LastReviewed == nil || !got.LastReviewed.Equal(*c.LastReviewed) {
		t.Errorf("LastReviewed = %v, want %v", got.LastReviewed, c.LastReviewed)
	}
	if len(got.History) != 1 || got.History[0].Score != 85 || got.History[0].Type != capsule.ReviewQuiz {
		t.Errorf("History = %+v", got.History)
	}
}

func TestCapsuleRepo_SaveIsUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.Capsules()
	ctx := context.Background()

	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	c := capsule.New("Osmosis", created)
	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("save: %v", err)
	}

	c = c.WithReview(capsule.ReviewLog{At: created.Add(time.Hour), Score: 90, Type: capsule.ReviewFlashcard})
	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("save update: %v", err)
	}

	got, err := repo.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ReviewStage != 1 {
		t.Errorf("ReviewStage = %d, want 1", got.ReviewStage)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestCapsuleRepo_GetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Capsules().Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCapsuleRepo_Delete(t *testing.T) {
	s := openTestStore(t)
	repo := s.Capsules()
	ctx := context.Background()

	c := capsule.New("Meiosis", time.Now())
	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, c.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestProfileRepo_DefaultBeforeFirstSave(t *testing.T) {
	s := openTestStore(t)
	state, err := s.Profile().Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if state.XP != 0 || state.CurrentStreak != 0 || state.LastStudyDate != "" || len(state.Badges) != 0 {
		t.Errorf("expected zero state, got %+v", state)
	}
}

func TestProfileRepo_SaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profile()
	ctx := context.Background()

	state := progression.State{
		XP:            250,
		CurrentStreak: 3,
		LastStudyDate: "2025-03-10",
		Badges: []progression.Badge{
			{ID: progression.BadgeFirstCapsule, UnlockedAt: time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC)},
		},
	}
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.XP != 250 || got.CurrentStreak != 3 || got.LastStudyDate != "2025-03-10" {
		t.Errorf("got %+v", got)
	}
	if len(got.Badges) != 1 || got.Badges[0].ID != progression.BadgeFirstCapsule {
		t.Errorf("Badges = %+v", got.Badges)
	}
}

func TestStudyEvents_AppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.StudyEvents()
	if err != nil {
		t.Fatalf("study events: %v", err)
	}
	ctx := context.Background()

	for i, action := range []string{"create", "quiz", "flashcard"} {
		ev := StudyEvent{
			Action:    action,
			XPAwarded: 10 * (i + 1),
			Timestamp: time.Date(2025, 3, 10, 9+i, 0, 0, 0, time.UTC),
		}
		if err := repo.Append(ctx, ev); err != nil {
			t.Fatalf("append %s: %v", action, err)
		}
	}

	events, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	// Most recent first, sequence strictly decreasing.
	if events[0].Action != "flashcard" || events[1].Action != "quiz" {
		t.Errorf("events = %+v", events)
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("sequences not decreasing: %d, %d", events[0].Sequence, events[1].Sequence)
	}

	counts, err := repo.CountByAction(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts["create"] != 1 || counts["quiz"] != 1 || counts["flashcard"] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestReset_WipesDataKeepsSchema(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	caps := s.Capsules()
	if err := caps.Save(ctx, capsule.New("doomed", time.Now())); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Profile().Save(ctx, progression.State{XP: 500}); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	events, err := s.StudyEvents()
	if err != nil {
		t.Fatalf("study events: %v", err)
	}
	if err := events.Append(ctx, StudyEvent{Action: "create"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	n, err := caps.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("capsule count = %d, want 0", n)
	}
	state, err := s.Profile().Load(ctx)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if state.XP != 0 {
		t.Errorf("XP = %d, want 0 after reset", state.XP)
	}

	// The store must remain usable: same counter appends from sequence 1.
	if err := events.Append(ctx, StudyEvent{Action: "quiz"}); err != nil {
		t.Fatalf("append after reset: %v", err)
	}
	recent, err := events.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 || recent[0].Sequence != 1 {
		t.Errorf("recent = %+v, want single event with sequence 1", recent)
	}
}
