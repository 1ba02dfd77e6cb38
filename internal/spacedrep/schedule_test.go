package spacedrep

import (
	"testing"
	"time"

	"github.com/skherchache-oss/memoraid-app-sub001/internal/capsule"
)

func TestSchedule_FreshCapsule(t *testing.T) {
	s := NewScheduler(Config{})
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	c := testCapsule(created)

	entries := s.Schedule(c, created)
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2 (next + projected)", len(entries))
	}

	next := entries[0]
	if next.Stage != 0 || next.IntervalDays != 1 {
		t.Errorf("next entry = %+v, want stage 0 with 1-day interval", next)
	}
	wantAt := created.Add(24 * time.Hour)
	if !next.ReviewAt.Equal(wantAt) {
		t.Errorf("next.ReviewAt = %v, want %v", next.ReviewAt, wantAt)
	}
	if next.Status != StatusUpcoming {
		t.Errorf("next.Status = %q, want %q", next.Status, StatusUpcoming)
	}

	projected := entries[1]
	if projected.Stage != 1 || projected.Status != StatusUpcoming {
		t.Errorf("projected entry = %+v, want upcoming stage 1", projected)
	}
	// Projected date chains off the next entry's review date.
	wantProjected := wantAt.Add(3 * 24 * time.Hour)
	if !projected.ReviewAt.Equal(wantProjected) {
		t.Errorf("projected.ReviewAt = %v, want %v", projected.ReviewAt, wantProjected)
	}
}

func TestSchedule_NextEntryDueWhenDatePassed(t *testing.T) {
	s := NewScheduler(Config{})
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	reviewed := created.Add(24 * time.Hour)
	c := reviewedCapsule(created, 1, reviewed)

	now := reviewed.Add(5 * 24 * time.Hour) // past the 3-day stage-1 interval
	entries := s.Schedule(c, now)
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	if entries[0].Status != StatusCompleted {
		t.Errorf("entries[0].Status = %q, want %q", entries[0].Status, StatusCompleted)
	}
	if !entries[0].ReviewAt.IsZero() {
		t.Errorf("completed entry carries ReviewAt %v, want zero time", entries[0].ReviewAt)
	}
	if entries[1].Status != StatusDue {
		t.Errorf("entries[1].Status = %q, want %q", entries[1].Status, StatusDue)
	}
	if entries[2].Status != StatusUpcoming {
		t.Errorf("entries[2].Status = %q, want %q", entries[2].Status, StatusUpcoming)
	}
}

func TestSchedule_LengthIsStagePlusUpToTwo(t *testing.T) {
	s := NewScheduler(Config{})
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tableLen := s.TableLength()

	tests := []struct {
		stage int
		want  int
	}{
		{0, 2},
		{3, 5},
		{tableLen - 1, tableLen}, // next fits, projection runs past the table
		{tableLen, tableLen},     // next stage already past the table
		{tableLen + 2, tableLen + 2}, // completed entries only
	}

	for _, tt := range tests {
		c := reviewedCapsule(created, tt.stage, created)
		entries := s.Schedule(c, created)
		if len(entries) != tt.want {
			t.Errorf("stage %d: len(entries) = %d, want %d", tt.stage, len(entries), tt.want)
		}
		for i, e := range entries {
			if i < tt.stage && e.Status != StatusCompleted {
				t.Errorf("stage %d: entries[%d].Status = %q, want completed", tt.stage, i, e.Status)
			}
		}
	}
}

func TestSchedule_TerminatesAtTableEnd(t *testing.T) {
	s := NewScheduler(Config{IntervalsDays: []int{1, 3}})
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	c := reviewedCapsule(created, 2, created)

	entries := s.Schedule(c, created)
	for _, e := range entries {
		if e.Status == StatusDue || e.Status == StatusUpcoming {
			t.Errorf("entry %+v beyond the table should not be due/upcoming", e)
		}
	}
}

func TestSchedule_FreshComputationEachCall(t *testing.T) {
	s := NewScheduler(Config{})
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	c := testCapsule(created)

	first := s.Schedule(c, created)
	second := s.Schedule(c, created)
	if len(first) != len(second) {
		t.Fatalf("repeated calls disagree: %d vs %d entries", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entry %d differs between calls: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSchedule_DoesNotMutateCapsule(t *testing.T) {
	s := NewScheduler(Config{})
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	c := capsule.New("Golgi apparatus", created)

	_ = s.Schedule(c, created.Add(48*time.Hour))
	if c.ReviewStage != 0 || c.Reviewed() {
		t.Error("Schedule must not mutate the capsule")
	}
}
