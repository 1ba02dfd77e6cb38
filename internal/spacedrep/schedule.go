package spacedrep

import (
	"time"

	"github.com/skherchache-oss/memoraid-app-sub001/internal/capsule"
)

// Status describes a schedule entry's position relative to now.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusDue       Status = "due"
	StatusUpcoming  Status = "upcoming"
)

// Entry is one stage of a capsule's projected review timeline.
type Entry struct {
	Stage        int       `json:"stage"`
	IntervalDays int       `json:"interval_days"`
	ReviewAt     time.Time `json:"review_at"` // zero for completed stages
	Status       Status    `json:"status"`
}

// Schedule produces the capsule's review timeline for display: one
// completed entry per already-passed stage, the immediate next stage
// (due or upcoming), and one further projected stage chained off it.
// Projection stops at the end of the interval table.
func (s Scheduler) Schedule(c capsule.Capsule, now time.Time) []Entry {
	entries := make([]Entry, 0, c.ReviewStage+2)
	for stage := 0; stage < c.ReviewStage; stage++ {
		entries = append(entries, Entry{
			Stage:        stage,
			IntervalDays: s.IntervalDays(stage),
			Status:       StatusCompleted,
		})
	}

	next := c.ReviewStage
	if next >= len(s.intervals) {
		return entries
	}
	anchor := c.CreatedAt
	if c.Reviewed() {
		anchor = *c.LastReviewed
	}
	reviewAt := anchor.Add(s.Interval(next))
	status := StatusUpcoming
	if !now.Before(reviewAt) {
		status = StatusDue
	}
	entries = append(entries, Entry{
		Stage:        next,
		IntervalDays: s.IntervalDays(next),
		ReviewAt:     reviewAt,
		Status:       status,
	})

	projected := next + 1
	if projected >= len(s.intervals) {
		return entries
	}
	entries = append(entries, Entry{
		Stage:        projected,
		IntervalDays: s.IntervalDays(projected),
		ReviewAt:     reviewAt.Add(s.Interval(projected)),
		Status:       StatusUpcoming,
	})
	return entries
}
