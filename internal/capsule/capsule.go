package capsule

import (
	"time"

	"github.com/google/uuid"
)

// ReviewType identifies which study mode produced a review log entry.
type ReviewType string

const (
	ReviewQuiz      ReviewType = "quiz"
	ReviewFlashcard ReviewType = "flashcard"
	ReviewManual    ReviewType = "manual"
)

// ReviewLog is a single entry in a capsule's review history.
// History is append-only; insertion order is significant.
type ReviewLog struct {
	At    time.Time  `json:"at"`
	Score int        `json:"score"` // 0-100
	Type  ReviewType `json:"type"`
}

// Capsule is a unit of study material with its review scheduling state.
//
// Capsules are value types: update methods return a modified copy and never
// touch the receiver, so conflicting concurrent updates are a caller-level
// merge decision, not something this package arbitrates.
type Capsule struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	CreatedAt    time.Time   `json:"created_at"`
	LastReviewed *time.Time  `json:"last_reviewed"` // nil before first review
	ReviewStage  int         `json:"review_stage"`
	History      []ReviewLog `json:"history"`
}

// New creates a capsule at stage 0, never reviewed.
func New(title string, now time.Time) Capsule {
	return Capsule{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: now,
	}
}

// clone returns a deep copy of the capsule.
func (c Capsule) clone() Capsule {
	out := c
	if c.LastReviewed != nil {
		v := *c.LastReviewed
		out.LastReviewed = &v
	}
	if c.History != nil {
		out.History = make([]ReviewLog, len(c.History))
		copy(out.History, c.History)
	}
	return out
}

// WithReview returns a copy with the review applied: the entry appended to
// history, the stage advanced by exactly one, and LastReviewed set to the
// entry time.
func (c Capsule) WithReview(entry ReviewLog) Capsule {
	out := c.clone()
	at := entry.At
	out.LastReviewed = &at
	out.ReviewStage++
	out.History = append(out.History, entry)
	return out
}

// WithStageAdvance returns a copy with the stage advanced without logging a
// review entry. Manual advancement still moves LastReviewed so the schedule
// keeps a reference point.
func (c Capsule) WithStageAdvance(now time.Time) Capsule {
	out := c.clone()
	at := now
	out.LastReviewed = &at
	out.ReviewStage++
	return out
}

// Reviewed reports whether the capsule has ever been reviewed.
func (c Capsule) Reviewed() bool {
	return c.LastReviewed != nil
}

// RecentScores returns the scores of the most recent n history entries,
// oldest first. Fewer are returned when the history is shorter.
func (c Capsule) RecentScores(n int) []int {
	if n <= 0 || len(c.History) == 0 {
		return nil
	}
	start := len(c.History) - n
	if start < 0 {
		start = 0
	}
	scores := make([]int, 0, len(c.History)-start)
	for _, e := range c.History[start:] {
		scores = append(scores, e.Score)
	}
	return scores
}
