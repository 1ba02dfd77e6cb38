package spacedrep

import (
	"math"
	"time"

	"github.com/skherchache-oss/memoraid-app-sub001/internal/capsule"
)

// GlobalPerformance aggregates scheduling health across a collection.
type GlobalPerformance struct {
	AvgMastery   int `json:"avg_mastery"`
	AvgRetention int `json:"avg_retention"`
	Due          int `json:"due"`
	Overdue      int `json:"overdue"` // subset of Due past the grace window
	NotDue       int `json:"not_due"`
}

// Performance computes aggregate mastery, retention, and due counts over a
// collection of capsules. Empty input yields the zero value.
func (s Scheduler) Performance(capsules []capsule.Capsule, now time.Time) GlobalPerformance {
	var perf GlobalPerformance
	if len(capsules) == 0 {
		return perf
	}

	masterySum, retentionSum := 0, 0
	for _, c := range capsules {
		masterySum += s.Mastery(c)
		retentionSum += s.Retention(c, now)
		if !s.IsDue(c, now) {
			perf.NotDue++
			continue
		}
		perf.Due++
		if s.isOverdue(c, now) {
			perf.Overdue++
		}
	}

	n := float64(len(capsules))
	perf.AvgMastery = int(math.Round(float64(masterySum) / n))
	perf.AvgRetention = int(math.Round(float64(retentionSum) / n))
	return perf
}

// isOverdue reports whether a due capsule has exceeded the grace window of
// overdueFactor times its nominal interval. Never-reviewed capsules measure
// elapsed time from creation.
func (s Scheduler) isOverdue(c capsule.Capsule, now time.Time) bool {
	anchor := c.CreatedAt
	if c.Reviewed() {
		anchor = *c.LastReviewed
	}
	grace := time.Duration(float64(s.Interval(c.ReviewStage)) * overdueFactor)
	return now.After(anchor.Add(grace))
}
