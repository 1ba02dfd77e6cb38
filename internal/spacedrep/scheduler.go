package spacedrep

import (
	"math"
	"time"

	"github.com/skherchache-oss/memoraid-app-sub001/internal/capsule"
)

// Config configures a Scheduler. Zero values produce defaults.
type Config struct {
	IntervalsDays []int // nil or empty → DefaultIntervalsDays
}

// Scheduler derives review timing, retention estimates, and mastery scores
// from capsule records. It is pure: every method is a function of its inputs
// plus the explicit clock value, and no method mutates the capsule passed in.
// Persisting updated records is the caller's job.
type Scheduler struct {
	intervals []int
}

// NewScheduler creates a Scheduler from the given config.
func NewScheduler(cfg Config) Scheduler {
	intervals := cfg.IntervalsDays
	if len(intervals) == 0 {
		intervals = DefaultIntervalsDays
	}
	return Scheduler{intervals: intervals}
}

// TableLength returns the number of stages in the interval table.
func (s Scheduler) TableLength() int {
	return len(s.intervals)
}

// IntervalDays returns the interval table entry for the stage in days.
// Indices at or past the table length clamp to the longest interval.
func (s Scheduler) IntervalDays(stage int) int {
	if stage >= len(s.intervals) {
		stage = len(s.intervals) - 1
	}
	if stage < 0 {
		stage = 0
	}
	return s.intervals[stage]
}

// Interval returns the review interval for the stage as a duration.
func (s Scheduler) Interval(stage int) time.Duration {
	return time.Duration(s.IntervalDays(stage)) * 24 * time.Hour
}

// IsDue reports whether the capsule should be reviewed now.
// Every never-reviewed capsule starts due.
func (s Scheduler) IsDue(c capsule.Capsule, now time.Time) bool {
	if !c.Reviewed() {
		return true
	}
	return !now.Before(c.LastReviewed.Add(s.Interval(c.ReviewStage)))
}

// Retention estimates the percentage of the capsule's content the learner
// still recalls, decaying exponentially since the last review. Returns 0
// for never-reviewed capsules (unknown retention is treated as worst case).
func (s Scheduler) Retention(c capsule.Capsule, now time.Time) int {
	if !c.Reviewed() {
		return 0
	}
	interval := s.Interval(c.ReviewStage)
	if interval <= 0 {
		return 0
	}
	ratio := float64(now.Sub(*c.LastReviewed)) / float64(interval)
	return clampPct(int(math.Round(100 * math.Exp(-decayRate*ratio))))
}

// Mastery returns a composite 0-100 score blending schedule progress
// (60-point cap) with the average of the last three review scores
// (40-point cap). A capsule whose stage was advanced without any logged
// reviews gets a flat 20-point performance floor.
func (s Scheduler) Mastery(c capsule.Capsule) int {
	tableLen := len(s.intervals)
	stage := c.ReviewStage
	if stage > tableLen {
		stage = tableLen
	}
	score := float64(stage) / float64(tableLen) * masteryStageCap

	if scores := c.RecentScores(masteryWindow); len(scores) > 0 {
		sum := 0
		for _, v := range scores {
			sum += v
		}
		avg := float64(sum) / float64(len(scores))
		score += avg / 100 * masteryPerfCap
	} else if c.ReviewStage > 0 {
		score += masteryPerfFloor
	}

	return clampPct(int(math.Round(score)))
}

func clampPct(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
