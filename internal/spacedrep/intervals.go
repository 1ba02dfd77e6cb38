package spacedrep

// DefaultIntervalsDays is the expanding review schedule in days.
// Stage 0 = first review after creation. Stages past the end of the table
// reuse the last value: spacing growth is capped, not unbounded.
var DefaultIntervalsDays = []int{1, 3, 7, 14, 30, 60, 90, 120}

// decayRate tunes the forgetting-curve approximation. At this rate the
// estimated retention is ~86% exactly at due time (elapsed == interval).
const decayRate = 0.15

// overdueFactor: a due capsule counts as overdue once the time since its
// last review exceeds this multiple of its nominal interval.
const overdueFactor = 1.5

// Mastery blends schedule progress (up to masteryStageCap points) with
// recent review performance (up to masteryPerfCap points).
const (
	masteryStageCap  = 60.0
	masteryPerfCap   = 40.0
	masteryPerfFloor = 20 // stage advanced manually, no scores to average
	masteryWindow    = 3  // history entries feeding the performance component
)
