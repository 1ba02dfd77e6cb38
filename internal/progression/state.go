package progression

import "time"

// Badge is a one-time unlockable achievement marker. Once unlocked it is
// never removed or re-timestamped.
type Badge struct {
	ID         BadgeID   `json:"id"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// State is a learner's gamification state. Like capsules, states are value
// types: the engine returns an updated copy and never mutates its input.
// Level is always derived from XP via Config.Level, never stored.
type State struct {
	XP            int     `json:"xp"`
	CurrentStreak int     `json:"current_streak"`
	LastStudyDate string  `json:"last_study_date"` // YYYY-MM-DD, empty before first activity
	Badges        []Badge `json:"badges"`
}

// clone returns a deep copy of the state.
func (s State) clone() State {
	out := s
	if s.Badges != nil {
		out.Badges = make([]Badge, len(s.Badges))
		copy(out.Badges, s.Badges)
	}
	return out
}

// HasBadge reports whether the badge is already unlocked.
func (s State) HasBadge(id BadgeID) bool {
	for _, b := range s.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}
