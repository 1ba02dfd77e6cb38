package progression

// BadgeID identifies one of the unlockable badges.
type BadgeID string

const (
	BadgeFirstCapsule    BadgeID = "first_capsule"
	BadgeCreator10       BadgeID = "creator_10"
	BadgeQuizMaster      BadgeID = "quiz_master"
	BadgeStreak3         BadgeID = "streak_3"
	BadgeStreak7         BadgeID = "streak_7"
	BadgeSocialButterfly BadgeID = "social_butterfly"
)

// DisplayName returns a human-readable label for the badge.
func (id BadgeID) DisplayName() string {
	switch id {
	case BadgeFirstCapsule:
		return "First Capsule"
	case BadgeCreator10:
		return "Creator x10"
	case BadgeQuizMaster:
		return "Quiz Master"
	case BadgeStreak3:
		return "3-Day Streak"
	case BadgeStreak7:
		return "7-Day Streak"
	case BadgeSocialButterfly:
		return "Social Butterfly"
	default:
		return string(id)
	}
}

// badgeDef ties a badge to its unlock condition. The table is static
// configuration data; predicates run after the XP and streak updates, so
// they see the post-action state.
type badgeDef struct {
	ID       BadgeID
	Unlocked func(ev Event, s State) bool
}

var badgeDefs = []badgeDef{
	{BadgeFirstCapsule, func(ev Event, _ State) bool {
		return ev.Action == ActionCreate && ev.CapsuleCount >= 1
	}},
	{BadgeCreator10, func(ev Event, _ State) bool {
		return ev.Action == ActionCreate && ev.CapsuleCount >= 10
	}},
	{BadgeQuizMaster, func(ev Event, _ State) bool {
		return ev.Action == ActionQuiz && ev.Score == 100
	}},
	{BadgeStreak3, func(_ Event, s State) bool {
		return s.CurrentStreak >= 3
	}},
	{BadgeStreak7, func(_ Event, s State) bool {
		return s.CurrentStreak >= 7
	}},
	{BadgeSocialButterfly, func(ev Event, _ State) bool {
		return ev.Action == ActionJoinGroup
	}},
}
