package progression

// Action identifies a study activity that feeds the progression engine.
// The set is closed: Process rejects nothing, but unknown actions award
// no XP and unlock no action-gated badges.
type Action string

const (
	ActionCreate    Action = "create"
	ActionQuiz      Action = "quiz"
	ActionFlashcard Action = "flashcard"
	ActionJoinGroup Action = "join_group"
	ActionChallenge Action = "challenge"
)

// AllActions returns every recognized action.
func AllActions() []Action {
	return []Action{ActionCreate, ActionQuiz, ActionFlashcard, ActionJoinGroup, ActionChallenge}
}

// Valid reports whether the action belongs to the closed set.
func (a Action) Valid() bool {
	switch a {
	case ActionCreate, ActionQuiz, ActionFlashcard, ActionJoinGroup, ActionChallenge:
		return true
	default:
		return false
	}
}

// DisplayName returns a human-readable label for the action.
func (a Action) DisplayName() string {
	switch a {
	case ActionCreate:
		return "Capsule created"
	case ActionQuiz:
		return "Quiz completed"
	case ActionFlashcard:
		return "Flashcard session"
	case ActionJoinGroup:
		return "Joined a group"
	case ActionChallenge:
		return "Challenge completed"
	default:
		return string(a)
	}
}
