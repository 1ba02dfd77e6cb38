package progression

import "time"

// Event is one completed study action plus the ambient counters the badge
// predicates need. The caller supplies CapsuleCount because the engine has
// no storage access of its own.
type Event struct {
	Action       Action
	Score        int // quiz score 0-100; meaningful for ActionQuiz only
	CapsuleCount int // learner's total capsule count after the action
}

// Result reports the outcome of processing one study action. The caller is
// responsible for persisting State and surfacing level-up and badge
// notifications; the engine performs no I/O.
type Result struct {
	State     State
	NewBadges []Badge // badges unlocked by this call, empty if none
	LevelUp   bool
}

// Engine applies study actions to gamification state. It is pure and
// stateless beyond its configuration; every call gets its own copy of the
// state and returns a new one.
type Engine struct {
	cfg Config
}

// NewEngine creates an Engine, filling zero-value config fields with
// defaults.
func NewEngine(cfg Config) Engine {
	return Engine{cfg: cfg.withDefaults()}
}

// Config returns the engine's effective configuration.
func (e Engine) Config() Config {
	return e.cfg
}

// Process applies one study action: XP credit, streak update, then badge
// evaluation, in that order. The input state is never mutated.
func (e Engine) Process(s State, ev Event, now time.Time) Result {
	out := s.clone()

	levelBefore := e.cfg.Level(out.XP)
	out.XP += e.cfg.xpFor(ev)
	out.CurrentStreak, out.LastStudyDate = nextStreak(out.CurrentStreak, out.LastStudyDate, now)

	var newBadges []Badge
	for _, def := range badgeDefs {
		if out.HasBadge(def.ID) {
			continue
		}
		if def.Unlocked(ev, out) {
			b := Badge{ID: def.ID, UnlockedAt: now}
			out.Badges = append(out.Badges, b)
			newBadges = append(newBadges, b)
		}
	}

	return Result{
		State:     out,
		NewBadges: newBadges,
		LevelUp:   e.cfg.Level(out.XP) > levelBefore,
	}
}
