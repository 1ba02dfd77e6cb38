package progression

// perfectQuizBonus is the extra XP for a quiz answered with a score of
// exactly 100.
const perfectQuizBonus = 20

// defaultXPPerAction is the flat per-action XP credit.
var defaultXPPerAction = map[Action]int{
	ActionCreate:    100,
	ActionQuiz:      50,
	ActionFlashcard: 20,
	ActionJoinGroup: 50,
	ActionChallenge: 150,
}

// DefaultXPPerAction returns a copy of the default per-action XP table,
// safe for callers to overlay with overrides.
func DefaultXPPerAction() map[Action]int {
	out := make(map[Action]int, len(defaultXPPerAction))
	for a, xp := range defaultXPPerAction {
		out[a] = xp
	}
	return out
}

// DefaultLevelMultiplier is the XP width of one level.
const DefaultLevelMultiplier = 200

// Config configures the progression engine. Zero values produce defaults.
type Config struct {
	XPPerAction         map[Action]int // nil → defaultXPPerAction
	XPToLevelMultiplier int            // zero → DefaultLevelMultiplier
}

func (c Config) withDefaults() Config {
	if c.XPPerAction == nil {
		c.XPPerAction = defaultXPPerAction
	}
	if c.XPToLevelMultiplier <= 0 {
		c.XPToLevelMultiplier = DefaultLevelMultiplier
	}
	return c
}

// xpFor returns the XP credit for a single study event.
func (c Config) xpFor(ev Event) int {
	award := c.XPPerAction[ev.Action]
	if ev.Action == ActionQuiz && ev.Score == 100 {
		award += perfectQuizBonus
	}
	return award
}

// Level derives the level for an XP total: a fixed-width staircase starting
// at level 1.
func (c Config) Level(xp int) int {
	c = c.withDefaults()
	if xp < 0 {
		xp = 0
	}
	return xp/c.XPToLevelMultiplier + 1
}

// LevelProgress returns the percent progress from the current level floor
// toward the next level, clamped to [0,100].
func (c Config) LevelProgress(xp int) float64 {
	c = c.withDefaults()
	if xp < 0 {
		xp = 0
	}
	floor := (c.Level(xp) - 1) * c.XPToLevelMultiplier
	pct := float64(xp-floor) / float64(c.XPToLevelMultiplier) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
