package progression

import "testing"

func TestLevel_Staircase(t *testing.T) {
	cfg := Config{}
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{199, 1},
		{200, 2},
		{399, 2},
		{400, 3},
		{1000, 6},
	}
	for _, tt := range tests {
		if got := cfg.Level(tt.xp); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevel_CustomMultiplier(t *testing.T) {
	cfg := Config{XPToLevelMultiplier: 100}
	if got := cfg.Level(250); got != 3 {
		t.Errorf("Level(250) with multiplier 100 = %d, want 3", got)
	}
}

func TestLevelProgress(t *testing.T) {
	cfg := Config{}
	tests := []struct {
		xp   int
		want float64
	}{
		{0, 0},
		{100, 50},
		{199, 99.5},
		{200, 0},
		{250, 25},
	}
	for _, tt := range tests {
		got := cfg.LevelProgress(tt.xp)
		if got < tt.want-0.001 || got > tt.want+0.001 {
			t.Errorf("LevelProgress(%d) = %f, want %f", tt.xp, got, tt.want)
		}
	}
}

func TestLevelProgress_NegativeXPClamped(t *testing.T) {
	cfg := Config{}
	if got := cfg.LevelProgress(-50); got != 0 {
		t.Errorf("LevelProgress(-50) = %f, want 0", got)
	}
}

func TestXPFor_ActionTable(t *testing.T) {
	cfg := Config{}.withDefaults()
	tests := []struct {
		ev   Event
		want int
	}{
		{Event{Action: ActionCreate}, 100},
		{Event{Action: ActionQuiz, Score: 80}, 50},
		{Event{Action: ActionQuiz, Score: 100}, 70}, // perfect quiz bonus
		{Event{Action: ActionFlashcard}, 20},
		{Event{Action: ActionJoinGroup}, 50},
		{Event{Action: ActionChallenge}, 150},
		{Event{Action: Action("unknown")}, 0},
	}
	for _, tt := range tests {
		if got := cfg.xpFor(tt.ev); got != tt.want {
			t.Errorf("xpFor(%q, %d) = %d, want %d", tt.ev.Action, tt.ev.Score, got, tt.want)
		}
	}
}
