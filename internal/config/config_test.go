package config

import (
	"testing"

	"github.com/skherchache-oss/memoraid-app-sub001/internal/progression"
)

func TestFromEnv_Empty(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Scheduler.IntervalsDays != nil {
		t.Errorf("IntervalsDays = %v, want nil (engine defaults)", cfg.Scheduler.IntervalsDays)
	}
	if cfg.Engine.XPPerAction != nil || cfg.Engine.XPToLevelMultiplier != 0 {
		t.Errorf("Engine config = %+v, want zero value", cfg.Engine)
	}
}

func TestFromEnv_Intervals(t *testing.T) {
	t.Setenv(EnvIntervals, "1, 2,5,10")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	want := []int{1, 2, 5, 10}
	if len(cfg.Scheduler.IntervalsDays) != len(want) {
		t.Fatalf("IntervalsDays = %v, want %v", cfg.Scheduler.IntervalsDays, want)
	}
	for i, d := range want {
		if cfg.Scheduler.IntervalsDays[i] != d {
			t.Errorf("IntervalsDays = %v, want %v", cfg.Scheduler.IntervalsDays, want)
			break
		}
	}
}

func TestFromEnv_BadIntervals(t *testing.T) {
	for _, v := range []string{"1,x,3", "0", "-2", ","} {
		t.Run(v, func(t *testing.T) {
			t.Setenv(EnvIntervals, v)
			if _, err := FromEnv(); err == nil {
				t.Errorf("expected error for %q", v)
			}
		})
	}
}

func TestFromEnv_LevelMultiplier(t *testing.T) {
	t.Setenv(EnvLevelMult, "100")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Engine.XPToLevelMultiplier != 100 {
		t.Errorf("XPToLevelMultiplier = %d, want 100", cfg.Engine.XPToLevelMultiplier)
	}
}

func TestFromEnv_PartialXPOverrideKeepsDefaults(t *testing.T) {
	t.Setenv("MEMORAID_XP_CREATE", "75")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Engine.XPPerAction[progression.ActionCreate] != 75 {
		t.Errorf("create XP = %d, want 75", cfg.Engine.XPPerAction[progression.ActionCreate])
	}
	if cfg.Engine.XPPerAction[progression.ActionQuiz] != 50 {
		t.Errorf("quiz XP = %d, want default 50", cfg.Engine.XPPerAction[progression.ActionQuiz])
	}
}

func TestFromEnv_JoinGroupOverride(t *testing.T) {
	t.Setenv("MEMORAID_XP_JOIN_GROUP", "5")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Engine.XPPerAction[progression.ActionJoinGroup] != 5 {
		t.Errorf("join_group XP = %d, want 5", cfg.Engine.XPPerAction[progression.ActionJoinGroup])
	}
}
