package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/skherchache-oss/memoraid-app-sub001/internal/progression"
	"github.com/skherchache-oss/memoraid-app-sub001/internal/spacedrep"
)

// Environment variables recognized by Load. Per-action XP overrides use the
// upper-cased action name, e.g. MEMORAID_XP_CREATE or MEMORAID_XP_JOIN_GROUP.
const (
	EnvIntervals = "MEMORAID_INTERVALS"
	EnvLevelMult = "MEMORAID_XP_LEVEL_MULT"
	envXPPrefix  = "MEMORAID_XP_"
)

// Config aggregates the engine settings the CLI can override through the
// environment. Zero-value fields mean "use the engine defaults".
type Config struct {
	Scheduler spacedrep.Config
	Engine    progression.Config
}

// Load reads configuration from the environment, after loading an optional
// .env file from the working directory. A missing .env is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads configuration from the current environment only.
func FromEnv() (Config, error) {
	var cfg Config

	if v := os.Getenv(EnvIntervals); v != "" {
		days, err := parseIntervals(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvIntervals, err)
		}
		cfg.Scheduler.IntervalsDays = days
	}

	if v := os.Getenv(EnvLevelMult); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("%s: expected positive integer, got %q", EnvLevelMult, v)
		}
		cfg.Engine.XPToLevelMultiplier = n
	}

	for _, action := range progression.AllActions() {
		key := envXPPrefix + strings.ToUpper(string(action))
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%s: expected non-negative integer, got %q", key, v)
		}
		if cfg.Engine.XPPerAction == nil {
			// Start from the defaults so a partial override doesn't
			// zero out the other actions.
			cfg.Engine.XPPerAction = progression.DefaultXPPerAction()
		}
		cfg.Engine.XPPerAction[action] = n
	}

	return cfg, nil
}

// parseIntervals parses a comma-separated list of day counts.
func parseIntervals(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("expected positive day count, got %q", p)
		}
		days = append(days, n)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("empty interval list")
	}
	return days, nil
}
