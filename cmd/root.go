package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/skherchache-oss/memoraid-app-sub001/internal/app"
	"github.com/skherchache-oss/memoraid-app-sub001/internal/config"
	"github.com/skherchache-oss/memoraid-app-sub001/internal/progression"
	"github.com/skherchache-oss/memoraid-app-sub001/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "memoraid",
	Short: "Spaced-repetition study tracker",
	Long:  "Memoraid tracks knowledge capsules on a spaced-repetition schedule and rewards study activity with XP, levels, streaks, and badges.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MEMORAID_DB env var)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(advanceCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(joinGroupCmd)
	rootCmd.AddCommand(challengeCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MEMORAID_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// withApp opens the store, builds the application, runs fn, and closes up.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a, err := app.New(st, cfg)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	return fn(cmd.Context(), a)
}

// printResult reports XP, level-ups, and freshly unlocked badges.
func printResult(w io.Writer, a *app.App, res progression.Result) {
	cfg := a.Engine().Config()
	fmt.Fprintf(w, "XP: %d (level %d, %.0f%% to next)\n",
		res.State.XP, cfg.Level(res.State.XP), cfg.LevelProgress(res.State.XP))
	if res.LevelUp {
		fmt.Fprintf(w, "Level up! You are now level %d.\n", cfg.Level(res.State.XP))
	}
	for _, b := range res.NewBadges {
		fmt.Fprintf(w, "Badge unlocked: %s\n", b.ID.DisplayName())
	}
}
