package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skherchache-oss/memoraid-app-sub001/internal/app"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show XP, level, streak, and badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			state, err := a.Profile(ctx)
			if err != nil {
				return err
			}

			cfg := a.Engine().Config()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Level %d (%.0f%% to next)\n", cfg.Level(state.XP), cfg.LevelProgress(state.XP))
			fmt.Fprintf(out, "XP: %d\n", state.XP)
			fmt.Fprintf(out, "Streak: %d day(s)\n", state.CurrentStreak)
			if len(state.Badges) == 0 {
				fmt.Fprintln(out, "No badges yet.")
				return nil
			}
			fmt.Fprintln(out, "Badges:")
			for _, b := range state.Badges {
				fmt.Fprintf(out, "  %s (unlocked %s)\n", b.ID.DisplayName(), b.UnlockedAt.Format("2006-01-02"))
			}
			return nil
		})
	},
}
