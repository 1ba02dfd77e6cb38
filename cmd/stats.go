package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/skherchache-oss/memoraid-app-sub001/internal/app"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show global learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			stats, err := a.Stats(ctx, time.Now())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Capsules: %d\n", stats.CapsuleCount)
			fmt.Fprintf(out, "Average mastery: %d%%\n", stats.Performance.AvgMastery)
			fmt.Fprintf(out, "Average retention: %d%%\n", stats.Performance.AvgRetention)
			fmt.Fprintf(out, "Due: %d (overdue: %d), not due: %d\n",
				stats.Performance.Due, stats.Performance.Overdue, stats.Performance.NotDue)
			fmt.Fprintf(out, "Level %d (%.0f%% to next), %d XP, streak %d\n",
				stats.Level, stats.LevelProgress, stats.State.XP, stats.State.CurrentStreak)
			if len(stats.ActionCounts) > 0 {
				fmt.Fprintln(out, "Activity:")
				for _, action := range actionOrder {
					if n := stats.ActionCounts[action]; n > 0 {
						fmt.Fprintf(out, "  %s: %d\n", action, n)
					}
				}
			}
			return nil
		})
	},
}

// actionOrder keeps activity output deterministic.
var actionOrder = []string{"create", "quiz", "flashcard", "join_group", "challenge"}
