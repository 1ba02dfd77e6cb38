package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/skherchache-oss/memoraid-app-sub001/internal/app"
)

var advanceCmd = &cobra.Command{
	Use:   "advance <capsule-id>",
	Short: "Manually advance a capsule's review stage (no XP)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			c, err := a.AdvanceStage(ctx, args[0], time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Advanced %q to stage %d (next interval: %d days)\n",
				c.Title, c.ReviewStage, a.Scheduler().IntervalDays(c.ReviewStage))
			return nil
		})
	},
}
