package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/skherchache-oss/memoraid-app-sub001/internal/app"
	"github.com/skherchache-oss/memoraid-app-sub001/internal/spacedrep"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule <capsule-id>",
	Short: "Show a capsule's review timeline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			entries, err := a.Schedule(ctx, args[0], time.Now())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "STAGE\tINTERVAL\tREVIEW AT\tSTATUS")
			for _, e := range entries {
				when := "-"
				if !e.ReviewAt.IsZero() {
					when = e.ReviewAt.Format("2006-01-02")
				}
				fmt.Fprintf(w, "%d\t%dd\t%s\t%s\n", e.Stage, e.IntervalDays, when, statusLabel(e.Status))
			}
			return w.Flush()
		})
	},
}

func statusLabel(s spacedrep.Status) string {
	switch s {
	case spacedrep.StatusCompleted:
		return "completed"
	case spacedrep.StatusDue:
		return "due now"
	default:
		return "upcoming"
	}
}
