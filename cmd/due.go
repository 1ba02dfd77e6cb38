package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/skherchache-oss/memoraid-app-sub001/internal/app"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List capsules due for review, weakest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			now := time.Now()
			due, err := a.Due(ctx, now)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(due) == 0 {
				fmt.Fprintln(out, "Nothing due. Come back later.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tSTAGE\tRETENTION")
			for _, c := range due {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d%%\n",
					c.ID, c.Title, c.ReviewStage, a.Scheduler().Retention(c, now))
			}
			return w.Flush()
		})
	},
}
