package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/skherchache-oss/memoraid-app-sub001/internal/app"
	"github.com/skherchache-oss/memoraid-app-sub001/internal/reminder"
)

var (
	remindWatch    bool
	remindInterval time.Duration
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Check for due capsules and print a reminder",
	Long:  "Runs a single due-check by default. With --watch it keeps checking on an interval until interrupted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			notifier := reminder.ConsoleNotifier{Out: cmd.OutOrStdout()}
			r := reminder.New(a, notifier, remindInterval)

			if !remindWatch {
				return r.RunOnce(ctx, time.Now())
			}

			if err := r.Start(); err != nil {
				return err
			}
			defer r.Stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Watching for due capsules every %s. Ctrl-C to stop.\n", remindInterval)
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			select {
			case <-sig:
			case <-ctx.Done():
			}
			return nil
		})
	},
}

func init() {
	remindCmd.Flags().BoolVar(&remindWatch, "watch", false, "Keep checking until interrupted")
	remindCmd.Flags().DurationVar(&remindInterval, "interval", reminder.DefaultInterval, "Check interval in watch mode")
}
