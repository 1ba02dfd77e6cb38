package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/skherchache-oss/memoraid-app-sub001/internal/app"
)

var joinGroupCmd = &cobra.Command{
	Use:   "join-group",
	Short: "Record joining a study group",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			res, err := a.JoinGroup(ctx, time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Joined a study group.")
			printResult(out, a, res)
			return nil
		})
	},
}

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Record a completed challenge",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			res, err := a.CompleteChallenge(ctx, time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Challenge completed.")
			printResult(out, a, res)
			return nil
		})
	},
}
