package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/skherchache-oss/memoraid-app-sub001/internal/app"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a new knowledge capsule",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return fmt.Errorf("title must not be empty")
			}

			c, res, err := a.CreateCapsule(ctx, title, time.Now())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created capsule %s: %s\n", c.ID, c.Title)
			printResult(out, a, res)
			return nil
		})
	},
}
