package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/skherchache-oss/memoraid-app-sub001/internal/app"
	"github.com/skherchache-oss/memoraid-app-sub001/internal/capsule"
)

var (
	reviewScore int
	reviewType  string
)

var reviewCmd = &cobra.Command{
	Use:   "review <capsule-id>",
	Short: "Log a completed review session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if reviewScore < 0 || reviewScore > 100 {
			return fmt.Errorf("score must be between 0 and 100, got %d", reviewScore)
		}
		rt := capsule.ReviewType(reviewType)
		if rt != capsule.ReviewQuiz && rt != capsule.ReviewFlashcard {
			return fmt.Errorf("type must be %q or %q, got %q", capsule.ReviewQuiz, capsule.ReviewFlashcard, reviewType)
		}

		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			now := time.Now()
			c, res, err := a.ReviewCapsule(ctx, args[0], reviewScore, rt, now)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Reviewed %q: stage %d, retention %d%%, mastery %d%%\n",
				c.Title, c.ReviewStage, a.Scheduler().Retention(c, now), a.Scheduler().Mastery(c))
			printResult(out, a, res)
			return nil
		})
	},
}

func init() {
	reviewCmd.Flags().IntVar(&reviewScore, "score", 0, "Review score, 0-100")
	reviewCmd.Flags().StringVar(&reviewType, "type", string(capsule.ReviewQuiz), "Review type: quiz or flashcard")
	reviewCmd.MarkFlagRequired("score")
}
