package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	reviewRating  int
	reviewSubject string
)

var reviewCmd = &cobra.Command{
	Use:   "review [fsa-id]",
	Short: "Submit a review request for an establishment",
	Long:  `Submit a review request. The rating is sent as given; the backend enforces the 1-5 range.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}
		defer d.close()
		ctx, cancel := cmdCtx()
		defer cancel()

		out, err := d.queries.CreateReviewRequest(ctx, args[0], reviewRating, reviewSubject)
		if err != nil {
			return err
		}

		fmt.Printf("Review request created: %s\n", out.UUID)
		fmt.Printf("  %s: %d/5 — %s\n", out.FsaID, out.Rating, out.ReviewSubject)
		return nil
	},
}

func init() {
	reviewCmd.Flags().IntVar(&reviewRating, "rating", 0, "rating from 1 to 5")
	reviewCmd.Flags().StringVar(&reviewSubject, "subject", "", "what the review is about")
	_ = reviewCmd.MarkFlagRequired("rating")
	_ = reviewCmd.MarkFlagRequired("subject")
	rootCmd.AddCommand(reviewCmd)
}
