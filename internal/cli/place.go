package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var placeCmd = &cobra.Command{
	Use:   "place [fsa-id]",
	Short: "Show the full detail record for one establishment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}
		defer d.close()
		ctx, cancel := cmdCtx()
		defer cancel()

		p, err := d.queries.GetPlace(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n", p.Name, p.Amenity)
		fmt.Printf("  FSA ID: %s\n", p.FsaID)
		fmt.Printf("  Location: %.5f, %.5f\n", p.Lat, p.Lon)
		if p.Cuisine != nil {
			fmt.Printf("  Cuisine: %s\n", *p.Cuisine)
		}
		if p.StarRating != nil {
			fmt.Printf("  Rating: %.1f\n", *p.StarRating)
		}
		if p.OpeningHours != nil {
			fmt.Printf("  Hours: %s\n", *p.OpeningHours)
		}
		fmt.Printf("  Vegetarian: %s\n", triState(p.Vegetarian))
		fmt.Printf("  Vegan: %s\n", triState(p.Vegan))
		if p.Description != "" {
			fmt.Printf("  %s\n", p.Description)
		}
		return nil
	},
}

var reviewsCmd = &cobra.Command{
	Use:   "reviews [fsa-id]",
	Short: "List the reviews of an establishment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}
		defer d.close()
		ctx, cancel := cmdCtx()
		defer cancel()

		out, err := d.queries.ListReviews(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%d review(s) for %s:\n\n", out.Count, out.FsaID)
		for i, r := range out.Reviews {
			name := "anonymous"
			if r.DisplayName != nil {
				name = *r.DisplayName
			}
			fmt.Printf("%d. %d/5 — %s (%s, %s)\n", i+1, r.Rating, r.ReviewSubject, name, r.CreatedAt)
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats [fsa-id]",
	Short: "Show review statistics for an establishment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}
		defer d.close()
		ctx, cancel := cmdCtx()
		defer cancel()

		st, err := d.queries.GetReviewStats(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Review statistics for %s (%s):\n", st.FsaID, st.ReviewSubject)
		fmt.Printf("  Total: %d (completed %d, pending %d)\n", st.TotalReviews, st.CompletedReviews, st.PendingReviews)
		fmt.Printf("  Average: %.2f (min %d, max %d)\n", st.AverageRating, st.MinRating, st.MaxRating)

		ratings := make([]int, 0, len(st.RatingDistribution))
		for r := range st.RatingDistribution {
			ratings = append(ratings, r)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(ratings)))
		for _, r := range ratings {
			fmt.Printf("  %d stars: %d\n", r, st.RatingDistribution[r])
		}
		return nil
	},
}

func triState(b *bool) string {
	switch {
	case b == nil:
		return "unknown"
	case *b:
		return "yes"
	default:
		return "no"
	}
}

func init() {
	rootCmd.AddCommand(placeCmd)
	rootCmd.AddCommand(reviewsCmd)
	rootCmd.AddCommand(statsCmd)
}
