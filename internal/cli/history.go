package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent searches",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}
		defer d.close()
		if d.history == nil {
			return fmt.Errorf("search history store is not available")
		}
		ctx, cancel := cmdCtx()
		defer cancel()

		recent, err := d.history.RecentSearches(ctx, historyLimit)
		if err != nil {
			return err
		}
		if len(recent) == 0 {
			fmt.Println("No searches recorded yet.")
			return nil
		}
		for _, rec := range recent {
			fmt.Printf("%s  %-30q %d result(s)\n", rec.RunAt.Format("2006-01-02 15:04"), rec.Query, rec.ResultCount)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum entries to show")
	rootCmd.AddCommand(historyCmd)
}
