package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"foodfinder/internal/app"
	"foodfinder/internal/domain"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search establishments by name or cuisine",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		d, err := newDeps()
		if err != nil {
			return err
		}
		defer d.close()
		ctx, cancel := cmdCtx()
		defer cancel()

		ctl := app.NewSearchController(d.client, func() string { return query })
		if err := ctl.OnInputChanged(ctx); err != nil {
			return err
		}
		pois := ctl.Results()
		if d.history != nil {
			_ = d.history.RecordSearch(ctx, query, len(pois))
		}
		printPois(pois, query)
		return nil
	},
}

var nearbyCmd = &cobra.Command{
	Use:   "nearby [lon] [lat]",
	Short: "List establishments around a coordinate",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lon, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("lon must be a number: %w", err)
		}
		lat, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("lat must be a number: %w", err)
		}

		d, err := newDeps()
		if err != nil {
			return err
		}
		defer d.close()
		ctx, cancel := cmdCtx()
		defer cancel()

		pois, err := d.client.SearchByCoordinate(ctx, lon, lat)
		if err != nil {
			return err
		}
		printPois(pois, fmt.Sprintf("%s,%s", args[0], args[1]))
		return nil
	},
}

func printPois(pois []domain.LitePoi, label string) {
	if len(pois) == 0 {
		fmt.Printf("No establishments found for: %s\n", label)
		return
	}
	fmt.Printf("Found %d establishment(s):\n\n", len(pois))
	for i, p := range pois {
		fmt.Printf("%d. %s\n", i+1, p.Name)
		fmt.Printf("   FSA ID: %s\n", p.FsaID)
		fmt.Printf("   Type: %s\n", p.Amenity)
		fmt.Printf("   Location: %.5f, %.5f\n", p.Lat, p.Lon)
		fmt.Println()
	}
	fmt.Println("For details:")
	fmt.Println("  foodctl place <fsa-id>")
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(nearbyCmd)
}
