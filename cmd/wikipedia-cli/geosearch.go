package main

import (
	"fmt"
	"strconv"

	"github.com/olgasafonova/wikipedia-mcp-server/wikipedia"
	"github.com/spf13/cobra"
)

var geosearchRadius int

var geosearchCmd = &cobra.Command{
	Use:   "geosearch <latitude> <longitude>",
	Short: "Finds Wikipedia articles near a coordinate.",
	Long: `The geosearch command looks up articles about places within a radius of
the given WGS 84 coordinate and prints their titles, nearest first.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		latitude, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid latitude '%s': %w", args[0], err)
		}
		longitude, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid longitude '%s': %w", args[1], err)
		}

		client := newClient()
		defer client.Close()

		titles, err := client.Geosearch(cmd.Context(), latitude, longitude, geosearchRadius)
		if err != nil {
			return fmt.Errorf("could not search near %g,%g: %w", latitude, longitude, err)
		}

		fmt.Printf("--- Articles within %dm of %g,%g ---\n", geosearchRadius, latitude, longitude)
		if len(titles) == 0 {
			fmt.Println("No articles found nearby.")
			return nil
		}

		for _, title := range titles {
			fmt.Printf("- %s\n", title)
		}

		return nil
	},
}

func init() {
	geosearchCmd.Flags().IntVar(&geosearchRadius, "radius", 1000,
		fmt.Sprintf("search radius in meters (%d-%d)", wikipedia.MinRadius, wikipedia.MaxRadius))
	rootCmd.AddCommand(geosearchCmd)
}
