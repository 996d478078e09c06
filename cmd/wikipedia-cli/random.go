package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var randomCount uint

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Picks random Wikipedia articles.",
	Long: `The random command asks Wikipedia for random main-namespace articles and
prints their titles. Each run returns a fresh selection.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		defer client.Close()

		titles, err := client.RandomCount(cmd.Context(), randomCount)
		if err != nil {
			return fmt.Errorf("could not fetch random articles: %w", err)
		}

		for _, title := range titles {
			fmt.Printf("- %s\n", title)
		}

		return nil
	},
}

func init() {
	randomCmd.Flags().UintVar(&randomCount, "count", 1, "number of random articles to fetch")
	rootCmd.AddCommand(randomCmd)
}
