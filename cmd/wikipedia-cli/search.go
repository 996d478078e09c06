package main

import (
	"fmt"

	"github.com/olgasafonova/wikipedia-mcp-server/wikipedia"
	"github.com/spf13/cobra"
)

var searchLimit uint

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Searches Wikipedia for matching article titles.",
	Long: `The search command runs a full-text search against Wikipedia and prints
the matching article titles, most relevant first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]

		client := newClient(wikipedia.WithSearchResults(searchLimit))
		defer client.Close()

		titles, err := client.Search(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("could not search for '%s': %w", query, err)
		}

		fmt.Printf("--- Results for '%s' ---\n", query)
		if len(titles) == 0 {
			fmt.Println("No matching articles found.")
			return nil
		}

		for _, title := range titles {
			fmt.Printf("- %s\n", title)
		}

		return nil
	},
}

func init() {
	searchCmd.Flags().UintVar(&searchLimit, "limit", wikipedia.DefaultSearchResults, "maximum number of titles to return")
	rootCmd.AddCommand(searchCmd)
}
