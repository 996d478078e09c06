package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "Lists the available Wikipedia language editions.",
	Long: `The languages command prints every language edition the configured wiki
knows about, as code and native name pairs. Use a code with the global
--language flag to query that edition.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		defer client.Close()

		languages, err := client.Languages(cmd.Context())
		if err != nil {
			return fmt.Errorf("could not fetch language editions: %w", err)
		}

		fmt.Printf("--- %d language editions ---\n", len(languages))
		for _, lang := range languages {
			fmt.Printf("- %-12s: %s\n", lang.Code, lang.Name)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
