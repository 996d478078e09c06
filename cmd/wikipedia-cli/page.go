package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var pageCmd = &cobra.Command{
	Use:   "page <title>",
	Short: "Displays detailed information about a Wikipedia page.",
	Long: `The page command looks up one article by title and prints its page ID,
lead summary, and table of contents.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]

		client := newClient()
		defer client.Close()

		id, ok, err := client.PageID(cmd.Context(), title)
		if err != nil {
			return fmt.Errorf("could not look up page '%s': %w", title, err)
		}
		if !ok {
			return fmt.Errorf("no page named '%s' on %s.wikipedia.org", title, client.Language())
		}

		fmt.Printf("--- Page Details: %s ---\n", title)
		fmt.Printf("Page ID: %d\n", id)
		fmt.Printf("Language: %s\n", client.Language())

		summary, err := client.PageSummary(cmd.Context(), title)
		if err != nil {
			return fmt.Errorf("could not fetch summary for '%s': %w", title, err)
		}
		fmt.Println("\n--- Summary ---")
		fmt.Println(strings.TrimSpace(summary))

		sections, err := client.PageSections(cmd.Context(), title)
		if err != nil {
			return fmt.Errorf("could not fetch sections for '%s': %w", title, err)
		}
		fmt.Println("\n--- Sections ---")
		if len(sections) == 0 {
			fmt.Println("No sections found.")
			return nil
		}
		for _, section := range sections {
			// Top-level headings are level 2 in wikitext
			indent := ""
			if section.Level > 2 {
				indent = strings.Repeat("  ", section.Level-2)
			}
			fmt.Printf("%s- %s\n", indent, section.Title)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(pageCmd)
}
