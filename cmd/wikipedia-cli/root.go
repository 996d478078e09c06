package main

import (
	"fmt"
	"os"

	"github.com/olgasafonova/wikipedia-mcp-server/wikipedia"
	"github.com/spf13/cobra"
)

var (
	language string
	baseURL  string
)

var rootCmd = &cobra.Command{
	Use:   "wikipedia-cli",
	Short: "A CLI tool for querying Wikipedia from the command line.",
	Long: `wikipedia-cli is a command-line interface to the Wikipedia API. It can
search for articles, look up pages near a coordinate, and print page
details, in any Wikipedia language edition.`,
}

// newClient builds a client for the language selected on the command line.
// Callers own the client and must Close it.
func newClient(opts ...wikipedia.Option) *wikipedia.Client {
	opts = append([]wikipedia.Option{wikipedia.WithLanguage(language)}, opts...)
	if baseURL != "" {
		opts = append(opts, wikipedia.WithBaseURL(baseURL))
	}
	return wikipedia.New(opts...)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Disable the default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&language, "language", wikipedia.DefaultLanguage, "Wikipedia language edition to query")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Override the API endpoint, {language} is substituted (for mirrors and test servers)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
