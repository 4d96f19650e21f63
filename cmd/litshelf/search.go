package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/csheth/litshelf/internal/library"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the corpus by title, author, or exact paper ID",
	Long: `Search the corpus. A purely numeric query matches by exact paper ID
only; anything else is a case-insensitive substring match against titles
and author lists.

Examples:
  litshelf search attention
  litshelf search "vaswani"
  litshelf search 7`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	results := library.Search(query, app.library.Papers())
	app.logger.Debug().Str("query", query).Int("hits", len(results)).Msg("search complete")

	if jsonOutput {
		return outputJSON(results)
	}
	if len(results) == 0 {
		fmt.Println("No papers found.")
		return nil
	}
	for _, p := range results {
		printPaperLine(p)
	}
	return nil
}
