package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [id]",
	Short: "List the corpus, or show one paper in full",
	Long: `Without arguments, lists every paper in the corpus in source order.
With a paper ID, prints the full record including journal details,
abstract, citations, and any bookmark metadata.

Examples:
  litshelf list
  litshelf list 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the listing as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		if jsonOutput {
			return outputJSON(app.library.Papers())
		}
		if app.library.Len() == 0 {
			fmt.Println("No papers in corpus.")
			return nil
		}
		for _, p := range app.library.Papers() {
			printPaperLine(p)
		}
		return nil
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid paper ID %q", args[0])
	}
	paper, ok := app.library.ByID(id)
	if !ok {
		return exitNotFound(id)
	}
	if jsonOutput {
		return outputJSON(paper)
	}

	printPaperDetail(paper)

	cites := app.library.ResolveCitations(paper)
	if len(cites.Cites) > 0 || len(cites.CitedBy) > 0 {
		fmt.Println()
		for _, ref := range cites.Cites {
			fmt.Printf("cites     #%d %s\n", ref.ID, ref.Title)
		}
		for _, ref := range cites.CitedBy {
			fmt.Printf("cited by  #%d %s\n", ref.ID, ref.Title)
		}
	}

	if app.bookmarks.IsBookmarked(id) {
		md := app.metadata.Get(id)
		fmt.Println()
		fmt.Println("Bookmarked.")
		if len(md.Tags) > 0 {
			printField("Tags", joinTags(md))
		}
		if md.Comments != "" {
			printField("Comments", md.Comments)
		}
	}
	return nil
}
