package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var citesCmd = &cobra.Command{
	Use:   "cites <id>",
	Short: "Show a paper's resolved citation links in both directions",
	Args:  cobra.ExactArgs(1),
	RunE:  runCites,
}

func init() {
	citesCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the citation links as JSON")
	rootCmd.AddCommand(citesCmd)
}

func runCites(cmd *cobra.Command, args []string) error {
	app, id, paper, err := resolvePaperArg(args[0])
	if err != nil {
		return err
	}

	links := app.library.ResolveCitations(paper)
	if jsonOutput {
		return outputJSON(links)
	}

	fmt.Printf("#%d %s\n\n", id, paper.Title)
	if len(links.Cites) == 0 {
		fmt.Println("No cites found")
	} else {
		fmt.Println("Cites:")
		for _, ref := range links.Cites {
			fmt.Printf("  #%d %s\n", ref.ID, ref.Title)
		}
	}
	fmt.Println()
	if len(links.CitedBy) == 0 {
		fmt.Println("No citations found")
	} else {
		fmt.Println("Cited by:")
		for _, ref := range links.CitedBy {
			fmt.Printf("  #%d %s\n", ref.ID, ref.Title)
		}
	}
	return nil
}
