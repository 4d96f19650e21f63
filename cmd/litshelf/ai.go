package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// aiTimeout bounds a single LLM call from the CLI.
const aiTimeout = 2 * time.Minute

var summarizeCmd = &cobra.Command{
	Use:   "summarize <id>",
	Short: "Generate (or fetch the cached) AI summary for a paper",
	Long: `Generate a short AI summary of the paper's contribution. Results are
cached per paper ID; subsequent calls return the stored text without
contacting the provider. Failures are reported inline and never cached.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

var recommendCmd = &cobra.Command{
	Use:   "recommend <id>",
	Short: "Generate (or fetch the cached) AI reading recommendations",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecommend,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(recommendCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	app, id, paper, err := resolvePaperArg(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), aiTimeout)
	defer cancel()

	fmt.Printf("#%d %s\n\n", id, paper.Title)
	fmt.Println(app.cache.Summary(ctx, paper, app.llm))
	return nil
}

func runRecommend(cmd *cobra.Command, args []string) error {
	app, id, paper, err := resolvePaperArg(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), aiTimeout)
	defer cancel()

	fmt.Printf("#%d %s\n\n", id, paper.Title)
	fmt.Println(app.cache.Recommendations(ctx, paper, app.llm))
	return nil
}
