// Package main provides the litshelf CLI entry point.
package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/csheth/litshelf/internal/tui"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	verbose     bool
	dataDir     string
	noAltScreen bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "litshelf",
	Short: "Personal literature shelf with bookmarks, tags, and AI notes",
	Long: `litshelf manages a personal literature catalogue: browse and search a
local corpus, bookmark papers, attach tags and comments, follow citation
links, and generate cached AI summaries and recommendations.

All state lives in flat JSON files; run without arguments to open the
interactive browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBrowse,
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Override the data directory from config")
	rootCmd.Flags().BoolVar(&noAltScreen, "no-alt-screen", false, "Disable the alternate screen buffer")

	// Honor a local .env so OPENAI_API_KEY etc. need not live in the shell profile.
	_ = godotenv.Load()
}

func runBrowse(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{}
	if !noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Library:   app.library,
			Bookmarks: app.bookmarks,
			Metadata:  app.metadata,
			Cache:     app.cache,
			LLM:       app.llm,
			Logger:    app.logger,
		}),
		opts...,
	)
	_, err = program.Run()
	return err
}
