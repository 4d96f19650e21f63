package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/csheth/litshelf/internal/library"
)

var (
	addAuthors  string
	addYear     int
	addJournal  string
	addDOI      string
	addURL      string
	addAbstract string
	noBookmark  bool
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a paper to the corpus",
	Long: `Add a paper to the corpus file. The new paper gets the next free ID
(one past the current maximum), today's date as its added date, and is
bookmarked immediately unless --no-bookmark is given.

Examples:
  litshelf add "Attention Is All You Need" --authors "Vaswani, A., Shazeer, N." --year 2017
  litshelf add "Some Preprint" --url https://arxiv.org/abs/2401.00001 --no-bookmark`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addAuthors, "authors", "", "Comma-separated author names")
	addCmd.Flags().IntVar(&addYear, "year", 0, "Publication year")
	addCmd.Flags().StringVar(&addJournal, "journal", "", "Journal or venue name")
	addCmd.Flags().StringVar(&addDOI, "doi", "", "DOI")
	addCmd.Flags().StringVar(&addURL, "url", "", "Paper URL")
	addCmd.Flags().StringVar(&addAbstract, "abstract", "", "Abstract text")
	addCmd.Flags().BoolVar(&noBookmark, "no-bookmark", false, "Skip bookmarking the new paper")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	title := strings.TrimSpace(args[0])
	if title == "" {
		return fmt.Errorf("title must not be empty")
	}

	paper := library.Paper{
		ID:        app.library.MaxID() + 1,
		Title:     title,
		Year:      addYear,
		Journal:   addJournal,
		DOI:       addDOI,
		URL:       addURL,
		Abstract:  addAbstract,
		AddedDate: time.Now().Format("2006-01-02"),
	}
	for _, name := range strings.Split(addAuthors, ",") {
		if name = strings.TrimSpace(name); name != "" {
			paper.Authors = append(paper.Authors, name)
		}
	}

	if err := library.Append(app.cfg.LibraryFile, paper); err != nil {
		return fmt.Errorf("saving corpus: %w", err)
	}
	fmt.Printf("Added #%d %s\n", paper.ID, paper.Title)

	if !noBookmark {
		if _, err := app.bookmarks.Add(paper); err != nil {
			return fmt.Errorf("saving bookmark: %w", err)
		}
		fmt.Printf("Bookmarked #%d\n", paper.ID)
	}
	return nil
}
