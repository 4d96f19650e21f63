package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List bookmarked papers with their tags and comments",
	Args:  cobra.NoArgs,
	RunE:  runBookmarks,
}

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark <id>",
	Short: "Bookmark a paper by its corpus ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmark,
}

var unbookmarkCmd = &cobra.Command{
	Use:   "unbookmark <id>",
	Short: "Remove a bookmark and its tags and comments",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnbookmark,
}

func init() {
	bookmarksCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit bookmarks as JSON")
	rootCmd.AddCommand(bookmarksCmd)
	rootCmd.AddCommand(bookmarkCmd)
	rootCmd.AddCommand(unbookmarkCmd)
}

func runBookmarks(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	saved := app.bookmarks.List()
	if jsonOutput {
		return outputJSON(saved)
	}
	if len(saved) == 0 {
		fmt.Println("No bookmarks yet.")
		return nil
	}
	for _, p := range saved {
		printPaperLine(p)
		md := app.metadata.Get(p.ID)
		if len(md.Tags) > 0 {
			fmt.Printf("      tags: %s\n", joinTags(md))
		}
		if md.Comments != "" {
			fmt.Printf("      note: %s\n", md.Comments)
		}
	}
	return nil
}

func runBookmark(cmd *cobra.Command, args []string) error {
	app, id, paper, err := resolvePaperArg(args[0])
	if err != nil {
		return err
	}

	added, err := app.bookmarks.Add(paper)
	if err != nil {
		return fmt.Errorf("saving bookmark: %w", err)
	}
	if added {
		fmt.Printf("Bookmarked #%d %s\n", id, paper.Title)
	} else {
		fmt.Printf("#%d is already bookmarked\n", id)
	}
	return nil
}

func runUnbookmark(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid paper ID %q", args[0])
	}

	if !app.bookmarks.IsBookmarked(id) {
		fmt.Printf("#%d is not bookmarked\n", id)
		return nil
	}
	if err := app.bookmarks.Remove(id); err != nil {
		return fmt.Errorf("removing bookmark: %w", err)
	}
	fmt.Printf("Removed bookmark #%d\n", id)
	return nil
}
