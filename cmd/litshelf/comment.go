package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var clearComment bool

var commentCmd = &cobra.Command{
	Use:   "comment <id> [text ...]",
	Short: "Show or set the free-text comment on a bookmarked paper",
	Long: `Without text, shows the paper's current comment. With text, replaces
it. Use --clear to delete the comment while keeping tags intact.

Examples:
  litshelf comment 3
  litshelf comment 3 "re-read before the reading group"
  litshelf comment 3 --clear`,
	Args: cobra.MinimumNArgs(1),
	RunE: runComment,
}

func init() {
	commentCmd.Flags().BoolVar(&clearComment, "clear", false, "Remove the comment")
	rootCmd.AddCommand(commentCmd)
}

func runComment(cmd *cobra.Command, args []string) error {
	app, id, _, err := resolvePaperArg(args[0])
	if err != nil {
		return err
	}
	if !app.bookmarks.IsBookmarked(id) {
		return fmt.Errorf("#%d is not bookmarked; bookmark it before commenting", id)
	}
	md := app.metadata.Get(id)

	if len(args) == 1 && !clearComment {
		if md.Comments == "" {
			fmt.Printf("#%d has no comment\n", id)
			return nil
		}
		fmt.Println(md.Comments)
		return nil
	}

	if clearComment {
		md.Comments = ""
	} else {
		md.Comments = strings.Join(args[1:], " ")
	}
	if err := app.metadata.Set(id, md); err != nil {
		return fmt.Errorf("saving comment: %w", err)
	}
	if md.Comments == "" {
		fmt.Printf("Cleared comment on #%d\n", id)
	} else {
		fmt.Printf("Comment on #%d: %s\n", id, md.Comments)
	}
	return nil
}
