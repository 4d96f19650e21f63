package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/csheth/litshelf/internal/bookmarks"
)

var (
	tagColors []string
	clearTags bool
)

var tagCmd = &cobra.Command{
	Use:   "tag <id> [tag ...]",
	Short: "Show or replace the tags on a bookmarked paper",
	Long: `Without tag arguments, shows the paper's current tags. With arguments,
replaces the tag list wholesale; colors carry over for tags that survive
the replacement and can be set with --color.

Examples:
  litshelf tag 3
  litshelf tag 3 transformers seminal
  litshelf tag 3 transformers seminal --color seminal=Red`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTag,
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List every tag used across all bookmarks",
	Args:  cobra.NoArgs,
	RunE:  runTags,
}

func init() {
	tagCmd.Flags().StringArrayVar(&tagColors, "color", nil, "Assign a palette color to a tag, as tag=ColorName (repeatable)")
	tagCmd.Flags().BoolVar(&clearTags, "clear", false, "Remove all tags from the paper")
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(tagsCmd)
}

func runTag(cmd *cobra.Command, args []string) error {
	app, id, _, err := resolvePaperArg(args[0])
	if err != nil {
		return err
	}
	if !app.bookmarks.IsBookmarked(id) {
		return fmt.Errorf("#%d is not bookmarked; bookmark it before tagging", id)
	}
	md := app.metadata.Get(id)

	if clearTags {
		md.Tags = nil
		md.TagColors = map[string]string{}
	}

	if len(args) == 1 && len(tagColors) == 0 && !clearTags {
		if len(md.Tags) == 0 {
			fmt.Printf("#%d has no tags\n", id)
			return nil
		}
		fmt.Println(joinTags(md))
		return nil
	}

	if len(args) > 1 {
		md.Tags = args[1:]
		// Drop color mappings for tags that no longer exist.
		for tag := range md.TagColors {
			if !containsTag(md.Tags, tag) {
				delete(md.TagColors, tag)
			}
		}
	}

	for _, assignment := range tagColors {
		tag, colorName, ok := strings.Cut(assignment, "=")
		if !ok {
			return fmt.Errorf("invalid --color value %q, expected tag=ColorName", assignment)
		}
		if !containsTag(md.Tags, tag) {
			return fmt.Errorf("cannot color unknown tag %q", tag)
		}
		entry, ok := bookmarks.ColorByName(colorName)
		if !ok {
			return fmt.Errorf("unknown color %q, choose from %s", colorName, paletteNames())
		}
		md.TagColors[tag] = entry.Hex
	}

	if err := app.metadata.Set(id, md); err != nil {
		return fmt.Errorf("saving tags: %w", err)
	}
	if len(md.Tags) == 0 {
		fmt.Printf("Cleared tags on #%d\n", id)
	} else {
		fmt.Printf("Tags on #%d: %s\n", id, joinTags(md))
	}
	return nil
}

func runTags(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	all := app.metadata.AllTags()
	if len(all) == 0 {
		fmt.Println("No tags yet.")
		return nil
	}
	for _, tag := range all {
		fmt.Println(tag)
	}
	return nil
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func paletteNames() string {
	names := make([]string, len(bookmarks.Palette))
	for i, entry := range bookmarks.Palette {
		names[i] = entry.Name
	}
	return strings.Join(names, ", ")
}
