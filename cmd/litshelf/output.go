package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/csheth/litshelf/internal/bookmarks"
	"github.com/csheth/litshelf/internal/library"
)

var jsonOutput bool

// outputJSON prints v as indented JSON on stdout.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printPaperLine writes the one-line listing form: "#id  title (year) - authors".
func printPaperLine(p library.Paper) {
	line := fmt.Sprintf("#%d  %s", p.ID, p.Title)
	if p.Year != 0 {
		line += fmt.Sprintf(" (%d)", p.Year)
	}
	if authors := p.Authors.Joined(", "); authors != "" {
		line += " - " + authors
	}
	fmt.Println(line)
}

// printPaperDetail writes the multi-line detail form used by the show-style
// commands.
func printPaperDetail(p library.Paper) {
	fmt.Printf("#%d %s\n", p.ID, p.Title)
	printField("Authors", p.Authors.Joined(", "))
	if p.Year != 0 {
		printField("Year", fmt.Sprintf("%d", p.Year))
	}
	printField("Journal", journalLine(p))
	printField("DOI", p.DOI)
	printField("URL", p.URL)
	if p.Abstract != "" {
		fmt.Printf("\n%s\n", p.Abstract)
	}
}

func printField(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%-9s %s\n", label+":", value)
}

func journalLine(p library.Paper) string {
	name := p.Journal
	if name == "" {
		name = p.Publication
	}
	parts := []string{}
	if p.Volume != "" {
		parts = append(parts, "Vol. "+p.Volume)
	}
	if p.Issue != "" {
		parts = append(parts, "Issue "+p.Issue)
	}
	if p.Pages != "" {
		parts = append(parts, "pp. "+p.Pages)
	}
	if len(parts) == 0 {
		return name
	}
	if name == "" {
		return strings.Join(parts, ", ")
	}
	return name + ", " + strings.Join(parts, ", ")
}

// joinTags renders a metadata tag list with colour names, e.g.
// "transformers (Blue), seminal (Red)".
func joinTags(md bookmarks.Metadata) string {
	parts := make([]string, 0, len(md.Tags))
	for _, tag := range md.Tags {
		parts = append(parts, fmt.Sprintf("%s (%s)", tag, bookmarks.TagColor(md, tag).Name))
	}
	return strings.Join(parts, ", ")
}

// exitNotFound reports a missing corpus ID and exits with ExitNotFound.
// Commands print and exit directly so cobra does not re-wrap the message.
func exitNotFound(id int) error {
	fmt.Fprintf(os.Stderr, "paper #%d not found in corpus\n", id)
	os.Exit(ExitNotFound)
	return nil
}
