package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/litshelf/internal/bookmarks"
	"github.com/csheth/litshelf/internal/library"
)

var (
	heroStyle          = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	selectedStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	bookmarkStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	fieldLabelStyle    = lipgloss.NewStyle().Bold(true)
)

func (m *model) View() string {
	switch m.stage {
	case stageSearch:
		return m.viewSearch()
	case stageDetail:
		return m.viewDetail()
	default:
		return m.viewList()
	}
}

func (m *model) viewList() string {
	parts := []string{m.heroView(), m.tabBarView()}

	papers := m.visiblePapers()
	if len(papers) == 0 {
		parts = append(parts, helperStyle.Render(m.emptyListMessage()))
	} else {
		parts = append(parts, m.listView(papers))
	}
	if m.infoMessage != "" {
		parts = append(parts, helperStyle.Render(m.infoMessage))
	}
	parts = append(parts, helperStyle.Render("↑/↓ move • enter open • b bookmark • / search • tab switch • q quit"))
	return joinNonEmpty(parts)
}

func (m *model) viewSearch() string {
	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render("Search Literature"))
	b.WriteRune('\n')
	b.WriteString(m.searchInput.View())
	b.WriteRune('\n')
	b.WriteString(helperStyle.Render("Enter to search, Esc to cancel. A numeric query looks up a paper ID."))
	return joinNonEmpty([]string{m.heroView(), b.String()})
}

func (m *model) viewDetail() string {
	parts := []string{m.heroView(), m.viewport.View()}
	status := "esc back • b bookmark • s summary • r recommendations • q quit"
	if m.busy() {
		status = fmt.Sprintf("%s generating… • %s", m.spinner.View(), status)
	}
	if m.infoMessage != "" {
		parts = append(parts, helperStyle.Render(m.infoMessage))
	}
	parts = append(parts, helperStyle.Render(status))
	return joinNonEmpty(parts)
}

func (m *model) heroView() string {
	return heroStyle.Render("litshelf") + "  " + helperStyle.Render(heroTagline)
}

func (m *model) tabBarView() string {
	browse := "Browse All"
	if m.searched {
		browse = fmt.Sprintf("Results for %q", m.query)
	}
	marks := fmt.Sprintf("Bookmarks (%d)", len(m.cfg.Bookmarks.List()))
	if m.tab == tabBrowse {
		return selectedStyle.Render("["+browse+"]") + "  " + helperStyle.Render(marks)
	}
	return helperStyle.Render(browse) + "  " + selectedStyle.Render("["+marks+"]")
}

func (m *model) emptyListMessage() string {
	if m.tab == tabBookmarks {
		return "No bookmarked papers yet. Press b on a paper to bookmark it."
	}
	if m.searched {
		return "No results found."
	}
	return "No literature found. Check the corpus file path."
}

func (m *model) listView(papers []library.Paper) string {
	var b strings.Builder
	selected := m.selected[m.tab]
	for i, paper := range papers {
		marker := "  "
		if i == selected {
			marker = "> "
		}
		star := " "
		if m.cfg.Bookmarks.IsBookmarked(paper.ID) {
			star = bookmarkStyle.Render("★")
		}
		line := fmt.Sprintf("%s%s #%d %s (%d)", marker, star, paper.ID, paper.Title, paper.Year)
		if i == selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		if authors := paper.Authors.Joined(", "); authors != "" {
			b.WriteRune('\n')
			b.WriteString(helperStyle.Render("     " + authors))
		}
		if i < len(papers)-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

func (m *model) renderDetail(paper library.Paper) string {
	wrap := m.viewport.Width
	if wrap < minViewportWidth {
		wrap = minViewportWidth
	}

	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render(fmt.Sprintf("#%d %s (%d)", paper.ID, paper.Title, paper.Year)))
	b.WriteString("\n\n")

	writeField := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(fieldLabelStyle.Render(label+": ") + value)
		b.WriteRune('\n')
	}
	writeField("Authors", paper.Authors.Joined(", "))
	writeField("Journal", paper.Journal)
	writeField("Publication", paper.Publication)
	writeField("Details", volumeDetails(paper))
	writeField("DOI", paper.DOI)
	writeField("URL", paper.URL)
	if paper.Abstract != "" {
		b.WriteRune('\n')
		b.WriteString(fieldLabelStyle.Render("Abstract:"))
		b.WriteRune('\n')
		b.WriteString(wordwrap.String(paper.Abstract, wrap))
		b.WriteRune('\n')
	}
	writeField("Notes", paper.Notes)

	if m.cfg.Bookmarks.IsBookmarked(paper.ID) {
		b.WriteRune('\n')
		b.WriteString(m.renderMetadata(paper.ID))
	}

	b.WriteRune('\n')
	b.WriteString(m.renderCitations(paper))

	b.WriteRune('\n')
	b.WriteString(m.renderAISection("AI Summary", m.summaries[paper.ID], wrap))
	b.WriteRune('\n')
	b.WriteString(m.renderAISection("AI Recommendations", m.recommendations[paper.ID], wrap))
	return b.String()
}

func (m *model) renderMetadata(id int) string {
	md := m.cfg.Metadata.Get(id)
	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render("Your Notes"))
	b.WriteRune('\n')
	if len(md.Tags) == 0 && md.Comments == "" {
		b.WriteString(helperStyle.Render("No tags or comments yet."))
		return b.String()
	}
	if len(md.Tags) > 0 {
		rendered := make([]string, 0, len(md.Tags))
		for _, tag := range md.Tags {
			color := bookmarks.TagColor(md, tag)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color.Hex))
			rendered = append(rendered, style.Render("#"+tag))
		}
		b.WriteString(fieldLabelStyle.Render("Tags: ") + strings.Join(rendered, " "))
		b.WriteRune('\n')
	}
	if md.Comments != "" {
		b.WriteString(fieldLabelStyle.Render("Comments: ") + md.Comments)
	}
	return b.String()
}

func (m *model) renderCitations(paper library.Paper) string {
	cites := m.cfg.Library.ResolveCitations(paper)
	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render("Citations"))
	b.WriteRune('\n')
	b.WriteString(fieldLabelStyle.Render("Cites: ") + citationLine(cites.Cites, "No cites found"))
	b.WriteRune('\n')
	b.WriteString(fieldLabelStyle.Render("Cited by: ") + citationLine(cites.CitedBy, "No citations found"))
	return b.String()
}

func citationLine(refs []library.CitationRef, empty string) string {
	if len(refs) == 0 {
		return helperStyle.Render(empty)
	}
	parts := make([]string, 0, len(refs))
	for _, ref := range refs {
		parts = append(parts, fmt.Sprintf("#%d %s", ref.ID, ref.Title))
	}
	return strings.Join(parts, " • ")
}

func (m *model) renderAISection(title, content string, wrap int) string {
	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render(title))
	b.WriteRune('\n')
	if content == "" {
		key := "s"
		if title == "AI Recommendations" {
			key = "r"
		}
		b.WriteString(helperStyle.Render(fmt.Sprintf("Press %s to generate.", key)))
		return b.String()
	}
	b.WriteString(wordwrap.String(content, wrap))
	return b.String()
}

func volumeDetails(paper library.Paper) string {
	var parts []string
	if paper.Volume != "" {
		parts = append(parts, "Vol. "+paper.Volume)
	}
	if paper.Issue != "" {
		parts = append(parts, "Issue "+paper.Issue)
	}
	if paper.Pages != "" {
		parts = append(parts, "pp. "+paper.Pages)
	}
	return strings.Join(parts, ", ")
}

func joinNonEmpty(parts []string) string {
	filtered := parts[:0]
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			filtered = append(filtered, part)
		}
	}
	return strings.Join(filtered, "\n\n")
}
