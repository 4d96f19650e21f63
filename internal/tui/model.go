// Package tui is the interactive shelf browser: a searchable corpus list,
// bookmark management, and per-paper detail with metadata, citations, and
// AI annotations. It only talks to the core through the store interfaces;
// core failures render as text, never as a crash.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/csheth/litshelf/internal/aicache"
	"github.com/csheth/litshelf/internal/bookmarks"
	"github.com/csheth/litshelf/internal/library"
	"github.com/csheth/litshelf/internal/llm"
)

// Config wires the core stores into the UI.
type Config struct {
	Library   *library.Store
	Bookmarks *bookmarks.Store
	Metadata  *bookmarks.MetadataStore
	Cache     *aicache.Cache
	LLM       llm.Client
	Logger    zerolog.Logger
}

type model struct {
	cfg  Config
	jobs *jobBus

	stage stage
	tab   tab

	searchInput textinput.Model
	query       string
	results     []library.Paper
	searched    bool

	selected map[tab]int

	detail   *library.Paper
	viewport viewport.Model

	summaries       map[int]string
	recommendations map[int]string
	pendingJobs     map[string]bool

	spinner     spinner.Model
	infoMessage string

	width  int
	height int
	ready  bool
}

// New builds the initial model.
func New(cfg Config) tea.Model {
	input := textinput.New()
	input.Placeholder = searchPlaceholder
	input.CharLimit = 120

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(80, 20)

	return &model{
		cfg:             cfg,
		jobs:            newJobBus(cfg.Logger),
		stage:           stageList,
		tab:             tabBrowse,
		searchInput:     input,
		selected:        map[tab]int{},
		viewport:        vp,
		summaries:       map[int]string{},
		recommendations: map[int]string{},
		pendingJobs:     map[string]bool{},
		spinner:         spin,
	}
}

func (m *model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		m.ready = true
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case jobSignalMsg:
		m.pendingJobs[msg.Snapshot.ID] = true
		return m, nil
	case jobResultEnvelope:
		delete(m.pendingJobs, msg.Snapshot.ID)
		if msg.Payload != nil {
			return m.Update(msg.Payload)
		}
		return m, nil
	case aiResultMsg:
		switch msg.kind {
		case jobKindSummary:
			m.summaries[msg.paperID] = msg.text
		case jobKindRecommend:
			m.recommendations[msg.paperID] = msg.text
		}
		if m.detail != nil && m.detail.ID == msg.paperID {
			m.refreshDetail()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.stage {
	case stageSearch:
		return m.handleSearchKey(msg)
	case stageDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m *model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.stage = stageSearch
		m.searchInput.Focus()
		return m, textinput.Blink
	case "tab":
		if m.tab == tabBrowse {
			m.tab = tabBookmarks
		} else {
			m.tab = tabBrowse
		}
		m.infoMessage = ""
		return m, nil
	case "up", "k":
		m.moveSelection(-1)
		return m, nil
	case "down", "j":
		m.moveSelection(1)
		return m, nil
	case "b":
		m.toggleBookmark()
		return m, nil
	case "esc":
		if m.searched {
			m.searched = false
			m.query = ""
			m.results = nil
			m.infoMessage = ""
		}
		return m, nil
	case "enter":
		if paper, ok := m.currentPaper(); ok {
			m.openDetail(paper)
		}
		return m, nil
	}
	return m, nil
}

func (m *model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.stage = stageList
		m.searchInput.Blur()
		return m, nil
	case tea.KeyEnter:
		query := strings.TrimSpace(m.searchInput.Value())
		m.stage = stageList
		m.searchInput.Blur()
		if query == "" {
			// Empty queries never reach the search engine.
			return m, nil
		}
		m.query = query
		m.results = library.Search(query, m.cfg.Library.Papers())
		m.searched = true
		m.tab = tabBrowse
		m.selected[tabBrowse] = 0
		m.infoMessage = fmt.Sprintf("Found %d result(s) for %q", len(m.results), query)
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.stage = stageList
		m.detail = nil
		return m, nil
	case "b":
		m.toggleBookmark()
		m.refreshDetail()
		return m, nil
	case "s":
		return m, m.startAIJob(jobKindSummary)
	case "r":
		return m, m.startAIJob(jobKindRecommend)
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// visiblePapers returns the list the active tab is showing: search results,
// the whole corpus, or the bookmarks.
func (m *model) visiblePapers() []library.Paper {
	if m.tab == tabBookmarks {
		return m.cfg.Bookmarks.List()
	}
	if m.searched {
		return m.results
	}
	return m.cfg.Library.Papers()
}

func (m *model) currentPaper() (library.Paper, bool) {
	papers := m.visiblePapers()
	idx := m.selected[m.tab]
	if idx < 0 || idx >= len(papers) {
		return library.Paper{}, false
	}
	return papers[idx], true
}

func (m *model) moveSelection(delta int) {
	papers := m.visiblePapers()
	if len(papers) == 0 {
		return
	}
	idx := m.selected[m.tab] + delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(papers) {
		idx = len(papers) - 1
	}
	m.selected[m.tab] = idx
}

func (m *model) toggleBookmark() {
	paper, ok := m.currentPaper()
	if !ok && m.detail != nil {
		paper, ok = *m.detail, true
	}
	if !ok {
		return
	}
	if m.cfg.Bookmarks.IsBookmarked(paper.ID) {
		if err := m.cfg.Bookmarks.Remove(paper.ID); err != nil {
			m.infoMessage = fmt.Sprintf("Could not remove bookmark: %v", err)
			return
		}
		m.infoMessage = fmt.Sprintf("Removed bookmark for #%d", paper.ID)
		m.moveSelection(0)
		return
	}
	if _, err := m.cfg.Bookmarks.Add(paper); err != nil {
		m.infoMessage = fmt.Sprintf("Could not add bookmark: %v", err)
		return
	}
	m.infoMessage = fmt.Sprintf("Bookmarked #%d", paper.ID)
}

func (m *model) openDetail(paper library.Paper) {
	m.stage = stageDetail
	m.detail = &paper
	m.refreshDetail()
}

func (m *model) refreshDetail() {
	if m.detail == nil {
		return
	}
	m.viewport.SetContent(m.renderDetail(*m.detail))
	m.viewport.GotoTop()
}

func (m *model) startAIJob(kind jobKind) tea.Cmd {
	if m.detail == nil {
		return nil
	}
	paper := *m.detail
	switch kind {
	case jobKindSummary:
		if _, done := m.summaries[paper.ID]; done {
			return nil
		}
		return m.jobs.Start(kind, summaryJob(m.cfg.Cache, m.cfg.LLM, paper))
	case jobKindRecommend:
		if _, done := m.recommendations[paper.ID]; done {
			return nil
		}
		return m.jobs.Start(kind, recommendationsJob(m.cfg.Cache, m.cfg.LLM, paper))
	}
	return nil
}

func (m *model) busy() bool {
	return len(m.pendingJobs) > 0
}

func (m *model) resizeViewport() {
	width := m.width - viewportHorizontalPadding
	if width < minViewportWidth {
		width = minViewportWidth
	}
	height := m.height - 10
	if height < 8 {
		height = 8
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.refreshDetail()
}
