package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/litshelf/internal/aicache"
	"github.com/csheth/litshelf/internal/library"
)

type aiResultMsg struct {
	paperID int
	kind    jobKind
	text    string
}

// The cache converts every failure into display text, so these runners never
// return an error; failed generations show up as the formatted error string.
func summaryJob(cache *aicache.Cache, summarizer aicache.Summarizer, paper library.Paper) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, 2*time.Minute)
		defer cancel()
		text := cache.Summary(ctx, paper, summarizer)
		return aiResultMsg{paperID: paper.ID, kind: jobKindSummary, text: text}, nil
	}
}

func recommendationsJob(cache *aicache.Cache, recommender aicache.Recommender, paper library.Paper) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, 2*time.Minute)
		defer cancel()
		text := cache.Recommendations(ctx, paper, recommender)
		return aiResultMsg{paperID: paper.ID, kind: jobKindRecommend, text: text}, nil
	}
}
