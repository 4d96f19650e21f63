// Package aicache fronts the external AI capability with persistent
// compute-once caches. Summaries and recommendations are memoized per paper
// ID in two independent JSON files; entries are immutable once written and
// failures are never cached, so the next user-triggered call naturally
// retries.
package aicache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/csheth/litshelf/internal/library"
)

// Advisory strings returned when no AI capability is configured. They
// short-circuit before any cache lookup or external call.
const (
	NoSummarizerAdvisory  = "AI summaries are unavailable. Configure an LLM provider (e.g. set OPENAI_API_KEY) to enable them."
	NoRecommenderAdvisory = "AI recommendations are unavailable. Configure an LLM provider (e.g. set OPENAI_API_KEY) to enable them."
)

// Summarizer produces a free-text summary for a paper title.
type Summarizer interface {
	Summarize(ctx context.Context, title string) (string, error)
}

// Recommender produces free-text related-paper suggestions. The output is
// expected to be a numbered list but is not guaranteed well-formed; see
// FormatRecommendations.
type Recommender interface {
	Recommend(ctx context.Context, title, abstract string) (string, error)
}

// Cache persists generated summaries and parsed recommendation lists. Each
// operation re-reads its file before acting and rewrites it whole on a new
// entry.
type Cache struct {
	summaryPath        string
	recommendationPath string
}

// New returns a cache over the two given files.
func New(summaryPath, recommendationPath string) *Cache {
	return &Cache{summaryPath: summaryPath, recommendationPath: recommendationPath}
}

// Summary returns the cached summary for the paper, generating and caching it
// on first use. Generation failures are surfaced as a formatted error string
// and left uncached.
func (c *Cache) Summary(ctx context.Context, paper library.Paper, summarizer Summarizer) string {
	if summarizer == nil {
		return NoSummarizerAdvisory
	}
	key := strconv.Itoa(paper.ID)
	if cached, ok := c.lookup(c.summaryPath, key); ok {
		return cached
	}
	text, err := summarizer.Summarize(ctx, paper.Title)
	if err != nil {
		return fmt.Sprintf("Error generating summary: %v", err)
	}
	c.store(c.summaryPath, key, text)
	return text
}

// Recommendations returns the cached recommendation text for the paper,
// generating, parsing, and caching it on first use. Only the display-ready
// formatted text is cached, never the raw model output.
func (c *Cache) Recommendations(ctx context.Context, paper library.Paper, recommender Recommender) string {
	if recommender == nil {
		return NoRecommenderAdvisory
	}
	key := strconv.Itoa(paper.ID)
	if cached, ok := c.lookup(c.recommendationPath, key); ok {
		return cached
	}
	raw, err := recommender.Recommend(ctx, paper.Title, paper.Abstract)
	if err != nil {
		return fmt.Sprintf("Error generating recommendations: %v", err)
	}
	formatted := FormatRecommendations(raw)
	c.store(c.recommendationPath, key, formatted)
	return formatted
}

func (c *Cache) lookup(path, key string) (string, bool) {
	value, ok := loadTable(path)[key]
	return value, ok
}

func (c *Cache) store(path, key, value string) {
	table := loadTable(path)
	table[key] = value
	saveTable(path, table)
}

func loadTable(path string) map[string]string {
	data, err := os.ReadFile(path)
	if err != nil {
		return map[string]string{}
	}
	var table map[string]string
	if err := json.Unmarshal(data, &table); err != nil || table == nil {
		return map[string]string{}
	}
	return table
}

// saveTable persists best-effort: a failed cache write costs a regeneration
// later, never the current interaction.
func saveTable(path string, table map[string]string) {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return
		}
	}
	_ = os.WriteFile(path, data, 0o644)
}
