// Package llm provides the external AI capability the caches front: paper
// summaries and related-paper recommendations from an OpenAI-compatible API
// or a local Ollama instance.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultOpenAIModel = "gpt-4o-mini"
	defaultOllamaModel = "llama3.1"
	defaultOllamaHost  = "http://localhost:11434"

	defaultHTTPTimeout = 3 * time.Minute

	// One request per second is generous for a single-user tool and keeps a
	// burst of uncached papers from hammering the provider.
	requestsPerSecond = 1.0
)

// Config describes how to build an LLM client.
type Config struct {
	Provider   string // openai, ollama, or none
	Model      string
	Endpoint   string
	APIKey     string
	HTTPClient *http.Client
}

// Client exposes the generation helpers consumed through the aicache
// Summarizer/Recommender interfaces.
type Client interface {
	Summarize(ctx context.Context, title string) (string, error)
	Recommend(ctx context.Context, title, abstract string) (string, error)
	Name() string
}

// New builds a client from config and environment. It returns (nil, nil) when
// no provider is configured: callers treat a nil client as "AI disabled" and
// the caches answer with their advisory strings.
func New(cfg Config) (Client, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		if apiKey(cfg) != "" {
			provider = "openai"
		} else {
			provider = "none"
		}
	}

	switch provider {
	case "none":
		return nil, nil
	case "openai":
		return newOpenAIClient(cfg)
	case "ollama":
		return newOllamaClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

func apiKey(cfg Config) string {
	if cfg.APIKey != "" {
		return cfg.APIKey
	}
	return os.Getenv("OPENAI_API_KEY")
}

func pickHTTPClient(custom *http.Client) *http.Client {
	if custom != nil {
		return custom
	}
	// Generations routinely run past 60s; rely on the caller's context for cancellation.
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func newLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
}
