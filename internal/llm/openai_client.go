package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

type openAIClient struct {
	client  *openai.Client
	model   string
	limiter *rate.Limiter
}

func newOpenAIClient(cfg Config) (*openAIClient, error) {
	key := apiKey(cfg)
	if key == "" {
		return nil, fmt.Errorf("openai provider selected but OPENAI_API_KEY is not set")
	}
	clientConfig := openai.DefaultConfig(key)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = strings.TrimRight(cfg.Endpoint, "/")
	}
	if cfg.HTTPClient != nil {
		clientConfig.HTTPClient = cfg.HTTPClient
	}
	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	return &openAIClient{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   model,
		limiter: newLimiter(),
	}, nil
}

func (c *openAIClient) Name() string {
	return fmt.Sprintf("OpenAI (%s)", c.model)
}

func (c *openAIClient) Summarize(ctx context.Context, title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("paper title empty; cannot summarize")
	}
	return c.chat(ctx, buildSummaryPrompt(title))
}

func (c *openAIClient) Recommend(ctx context.Context, title, abstract string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("paper title empty; cannot recommend")
	}
	return c.chat(ctx, buildRecommendationPrompt(title, abstract))
}

func (c *openAIClient) chat(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a concise research assistant."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("openai API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai API returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
