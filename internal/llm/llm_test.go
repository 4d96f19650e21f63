package llm

import (
	"net/http"
	"testing"
	"time"
)

func TestNewReturnsNilClientWithoutProvider(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	client, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client != nil {
		t.Fatalf("expected nil client when nothing is configured, got %s", client.Name())
	}
}

func TestNewDefaultsToOpenAIWithKey(t *testing.T) {
	client, err := New(Config{APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client == nil {
		t.Fatal("expected a client")
	}
	if client.Name() != "OpenAI (gpt-4o-mini)" {
		t.Fatalf("unexpected client: %s", client.Name())
	}
}

func TestNewOpenAIRequiresKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := New(Config{Provider: "openai"}); err == nil {
		t.Fatal("expected error when openai is selected without a key")
	}
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	if _, err := New(Config{Provider: "palantir"}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewOllamaHonorsModelOverride(t *testing.T) {
	client, err := New(Config{Provider: "ollama", Model: "mistral"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.Name() != "Ollama (mistral)" {
		t.Fatalf("unexpected client: %s", client.Name())
	}
}

func TestPickHTTPClientHonorsCustomClient(t *testing.T) {
	custom := &http.Client{Timeout: 42 * time.Second}
	if got := pickHTTPClient(custom); got != custom {
		t.Fatalf("expected custom client to be returned")
	}
}

func TestPickHTTPClientUsesLongerTimeout(t *testing.T) {
	client := pickHTTPClient(nil)
	if client.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultHTTPTimeout, client.Timeout)
	}
}
