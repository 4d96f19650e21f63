package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOllamaClientSummarize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		var payload struct {
			Model  string `json:"model"`
			Prompt string `json:"prompt"`
			Stream bool   `json:"stream"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
		if payload.Model != "llama3.1" {
			t.Fatalf("expected model llama3.1, got %s", payload.Model)
		}
		if !strings.Contains(payload.Prompt, "Paper title: Cool Paper") {
			t.Fatalf("prompt missing title: %s", payload.Prompt)
		}
		if payload.Stream {
			t.Fatal("expected streaming to be disabled")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":"A crisp summary.","done":true}`))
	}))
	defer server.Close()

	client := newOllamaClient(Config{Provider: "ollama", Endpoint: server.URL, HTTPClient: server.Client()})

	result, err := client.Summarize(context.Background(), "Cool Paper")
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}
	if result != "A crisp summary." {
		t.Fatalf("unexpected summarize result: %s", result)
	}
}

func TestOllamaClientRecommendIncludesAbstract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Prompt string `json:"prompt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
		if !strings.Contains(payload.Prompt, "Paper title: Cool Paper") {
			t.Fatalf("prompt missing title: %s", payload.Prompt)
		}
		if !strings.Contains(payload.Prompt, "We study cool things.") {
			t.Fatalf("prompt missing abstract: %s", payload.Prompt)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":"1. [Other](http://o) - related","done":true}`))
	}))
	defer server.Close()

	client := newOllamaClient(Config{Provider: "ollama", Endpoint: server.URL, HTTPClient: server.Client()})

	got, err := client.Recommend(context.Background(), "Cool Paper", "We study cool things.")
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	if got != "1. [Other](http://o) - related" {
		t.Fatalf("unexpected recommendation text: %s", got)
	}
}

func TestOllamaClientSurfacesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := newOllamaClient(Config{Provider: "ollama", Endpoint: server.URL, HTTPClient: server.Client()})

	if _, err := client.Summarize(context.Background(), "Missing Model"); err == nil {
		t.Fatal("expected error from 404 response")
	}
}

func TestOllamaClientRejectsEmptyTitle(t *testing.T) {
	client := newOllamaClient(Config{Provider: "ollama", Endpoint: "http://localhost:0"})
	if _, err := client.Summarize(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty title")
	}
}
