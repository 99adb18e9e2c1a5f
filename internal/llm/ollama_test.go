package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/warunap/sathya/internal/model"
)

func TestOllamaProvider_Summarize(t *testing.T) {
	var gotReq ollamaRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/generate":
			_ = json.NewDecoder(r.Body).Decode(&gotReq)
			_ = json.NewEncoder(w).Encode(ollamaResponse{
				Model:     "llama3.2",
				Response:  "Condensed explanation.",
				Done:      true,
				EvalCount: 17,
			})
		case "/api/tags":
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(model.LLMConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewOllamaProvider failed: %v", err)
	}

	if !provider.IsAvailable(context.Background()) {
		t.Error("Provider should report available")
	}

	resp, err := provider.Summarize(context.Background(), SummarizeRequest{
		Claim:       "claim",
		Explanation: "long explanation",
		Label:       model.LabelTrue,
	})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if resp.Summary != "Condensed explanation." {
		t.Errorf("Summary = %q", resp.Summary)
	}
	if resp.TokensUsed != 17 {
		t.Errorf("TokensUsed = %d, want 17", resp.TokensUsed)
	}
	if gotReq.Stream {
		t.Error("Streaming should be disabled")
	}
	if gotReq.Model != "llama3.2" {
		t.Errorf("Model = %q, want default llama3.2", gotReq.Model)
	}
}

func TestOllamaProvider_ErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(ollamaError{Error: "model not found"})
	}))
	defer server.Close()

	provider, _ := NewOllamaProvider(model.LLMConfig{BaseURL: server.URL})
	_, err := provider.Summarize(context.Background(), SummarizeRequest{Explanation: "x"})
	if err == nil || err.Error() != "ollama error: model not found" {
		t.Errorf("Error = %v, want the server's message surfaced", err)
	}
}

func TestOllamaProvider_Unavailable(t *testing.T) {
	provider, _ := NewOllamaProvider(model.LLMConfig{BaseURL: "http://127.0.0.1:1"})
	if provider.IsAvailable(context.Background()) {
		t.Error("Unreachable server should report unavailable")
	}
}

func TestNewProvider(t *testing.T) {
	if p, err := NewProvider(model.LLMConfig{}); err != nil || p != nil {
		t.Errorf("Empty provider should disable summarization, got %v, %v", p, err)
	}

	if _, err := NewProvider(model.LLMConfig{Provider: "gemini"}); err == nil {
		t.Error("Unknown provider should error")
	}

	p, err := NewProvider(model.LLMConfig{Provider: "OLLAMA"})
	if err != nil {
		t.Fatalf("NewProvider(ollama) failed: %v", err)
	}
	if p.Name() != "ollama" {
		t.Errorf("Name = %q", p.Name())
	}
}
