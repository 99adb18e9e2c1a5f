package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/warunap/sathya/internal/model"
)

func testConfig(baseURL string) model.APIConfig {
	return model.APIConfig{
		BaseURL:      baseURL,
		Timeout:      5 * time.Second,
		UserAgent:    "sathya-test",
		MaxBodyBytes: 1 << 20,
	}
}

func TestPredict_RequestShape(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v1/predict" {
			t.Errorf("Expected /v1/predict, got %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected JSON content type, got %s", ct)
		}
		if ua := r.Header.Get("User-Agent"); ua != "sathya-test" {
			t.Errorf("Unexpected User-Agent: %s", ua)
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		_, _ = w.Write([]byte(`{"verdict":{"label":"true"}}`))
	}))
	defer server.Close()

	client := New(testConfig(server.URL))
	useVectorDB := true
	req := model.NewClaimRequest("මේක සැබවක්ද?", model.RequestOptions{
		LLMProvider: "openai",
		UseVectorDB: &useVectorDB,
		TopK:        5,
	})

	if _, err := client.Predict(context.Background(), req); err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	if gotBody["text"] != "මේක සැබවක්ද?" {
		t.Errorf("Request text = %v", gotBody["text"])
	}
	if gotBody["llm_provider"] != "openai" {
		t.Errorf("Request llm_provider = %v", gotBody["llm_provider"])
	}
	if gotBody["top_k"] != float64(5) {
		t.Errorf("Request top_k = %v", gotBody["top_k"])
	}
	if gotBody["use_vector_db"] != true {
		t.Errorf("Request use_vector_db = %v", gotBody["use_vector_db"])
	}
}

func TestPredict_OmitsUnsetOptions(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(testConfig(server.URL))
	if _, err := client.Predict(context.Background(), model.NewClaimRequest("claim", model.RequestOptions{})); err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	for _, key := range []string{"llm_provider", "use_vector_db", "top_k"} {
		if _, present := gotBody[key]; present {
			t.Errorf("Unset option %q should be omitted from the body", key)
		}
	}
}

func TestPredict_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(testConfig(server.URL))
	_, err := client.Predict(context.Background(), model.NewClaimRequest("claim", model.RequestOptions{}))
	if err == nil {
		t.Fatal("Expected error for 500")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Expected *StatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", statusErr.StatusCode)
	}
}

func TestPredict_SingleRequestPerCall(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(testConfig(server.URL))
	_, _ = client.Predict(context.Background(), model.NewClaimRequest("claim", model.RequestOptions{}))

	if calls != 1 {
		t.Errorf("Expected exactly 1 request (no retry), got %d", calls)
	}
}

func TestRefreshNews(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/news/refresh" {
			t.Errorf("Expected /v1/news/refresh, got %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"message":"refreshed 42 articles"}`))
	}))
	defer server.Close()

	client := New(testConfig(server.URL))
	msg, err := client.RefreshNews(context.Background())
	if err != nil {
		t.Fatalf("RefreshNews failed: %v", err)
	}
	if msg != "refreshed 42 articles" {
		t.Errorf("Message = %q", msg)
	}
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/health" {
			t.Errorf("Expected /v1/health, got %s", r.URL.Path)
		}
		// Response shape is unconstrained, only reachability matters
		_, _ = w.Write([]byte(`{"status":"whatever"}`))
	}))
	defer server.Close()

	client := New(testConfig(server.URL))
	if err := client.Health(context.Background()); err != nil {
		t.Errorf("Health failed: %v", err)
	}
}

func TestHealth_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Down before the probe

	client := New(testConfig(server.URL))
	if err := client.Health(context.Background()); err == nil {
		t.Error("Expected error for unreachable backend")
	}
}

func TestPredict_BodySizeLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for i := 0; i < 1000; i++ {
			_, _ = w.Write([]byte("0123456789"))
		}
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.MaxBodyBytes = 100
	client := New(cfg)

	body, err := client.Predict(context.Background(), model.NewClaimRequest("claim", model.RequestOptions{}))
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if len(body) != 100 {
		t.Errorf("Body length = %d, want capped at 100", len(body))
	}
}
