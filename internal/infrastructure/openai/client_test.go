package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCompleteSendsMessagesAndReturnsContent(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": `{"summary": "ok"}`}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", APIURL: server.URL})

	content, err := client.Complete(context.Background(), "system prompt", "user prompt")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if content != `{"summary": "ok"}` {
		t.Errorf("unexpected content: %q", content)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("unexpected auth header: %q", gotAuth)
	}
	if gotReq.Model != defaultModel {
		t.Errorf("expected default model, got %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Errorf("unexpected messages: %+v", gotReq.Messages)
	}
	if gotReq.Messages[1].Content != "user prompt" {
		t.Errorf("unexpected user content: %q", gotReq.Messages[1].Content)
	}
}

func TestCompleteAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limited"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", APIURL: server.URL})

	_, err := client.Complete(context.Background(), "s", "u")
	if err == nil {
		t.Fatal("expected an error for a 429 response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("expected status code in error, got %v", err)
	}
}

func TestCompleteNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", APIURL: server.URL})

	if _, err := client.Complete(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected an error for an empty choices list")
	}
}

func TestCompleteMissingAPIKey(t *testing.T) {
	client := NewClient(Config{})

	if _, err := client.Complete(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected an error when no API key is configured")
	}
}

func TestCompleteHonorsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", APIURL: server.URL})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Complete(ctx, "s", "u"); err == nil {
		t.Fatal("expected an error for a cancelled context")
	}
}
