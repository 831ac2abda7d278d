package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ats-backend/internal/llm"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{
		apiKey:     "test-key",
		model:      "gpt-5-mini",
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}
}

func chatReply(content string) string {
	return `{"id":"cmpl-1","model":"gpt-5-mini","choices":[{"message":{"role":"assistant","content":"` + content + `"}}]}`
}

func TestCompleteReturnsChoiceContent(t *testing.T) {
	var captured chatRequest
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(chatReply("  hello  ")))
	})

	got, err := client.Complete(context.Background(), llm.Request{
		System:   "sys",
		User:     "usr",
		JSONOnly: true,
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got != "hello" {
		t.Fatalf("content = %q, want trimmed %q", got, "hello")
	}
	if captured.ResponseFormat == nil || captured.ResponseFormat.Type != "json_object" {
		t.Fatalf("response_format = %+v, want json_object", captured.ResponseFormat)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" {
		t.Fatalf("messages = %+v", captured.Messages)
	}
}

func TestCompleteRetriesTransientFailure(t *testing.T) {
	calls := 0
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(chatReply("recovered")))
	})

	got, err := client.Complete(context.Background(), llm.Request{System: "s", User: "u"})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got != "recovered" {
		t.Fatalf("content = %q", got)
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestCompleteExhaustsRetries(t *testing.T) {
	calls := 0
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Complete(context.Background(), llm.Request{System: "s", User: "u"})
	if !errors.Is(err, llm.ErrCompletion) {
		t.Fatalf("got %v, want ErrCompletion", err)
	}
	if calls != maxAttempts {
		t.Fatalf("calls = %d, want %d", calls, maxAttempts)
	}
}

func TestCompleteAPIErrorIsNotRetried(t *testing.T) {
	calls := 0
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"invalid model","type":"invalid_request_error"}}`))
	})

	_, err := client.Complete(context.Background(), llm.Request{System: "s", User: "u"})
	if !errors.Is(err, llm.ErrCompletion) {
		t.Fatalf("got %v, want ErrCompletion", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"cmpl-1","model":"gpt-5-mini","choices":[]}`))
	})

	got, err := client.Complete(context.Background(), llm.Request{System: "s", User: "u"})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got != "" {
		t.Fatalf("content = %q, want empty", got)
	}
}

func TestShouldRetry(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "http 500", err: errors.New("openai http status 500"), want: true},
		{name: "http 429", err: errors.New("openai http status 429"), want: true},
		{name: "timeout", err: errors.New("openai request timeout: deadline"), want: true},
		{name: "connection reset", err: errors.New("read tcp: connection reset by peer"), want: true},
		{name: "invalid request", err: errors.New("openai error: invalid model (invalid_request_error)"), want: false},
		{name: "parse failure", err: errors.New("openai response parse: unexpected token"), want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldRetry(tt.err); got != tt.want {
				t.Fatalf("shouldRetry(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
