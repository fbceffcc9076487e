package llm_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"docket/internal/services/llm"
)

func newTestClient(baseURL string, opts ...llm.Option) *llm.Client {
	cfg := llm.Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "test/model",
	}
	base := []llm.Option{
		llm.WithRetryBackoff(time.Millisecond, 5*time.Millisecond),
		llm.WithSleeper(func(time.Duration) {}),
	}
	return llm.NewClient(cfg, append(base, opts...)...)
}

func TestCompleteJSONReturnsContent(t *testing.T) {
	var gotAuth, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"domain\":\"financial\"}"}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	content, err := client.CompleteJSON(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("CompleteJSON returned error: %v", err)
	}
	if content != `{"domain":"financial"}` {
		t.Fatalf("unexpected content: %q", content)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected authorization header: %q", gotAuth)
	}
	if !strings.Contains(gotBody, `"response_format":{"type":"json_object"}`) {
		t.Fatalf("expected json response format in request body: %s", gotBody)
	}
}

func TestCompleteJSONRetriesOnTooManyRequests(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"{}"}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.CompleteJSON(context.Background(), "system", "user"); err != nil {
		t.Fatalf("CompleteJSON returned error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}

func TestCompleteJSONDoesNotRetryClientErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.CompleteJSON(context.Background(), "system", "user")
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if !strings.Contains(err.Error(), "http 401") {
		t.Fatalf("expected status in error, got: %v", err)
	}
}

func TestCompleteJSONRetriesEmptyContent(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Write([]byte(`{"choices":[{"message":{"content":""},"finish_reason":"length"}]}`))
			return
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"ok\":true}"}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	content, err := client.CompleteJSON(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("CompleteJSON returned error: %v", err)
	}
	if content != `{"ok":true}` {
		t.Fatalf("unexpected content: %q", content)
	}
	if calls != 2 {
		t.Fatalf("expected retry on empty content, got %d calls", calls)
	}
}

func TestCompleteJSONRequiresAPIKey(t *testing.T) {
	client := llm.NewClient(llm.Config{Model: "test/model"})
	if _, err := client.CompleteJSON(context.Background(), "system", "user"); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestHealthCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"ok\":true}"}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck returned error: %v", err)
	}
}

func TestDecodeJSONHandlesFormattingQuirks(t *testing.T) {
	type payload struct {
		Domain string `json:"domain"`
	}
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{name: "plain", content: `{"domain":"tax"}`, want: "tax"},
		{name: "code fence", content: "```json\n{\"domain\":\"tax\"}\n```", want: "tax"},
		{name: "bare fence", content: "```\n{\"domain\":\"tax\"}\n```", want: "tax"},
		{name: "leading prose", content: "Here is the JSON:\n{\"domain\":\"tax\"}", want: "tax"},
		{name: "empty", content: "   ", wantErr: true},
		{name: "not json", content: "no structured data here", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got payload
			err := llm.DecodeJSON(tc.content, &got)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeJSON returned error: %v", err)
			}
			if got.Domain != tc.want {
				t.Fatalf("unexpected domain: %q", got.Domain)
			}
		})
	}
}
