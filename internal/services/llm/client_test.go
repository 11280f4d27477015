package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(url string, opts ...Option) *Client {
	cfg := Config{APIKey: "test-key", BaseURL: url, Model: "test-model"}
	opts = append(opts, WithSleeper(func(time.Duration) {}))
	return NewClient(cfg, opts...)
}

func TestCompleteJSONSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"ok\":true}"}}]}`))
	}))
	defer server.Close()

	content, err := testClient(server.URL).CompleteJSON(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("CompleteJSON: %v", err)
	}
	if content != `{"ok":true}` {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestCompleteJSONRetriesServerErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"{}"}}]}`))
	}))
	defer server.Close()

	if _, err := testClient(server.URL).CompleteJSON(context.Background(), "s", "u"); err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestCompleteJSONDoesNotRetryClientErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	if _, err := testClient(server.URL).CompleteJSON(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected error for 400 response")
	}
	if calls != 1 {
		t.Fatalf("expected a single call, got %d", calls)
	}
}

func TestCompleteJSONRequiresAPIKey(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://localhost:1", Model: "m"})
	if _, err := client.CompleteJSON(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestDecodeJSON(t *testing.T) {
	type reply struct {
		BeginT float64 `json:"begin_t"`
	}

	tests := []struct {
		name    string
		payload string
		want    float64
		wantErr bool
	}{
		{"plain", `{"begin_t": 12.5}`, 12.5, false},
		{"fenced", "```json\n{\"begin_t\": 12.5}\n```", 12.5, false},
		{"prose wrapped", `Here you go: {"begin_t": 12.5} hope that helps`, 12.5, false},
		{"empty", "", 0, true},
		{"garbage", "not json at all", 0, true},
	}
	for _, tt := range tests {
		var out reply
		err := DecodeJSON(tt.payload, &out)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if out.BeginT != tt.want {
			t.Errorf("%s: got %f, want %f", tt.name, out.BeginT, tt.want)
		}
	}
}
