package agent

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"ai-hrchat-be/internal/pkg/logger"
	"ai-hrchat-be/pkg/maps"
)

// emptyChoicesAgent talks to a stub provider that answers every completion
// request with zero choices.
func emptyChoicesAgent(t *testing.T) *Agent {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"stub","object":"chat.completion","choices":[]}`))
	}))
	t.Cleanup(srv.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"

	return &Agent{
		client: openai.NewClientWithConfig(cfg),
		model:  openai.GPT4o,
		logger: logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "agent_test.log")),
	}
}

func TestCorrectQueryEmptyChoicesFallsBack(t *testing.T) {
	a := emptyChoicesAgent(t)

	got := a.CorrectQuery(context.Background(), "address of hydrabad office", nil, "hr")

	// The local fuzzy pass still runs; the provider's empty response must
	// not panic or blank the query.
	if got == "" {
		t.Fatal("corrected query is empty")
	}
}

func TestClassifyIntentEmptyChoicesFallsBack(t *testing.T) {
	a := emptyChoicesAgent(t)

	got := a.ClassifyIntent(context.Background(), "where is the office", nil, "candidate")

	if got.IsMap {
		t.Error("fallback intent must not be map-routed")
	}
	if got.Intent != string(maps.IntentNonMap) {
		t.Errorf("Intent = %q, want %q", got.Intent, maps.IntentNonMap)
	}
}

func TestAnswerDocumentsEmptyChoicesErrors(t *testing.T) {
	a := emptyChoicesAgent(t)

	if _, err := a.AnswerDocuments(context.Background(), "File: a\nChunk: b", nil, "salary range", "hr"); err == nil {
		t.Error("expected error for empty provider response")
	}
}

func TestLastTurnsTrimsToWindow(t *testing.T) {
	long := make([]Turn, 8)
	for i := range long {
		long[i] = Turn{Role: "hr", Query: string(rune('a' + i))}
	}

	got := lastTurns(long)
	if len(got) != promptHistoryWindow {
		t.Fatalf("len = %d, want %d", len(got), promptHistoryWindow)
	}
	if got[0].Query != "d" {
		t.Errorf("window starts at %q, want the 5th-from-last turn", got[0].Query)
	}

	short := long[:3]
	if trimmed := lastTurns(short); len(trimmed) != 3 {
		t.Errorf("short history trimmed to %d, want 3", len(trimmed))
	}
}
