package agent

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"ai-hrchat-be/internal/pkg/logger"
	"ai-hrchat-be/pkg/maps"
)

func testAgent(t *testing.T) *Agent {
	t.Helper()
	log := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "agent_test.log"))
	return New("test-key", "", log)
}

// The narration policy for non-distance results never reaches the LLM, so it
// is testable without a live client.
func TestNarrateMapResultPolicy(t *testing.T) {
	a := testAgent(t)
	ctx := context.Background()

	silentResults := []*maps.Result{
		{Type: "address", Address: &maps.AddressResult{City: "Singapore"}},
		{Type: "nearby", Nearby: &maps.NearbyResult{}},
		{Type: "multi_location", Offices: &maps.MultiLocationResult{}},
	}
	for _, result := range silentResults {
		got, err := a.NarrateMapResult(ctx, result, "q", "candidate")
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", result.Type, err)
		}
		if got != "" {
			t.Errorf("narration for %s = %q, want empty (frontend renders cards)", result.Type, got)
		}
	}
}

func TestNarrateMapResultDirections(t *testing.T) {
	a := testAgent(t)

	result := &maps.Result{
		Type: "directions",
		Directions: &maps.DirectionsResult{
			Steps: []string{"Head north on Main St", "Turn right onto 1st Ave"},
		},
	}

	got, err := a.NarrateMapResult(context.Background(), result, "directions please", "hr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(got, "Directions:\n\n") {
		t.Errorf("missing header: %q", got)
	}
	if !strings.Contains(got, "- Head north on Main St") {
		t.Errorf("missing first step bullet: %q", got)
	}
	if !strings.Contains(got, "- Turn right onto 1st Ave") {
		t.Errorf("missing second step bullet: %q", got)
	}
}

func TestNarrateMapResultNil(t *testing.T) {
	a := testAgent(t)
	got, err := a.NarrateMapResult(context.Background(), nil, "q", "hr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("narration for nil result = %q, want empty", got)
	}
}
