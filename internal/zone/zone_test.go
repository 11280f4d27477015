package zone

import (
	"testing"

	"trailcut/internal/anchors"
)

var testAnchors = anchors.Anchors{
	BeginT:      100,
	EscalationT: 2000,
	ClimaxT:     5000,
	Source:      anchors.SourceModel,
}

func TestAssignMatchesZonePhrases(t *testing.T) {
	a := NewAssigner()
	tests := []struct {
		name string
		text string
		want Zone
	}{
		{"setup vocabulary", "a quiet introduction to our character and his ordinary world", Beginning},
		{"tension vocabulary", "the conflict is escalating, danger and rising stakes everywhere", Escalation},
		{"climax vocabulary", "the final battle, a decisive showdown of maximum intensity", Climax},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Midpoint deliberately contradicts the text so a position
			// fallback would fail the assertion.
			if got := a.Assign(tc.text, 10, 7200, &testAnchors); got != tc.want {
				t.Fatalf("Assign(%q) = %s, want %s", tc.text, got, tc.want)
			}
		})
	}
}

func TestAssignEmptyTextFallsBackToPosition(t *testing.T) {
	a := NewAssigner()
	tests := []struct {
		midpoint float64
		want     Zone
	}{
		{500, Beginning},
		{1999, Beginning},
		{2000, Escalation},
		{4999, Escalation},
		{5000, Climax},
		{7000, Climax},
	}
	for _, tc := range tests {
		if got := a.Assign("", tc.midpoint, 7200, &testAnchors); got != tc.want {
			t.Fatalf("Assign(empty, %.0f) = %s, want %s", tc.midpoint, got, tc.want)
		}
	}
}

func TestAssignUnrelatedTextFallsBackToPosition(t *testing.T) {
	a := NewAssigner()
	// No token overlap with any zone phrase; similarity is zero everywhere.
	if got := a.Assign("mmm hmm yeah okay", 6000, 7200, &testAnchors); got != Climax {
		t.Fatalf("expected position fallback to CLIMAX, got %s", got)
	}
}

func TestAssignNilAnchorsUsesHeuristicSplit(t *testing.T) {
	a := NewAssigner()
	// Heuristic on 7200s: escalation_t=3240, climax_t=5760.
	if got := a.Assign("", 3000, 7200, nil); got != Beginning {
		t.Fatalf("midpoint 3000 before heuristic escalation should be BEGINNING, got %s", got)
	}
	if got := a.Assign("", 4000, 7200, nil); got != Escalation {
		t.Fatalf("midpoint 4000 should be ESCALATION, got %s", got)
	}
	if got := a.Assign("", 6000, 7200, nil); got != Climax {
		t.Fatalf("midpoint 6000 should be CLIMAX, got %s", got)
	}
}

func TestZonePriorityOrder(t *testing.T) {
	if !(Beginning.Priority() < Escalation.Priority() &&
		Escalation.Priority() < Climax.Priority() &&
		Climax.Priority() < Zone("").Priority()) {
		t.Fatal("zone priorities must order BEGINNING < ESCALATION < CLIMAX < unassigned")
	}
}
