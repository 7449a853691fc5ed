package analysis

import (
	"strings"
	"testing"
)

func TestExtractRateDecision(t *testing.T) {
	text := "The Committee decided to raise the target range for the federal funds rate to 5-1/4 to 5-1/2 percent."

	decisions := ExtractPolicyDecisions(text)

	if len(decisions) != 1 {
		t.Fatalf("Expected 1 decision, got %d: %v", len(decisions), decisions)
	}
	if !strings.HasPrefix(decisions[0], "Rate Decision: ") {
		t.Errorf("Expected rate decision label, got %q", decisions[0])
	}
	if !strings.Contains(decisions[0], "raise the target range") {
		t.Errorf("Decision should carry the captured phrase, got %q", decisions[0])
	}
}

func TestExtractBalanceSheetDecision(t *testing.T) {
	text := "The Committee will continue reducing its securities holdings of Treasury debt and agency obligations."

	decisions := ExtractPolicyDecisions(text)

	if len(decisions) != 1 {
		t.Fatalf("Expected 1 decision, got %d: %v", len(decisions), decisions)
	}
	if !strings.HasPrefix(decisions[0], "Balance Sheet: ") {
		t.Errorf("Expected balance sheet label, got %q", decisions[0])
	}
}

func TestExtractForwardGuidance(t *testing.T) {
	text := "In determining the extent of additional policy firming that may be appropriate over time, members weighed incoming data."

	decisions := ExtractPolicyDecisions(text)

	if len(decisions) != 1 {
		t.Fatalf("Expected 1 decision, got %d: %v", len(decisions), decisions)
	}
	if !strings.HasPrefix(decisions[0], "Forward Guidance: ") {
		t.Errorf("Expected forward guidance label, got %q", decisions[0])
	}
	if !strings.Contains(decisions[0], "policy firming") {
		t.Errorf("Guidance should carry the captured phrase, got %q", decisions[0])
	}
}

func TestExtractDecisionsGroupedByCategory(t *testing.T) {
	text := "In determining the appropriate stance, members reviewed forecasts at length. " +
		"The Committee decided to raise the target range for the federal funds rate to 5-1/2 percent. " +
		"The Committee will continue reducing its securities holdings of Treasury debt and agency obligations."

	decisions := ExtractPolicyDecisions(text)

	if len(decisions) != 3 {
		t.Fatalf("Expected 3 decisions, got %d: %v", len(decisions), decisions)
	}
	// Category passes run in a fixed order regardless of text order.
	if !strings.HasPrefix(decisions[0], "Rate Decision: ") {
		t.Errorf("Decision 0 should be a rate decision, got %q", decisions[0])
	}
	if !strings.HasPrefix(decisions[1], "Balance Sheet: ") {
		t.Errorf("Decision 1 should be balance sheet, got %q", decisions[1])
	}
	if !strings.HasPrefix(decisions[2], "Forward Guidance: ") {
		t.Errorf("Decision 2 should be forward guidance, got %q", decisions[2])
	}
}

func TestExtractRejectsShortCaptures(t *testing.T) {
	// Captured phrase too short to be informative.
	text := "They decided to cut the federal funds rate."

	decisions := ExtractPolicyDecisions(text)

	if len(decisions) != 0 {
		t.Errorf("Expected no decisions for a trivial capture, got %v", decisions)
	}
}

func TestExtractNoDecisions(t *testing.T) {
	decisions := ExtractPolicyDecisions("Nothing about central banking appears in this text at all.")

	if len(decisions) != 0 {
		t.Errorf("Expected no decisions, got %v", decisions)
	}
}
