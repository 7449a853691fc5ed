package analysis

import (
	"strings"
	"testing"

	"fedwatch/internal/types"
)

func record(date string, score float64) *types.StatementRecord {
	return &types.StatementRecord{Date: date, TighteningScore: score}
}

func TestComparePreviousSignificantTightening(t *testing.T) {
	got := ComparePrevious(record("2024-03-20", 70), record("2024-01-31", 50))

	want := "SIGNIFICANT TIGHTENING SHIFT: +20.0 points"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if !strings.Contains(got, TighteningShiftMarker) {
		t.Errorf("Significant shift should carry the alert marker: %q", got)
	}
}

func TestComparePreviousModerateTightening(t *testing.T) {
	got := ComparePrevious(record("2024-03-20", 60), record("2024-01-31", 50))

	want := "Moderate tightening shift: +10.0 points"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestComparePreviousSignificantLoosening(t *testing.T) {
	got := ComparePrevious(record("2024-03-20", 30), record("2024-01-31", 50))

	want := "SIGNIFICANT LOOSENING SHIFT: -20.0 points"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if strings.Contains(strings.ToUpper(got), TighteningShiftMarker) {
		t.Errorf("Loosening shift must not carry the tightening marker: %q", got)
	}
}

func TestComparePreviousNoSignificantShift(t *testing.T) {
	got := ComparePrevious(record("2024-03-20", 50), record("2024-01-31", 48))

	want := "No significant policy shift: 2.0 points"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestComparePreviousNilPrevious(t *testing.T) {
	got := ComparePrevious(record("2024-03-20", 50), nil)

	want := "No previous statement for comparison"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestComparePreviousBoundaryIsNotSignificant(t *testing.T) {
	// Exactly +15 is moderate, not significant; thresholds are strict.
	got := ComparePrevious(record("2024-03-20", 65), record("2024-01-31", 50))

	want := "Moderate tightening shift: +15.0 points"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
