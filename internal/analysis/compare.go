package analysis

import (
	"fmt"

	"fedwatch/internal/types"
)

// TighteningShiftMarker appears in every classification that qualifies for
// an alert; consumers match on this substring.
const TighteningShiftMarker = "TIGHTENING SHIFT"

// Shift classification thresholds on the score difference.
const (
	significantShift = 15.0
	moderateShift    = 5.0
)

// ComparePrevious classifies the score change between a statement and its
// most recent predecessor. The returned string embeds the diff to one
// decimal place. A nil previous yields a "no comparison" indicator, not an
// error.
func ComparePrevious(current, previous *types.StatementRecord) string {
	if previous == nil {
		return "No previous statement for comparison"
	}

	difference := current.TighteningScore - previous.TighteningScore

	switch {
	case difference > significantShift:
		return fmt.Sprintf("SIGNIFICANT TIGHTENING SHIFT: +%.1f points", difference)
	case difference > moderateShift:
		return fmt.Sprintf("Moderate tightening shift: +%.1f points", difference)
	case difference < -significantShift:
		return fmt.Sprintf("SIGNIFICANT LOOSENING SHIFT: %.1f points", difference)
	case difference < -moderateShift:
		return fmt.Sprintf("Moderate loosening shift: %.1f points", difference)
	default:
		return fmt.Sprintf("No significant policy shift: %.1f points", difference)
	}
}
