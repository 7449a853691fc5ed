package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	rateDecisionRe = regexp.MustCompile(`(?i)(?:decided to|committee will|has decided to|agreed to|decided|appropriate to|increase the target range for the federal funds rate to|decided that the|decided to maintain|will maintain)([^.;]+)(?:federal funds rate|policy rate|interest rate|interest rates|basis points|percentage point|target range)([^.;]*)`)

	balanceSheetRe = regexp.MustCompile(`(?i)(?:balance sheet|securities holdings|asset purchases|quantitative|maturity extension|reinvestment|reinvesting|redemptions)([^.;]{10,150})`)

	guidanceRe = regexp.MustCompile(`(?i)(?:future adjustments|future increases|subsequent meeting|coming months|going forward|remain vigilant|remains highly attentive|future policy|will be prepared to adjust|the committee anticipates|the committee expects|the committee is strongly committed|appropriate path|policy path|outlook|will take into account|in determining)([^.;]{10,200})`)
)

// ExtractPolicyDecisions pulls labeled rate, balance-sheet and forward
// guidance phrases out of statement text. Output order follows the three
// passes, then match order within each pass; matches are not deduplicated
// across passes.
func ExtractPolicyDecisions(text string) []string {
	decisions := []string{}

	for _, m := range rateDecisionRe.FindAllStringSubmatch(text, -1) {
		decision := strings.TrimSpace(m[1] + m[2])
		if len(decision) > 10 {
			decisions = append(decisions, fmt.Sprintf("Rate Decision: %s", decision))
		}
	}

	for _, m := range balanceSheetRe.FindAllStringSubmatch(text, -1) {
		if len(m[1]) > 15 {
			decisions = append(decisions, fmt.Sprintf("Balance Sheet: %s", strings.TrimSpace(m[1])))
		}
	}

	for _, m := range guidanceRe.FindAllStringSubmatch(text, -1) {
		if len(m[1]) > 15 {
			decisions = append(decisions, fmt.Sprintf("Forward Guidance: %s", strings.TrimSpace(m[1])))
		}
	}

	return decisions
}
