package analysis

import (
	"fmt"
	"strings"
	"time"

	"fedwatch/internal/types"
)

const maxExcerpts = 5

// GenerateSummary renders a human-readable report for a scored statement:
// date, score, shift classification, decisions, matched keywords, up to
// five relevant excerpts and the source URL. Pure formatting, no side
// effects.
func GenerateSummary(statement *types.StatementRecord, comparison string) string {
	formattedDate := statement.Date
	if d, err := time.Parse(types.DateLayout, statement.Date); err == nil {
		formattedDate = d.Format("January 2, 2006")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Date: %s\n", formattedDate)
	fmt.Fprintf(&b, "Tightening Score: %.1f/100\n", statement.TighteningScore)
	fmt.Fprintf(&b, "Policy Shift: %s\n\n", comparison)

	if len(statement.PolicyDecisions) > 0 {
		b.WriteString("Key Policy Decisions:\n")
		for _, decision := range statement.PolicyDecisions {
			fmt.Fprintf(&b, "- %s\n", decision)
		}
		b.WriteString("\n")
	}

	b.WriteString("Tightening Signals:\n")
	for _, keyword := range statement.TighteningKeywords {
		fmt.Fprintf(&b, "- %s\n", keyword)
	}

	b.WriteString("\nRelevant Excerpts:\n")
	for i, sentence := range relevantSentences(statement.Text) {
		fmt.Fprintf(&b, "%d. %s\n", i+1, sentence)
	}

	fmt.Fprintf(&b, "\nFull statement: %s", statement.URL)

	return b.String()
}

// relevantSentences selects up to maxExcerpts distinct sentences that
// mention a tightening keyword or one of the core policy phrases, in order
// of appearance.
func relevantSentences(text string) []string {
	interestPhrases := make([]string, 0, len(tighteningKeywords)+len(corePhrases))
	interestPhrases = append(interestPhrases, tighteningKeywords...)
	interestPhrases = append(interestPhrases, corePhrases...)

	seen := make(map[string]struct{})
	var relevant []string
	for _, sentence := range splitSentences(text) {
		lower := strings.ToLower(sentence)
		for _, phrase := range interestPhrases {
			if strings.Contains(lower, strings.ToLower(phrase)) {
				clean := strings.TrimSpace(sentence)
				if clean == "" {
					break
				}
				if _, dup := seen[clean]; !dup {
					seen[clean] = struct{}{}
					relevant = append(relevant, clean)
				}
				break
			}
		}
		if len(relevant) >= maxExcerpts {
			break
		}
	}
	return relevant
}

// splitSentences segments text at terminal punctuation (. ! ?) followed by
// whitespace, keeping the punctuation with the sentence.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text)-1; i++ {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		if !isSpace(text[i+1]) {
			continue
		}
		sentences = append(sentences, text[start:i+1])
		j := i + 1
		for j < len(text) && isSpace(text[j]) {
			j++
		}
		start = j
		i = j - 1
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
