package analysis

import (
	"context"
	"regexp"
	"strings"

	"fedwatch/internal/trace"
)

// Result is the outcome of scoring one statement text.
type Result struct {
	Score     float64
	Keywords  []string
	Decisions []string
}

// Scoring constants. Empirically chosen; tune with care, downstream
// comparison thresholds assume this scale.
const (
	densityScale     = 50.0
	pivotBoost       = 15.0
	comparativeBoost = 20.0
	rateHikeBoost    = 10.0
	easingPenalty    = 20.0
)

// Patterns below run against lower-cased text.
var (
	pivotRe       = regexp.MustCompile(`(shift|change|pivot).{1,30}(stance|policy|direction)`)
	comparativeRe = regexp.MustCompile(`(more|increased|stronger|further).{1,20}(restrictive|hawkish|tighten)`)
	qtRe          = regexp.MustCompile(`(balance sheet reduction|quantitative tightening|qt|runoff|run-off)`)
	rateHikeRe    = regexp.MustCompile(`(raise|increase|raising|increasing).{1,30}(federal funds rate|interest rate|target range|policy rate)`)
	easingRe      = regexp.MustCompile(`(lower|decrease|cut|reduce|pause|hold|reduction).{1,30}(federal funds rate|interest rate|target range|policy rate)`)
)

// AnalyzeTightening scores statement text for monetary tightening sentiment.
// The score is a density measure: keyword and pattern hits normalized per
// 100 words, plus fixed boosts for pivot, comparative-tightening and
// rate-hike language, minus a penalty for easing language, clamped to
// [0, 100].
func AnalyzeTightening(ctx context.Context, text string) Result {
	_, span := trace.StartSpan(ctx, "analyze-tightening-signals")
	defer span.End()

	if text == "" {
		return Result{Score: 0, Keywords: []string{}, Decisions: []string{}}
	}

	textLower := strings.ToLower(text)
	wordCount := len(strings.Fields(textLower))

	tighteningCount := 0
	foundKeywords := []string{}
	for _, keyword := range tighteningKeywords {
		count := strings.Count(textLower, strings.ToLower(keyword))
		tighteningCount += count
		if count > 0 {
			foundKeywords = append(foundKeywords, keyword)
		}
	}

	// Language signalling a change of policy direction.
	directionChange := pivotRe.MatchString(textLower)

	// Comparative tightening ("more restrictive", "further tightening").
	comparativeTightening := comparativeRe.MatchString(textLower)
	if comparativeTightening {
		tighteningCount += 2
	}

	// Balance-sheet runoff mentions.
	tighteningCount += len(qtRe.FindAllString(textLower, -1))

	// Explicit rate-hike language.
	rateHike := rateHikeRe.MatchString(textLower)
	if rateHike {
		tighteningCount += 3
	}

	decisions := ExtractPolicyDecisions(text)

	// Normalize hits per 100 words so short and long documents compare.
	denom := float64(wordCount) / 100.0
	if denom < 1 {
		denom = 1
	}
	score := float64(tighteningCount) / denom * densityScale

	if directionChange {
		score += pivotBoost
	}
	if comparativeTightening {
		score += comparativeBoost
	}
	if rateHike {
		score += rateHikeBoost
	}

	// Easing language can co-occur with tightening flags; still penalized.
	if easingRe.MatchString(textLower) {
		score -= easingPenalty
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return Result{Score: score, Keywords: foundKeywords, Decisions: decisions}
}
