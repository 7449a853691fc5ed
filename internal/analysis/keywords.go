package analysis

// tighteningKeywords is the reference list of tightening-indicative phrases.
// Matched case-insensitively as substrings; order here determines the order
// of reported keywords. Tunable data, not logic.
var tighteningKeywords = []string{
	"inflation risk", "price stability", "overheating", "tighter", "hawkish",
	"raise rates", "rate hike", "restrictive policy", "combat inflation",
	"reduce balance sheet", "quantitative tightening", "QT", "upside risk",
	"above target", "elevated inflation", "inflation concern",
	"inflation remains elevated", "inflation has not progressed",
	"tight labor market", "upward pressure on prices",
	"higher policy rate", "increased the target range",
	"firm policy stance", "higher for longer", "will need to remain restrictive",
	"further tightening", "inflation risks", "unacceptably high",
	"persistent inflationary pressures", "further policy firming",
	"commitment to restoring price stability",
}

// corePhrases always qualify a sentence as a relevant excerpt, in addition
// to any matched tightening keyword.
var corePhrases = []string{
	"federal funds rate", "monetary policy", "interest rate", "target range",
}

// Keywords returns a copy of the reference keyword list.
func Keywords() []string {
	out := make([]string, len(tighteningKeywords))
	copy(out, tighteningKeywords)
	return out
}
