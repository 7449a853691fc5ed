package types

// DateLayout is the day-precision format used as the unique key for
// statements in history.
const DateLayout = "2006-01-02"

// Cycle result statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// StatementRecord is one scored policy statement as persisted in history.
// Text holds the extracted body, truncated to TextLimit characters.
type StatementRecord struct {
	Date               string   `json:"date"`
	Text               string   `json:"text"`
	TighteningScore    float64  `json:"tightening_score"`
	TighteningKeywords []string `json:"tightening_keywords"`
	PolicyDecisions    []string `json:"policy_decisions"`
	URL                string   `json:"url"`
}

// TextLimit is the persisted text prefix length; longer bodies are cut and
// marked with an ellipsis.
const TextLimit = 1000

// StatementSummary is the per-statement entry returned from a monitoring
// cycle (not persisted).
type StatementSummary struct {
	Date            string   `json:"date"`
	URL             string   `json:"url"`
	TighteningScore float64  `json:"tightening_score"`
	Keywords        []string `json:"keywords"`
	PolicyDecisions []string `json:"policy_decisions"`
}

// Alert flags a statement whose score shifted significantly upward versus
// its predecessor.
type Alert struct {
	StatementDate string `json:"statement_date"`
	Summary       string `json:"summary"`
}

// DebugInfo carries cycle diagnostics, included only when requested.
type DebugInfo struct {
	StartTime              string `json:"start_time"`
	EndTime                string `json:"end_time,omitempty"`
	HistoricalCount        int    `json:"historical_statements_count"`
	StatementsFound        int    `json:"statements_found"`
	NewStatementsProcessed int    `json:"new_statements_processed"`
	FinalHistoricalCount   int    `json:"final_historical_count"`
}

// MonitoringResult is the outcome of one monitoring cycle.
type MonitoringResult struct {
	NewStatements    []StatementSummary `json:"new_statements"`
	TighteningAlerts []Alert            `json:"tightening_alerts"`
	Status           string             `json:"status"`
	Error            string             `json:"error,omitempty"`
	DebugInfo        *DebugInfo         `json:"debug_info,omitempty"`
}
