// Package monitor drives one full monitoring cycle: discover candidate
// documents, extract and score each, compare against history, raise
// tightening alerts and persist the updated record.
package monitor

import (
	"context"
	"strings"
	"time"

	"fedwatch/internal/analysis"
	"fedwatch/internal/extract"
	"fedwatch/internal/history"
	"fedwatch/internal/interfaces"
	"fedwatch/internal/logger"
	"fedwatch/internal/types"
)

// minTextLength is the shortest body text accepted as a real statement.
const minTextLength = 100

// Service runs monitoring cycles over injected collaborators.
type Service struct {
	source    interfaces.DocumentSource
	discovery interfaces.Discovery
	store     interfaces.HistoryStore
}

// New creates a monitoring service.
func New(source interfaces.DocumentSource, discovery interfaces.Discovery, store interfaces.HistoryStore) *Service {
	return &Service{
		source:    source,
		discovery: discovery,
		store:     store,
	}
}

// RunCycle executes one monitoring cycle. With force set, documents whose
// date already exists in history are reprocessed and their records
// replaced; otherwise they are skipped. Per-document failures are logged
// and skipped so one bad document never aborts the cycle. The returned
// result always has a status; no error escapes.
func (s *Service) RunCycle(ctx context.Context, force bool) types.MonitoringResult {
	op := logger.StartOperation(ctx, "monitoring-cycle", "force", force)
	ctx = op.GetContext()

	result := types.MonitoringResult{
		NewStatements:    []types.StatementSummary{},
		TighteningAlerts: []types.Alert{},
		Status:           types.StatusSuccess,
		DebugInfo: &types.DebugInfo{
			StartTime: time.Now().Format(time.RFC3339),
		},
	}

	records, err := s.store.Load()
	if err != nil {
		// Fresh-start degradation: a broken store means empty history.
		logger.ErrorWithErr(ctx, "Failed to load history, starting fresh", err)
		records = nil
	}
	hist := history.New(records)
	result.DebugInfo.HistoricalCount = hist.Len()
	logger.Info(ctx, "Loaded historical statements", "count", hist.Len())

	urls := s.discovery.Discover(ctx)

	statementsFound := 0
	for _, url := range urls {
		if ctx.Err() != nil {
			result.Status = types.StatusError
			result.Error = "monitoring cycle interrupted: " + ctx.Err().Error()
			break
		}
		if found := s.processDocument(ctx, url, force, hist, &result); found {
			statementsFound++
		}
	}
	result.DebugInfo.StatementsFound = statementsFound

	// Save unless running forced with nothing new; forced reruns that
	// changed nothing have nothing worth writing.
	if !force || len(result.NewStatements) > 0 {
		if err := s.store.Save(hist.Records()); err != nil {
			// Non-fatal: in-memory results are still returned.
			logger.ErrorWithErr(ctx, "Failed to save history", err)
		} else {
			logger.Info(ctx, "Saved historical statements", "count", hist.Len())
		}
	}

	result.DebugInfo.EndTime = time.Now().Format(time.RFC3339)
	result.DebugInfo.NewStatementsProcessed = len(result.NewStatements)
	result.DebugInfo.FinalHistoricalCount = hist.Len()

	op.End("new_statements", len(result.NewStatements), "alerts", len(result.TighteningAlerts))
	return result
}

// processDocument fetches, extracts, scores and records a single document.
// Returns true when the document yielded a usable statement, whether or
// not it was new. All failures are local: log and skip.
func (s *Service) processDocument(ctx context.Context, url string, force bool, hist *history.History, result *types.MonitoringResult) bool {
	doc, err := s.source.Fetch(ctx, url)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to fetch statement", err, "url", url)
		return false
	}

	date, ok := extract.Date(doc)
	if !ok {
		logger.Warn(ctx, "Could not extract date", "url", url)
		return false
	}

	text := extract.PolicyText(doc)
	if len(text) < minTextLength {
		logger.Warn(ctx, "Could not extract meaningful text", "url", url, "length", len(text))
		return false
	}

	dateKey := date.Format(types.DateLayout)
	logger.Info(ctx, "Extracted statement", "date", dateKey, "chars", len(text), "url", url)

	exists := hist.Has(dateKey)
	if exists && !force {
		logger.Debug(ctx, "Statement already processed", "date", dateKey)
		return true
	}

	res := analysis.AnalyzeTightening(ctx, text)

	rec := types.StatementRecord{
		Date:               dateKey,
		Text:               truncate(text, types.TextLimit),
		TighteningScore:    res.Score,
		TighteningKeywords: res.Keywords,
		PolicyDecisions:    res.Decisions,
		URL:                url,
	}

	result.NewStatements = append(result.NewStatements, types.StatementSummary{
		Date:            rec.Date,
		URL:             rec.URL,
		TighteningScore: rec.TighteningScore,
		Keywords:        rec.TighteningKeywords,
		PolicyDecisions: rec.PolicyDecisions,
	})

	if exists {
		hist.Replace(rec)
	} else {
		hist.Append(rec)
	}

	if hist.Len() > 1 {
		s.checkForShift(ctx, rec, hist, result)
	}

	return true
}

// checkForShift compares the new record against its most recent
// predecessor and raises an alert on a qualifying tightening shift.
func (s *Service) checkForShift(ctx context.Context, rec types.StatementRecord, hist *history.History, result *types.MonitoringResult) {
	previous := hist.Previous(rec.Date)
	if previous == nil {
		return
	}

	comparison := analysis.ComparePrevious(&rec, previous)
	logger.Info(ctx, "Compared to previous statement", "date", rec.Date, "previous", previous.Date, "classification", comparison)

	if !strings.Contains(strings.ToUpper(comparison), analysis.TighteningShiftMarker) {
		return
	}

	summary := analysis.GenerateSummary(&rec, comparison)
	result.TighteningAlerts = append(result.TighteningAlerts, types.Alert{
		StatementDate: rec.Date,
		Summary:       summary,
	})
	logger.TighteningAlert(ctx, rec.Date, rec.TighteningScore, comparison)
}

func truncate(text string, limit int) string {
	if len(text) > limit {
		return text[:limit] + "..."
	}
	return text
}
