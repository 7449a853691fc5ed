package interfaces

import "fedwatch/internal/types"

// HistoryStore persists the ordered collection of statement records.
// Save has full-overwrite semantics. Load returns an empty slice when the
// store is absent or uninitialized.
type HistoryStore interface {
	Load() ([]types.StatementRecord, error)
	Save(records []types.StatementRecord) error
}
