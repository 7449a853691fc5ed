// Package history holds the collection of previously scored statements,
// keyed by day-precision date, plus its JSON file persistence.
package history

import "fedwatch/internal/types"

// History is the in-memory statement collection for one monitoring cycle.
// Records keep insertion order; the collection is not assumed sorted by
// date. Not safe for concurrent use; a cycle owns its History exclusively.
type History struct {
	records []types.StatementRecord
	dirty   bool
}

// New builds a History from previously persisted records.
func New(records []types.StatementRecord) *History {
	h := &History{records: make([]types.StatementRecord, len(records))}
	copy(h.records, records)
	return h
}

// Len returns the number of records.
func (h *History) Len() int {
	return len(h.records)
}

// Has reports whether a record with the given date exists.
func (h *History) Has(date string) bool {
	for i := range h.records {
		if h.records[i].Date == date {
			return true
		}
	}
	return false
}

// Append adds a record. Callers check Has first; Append does not enforce
// uniqueness itself.
func (h *History) Append(rec types.StatementRecord) {
	h.records = append(h.records, rec)
	h.dirty = true
}

// Replace overwrites the record whose date matches rec.Date, preserving its
// position. Returns false when no record has that date.
func (h *History) Replace(rec types.StatementRecord) bool {
	for i := range h.records {
		if h.records[i].Date == rec.Date {
			h.records[i] = rec
			h.dirty = true
			return true
		}
	}
	return false
}

// Previous returns the record with the maximum date strictly before the
// given date, scanning the whole collection rather than trusting storage
// order. Nil when no predecessor exists. Dates in types.DateLayout compare
// correctly as strings.
func (h *History) Previous(date string) *types.StatementRecord {
	var prev *types.StatementRecord
	for i := range h.records {
		r := &h.records[i]
		if r.Date >= date {
			continue
		}
		if prev == nil || r.Date > prev.Date {
			prev = r
		}
	}
	if prev == nil {
		return nil
	}
	cp := *prev
	return &cp
}

// Records returns the records in insertion order.
func (h *History) Records() []types.StatementRecord {
	out := make([]types.StatementRecord, len(h.records))
	copy(out, h.records)
	return out
}

// Dirty reports whether the collection changed since construction.
func (h *History) Dirty() bool {
	return h.dirty
}
