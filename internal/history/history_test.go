package history

import (
	"os"
	"path/filepath"
	"testing"

	"fedwatch/internal/types"
)

func rec(date string, score float64) types.StatementRecord {
	return types.StatementRecord{Date: date, TighteningScore: score}
}

func TestPreviousUnsortedHistory(t *testing.T) {
	// Storage order is not date order; Previous must scan.
	h := New([]types.StatementRecord{
		rec("2024-03-20", 70),
		rec("2023-11-01", 40),
		rec("2024-01-31", 55),
	})

	prev := h.Previous("2024-03-20")
	if prev == nil {
		t.Fatal("Expected a predecessor")
	}
	if prev.Date != "2024-01-31" {
		t.Errorf("Expected predecessor 2024-01-31, got %s", prev.Date)
	}
}

func TestPreviousEarliestHasNone(t *testing.T) {
	h := New([]types.StatementRecord{
		rec("2024-03-20", 70),
		rec("2023-11-01", 40),
	})

	if prev := h.Previous("2023-11-01"); prev != nil {
		t.Errorf("Earliest record should have no predecessor, got %s", prev.Date)
	}
}

func TestPreviousSkipsSameDate(t *testing.T) {
	h := New([]types.StatementRecord{rec("2024-03-20", 70)})

	if prev := h.Previous("2024-03-20"); prev != nil {
		t.Errorf("A record is not its own predecessor, got %s", prev.Date)
	}
}

func TestPreviousReturnsCopy(t *testing.T) {
	h := New([]types.StatementRecord{
		rec("2024-01-31", 55),
		rec("2024-03-20", 70),
	})

	prev := h.Previous("2024-03-20")
	prev.TighteningScore = 99

	again := h.Previous("2024-03-20")
	if again.TighteningScore != 55 {
		t.Errorf("Previous should return a copy; stored score changed to %f", again.TighteningScore)
	}
}

func TestReplaceKeepsPosition(t *testing.T) {
	h := New([]types.StatementRecord{
		rec("2024-01-31", 55),
		rec("2024-03-20", 70),
	})

	if !h.Replace(rec("2024-01-31", 80)) {
		t.Fatal("Replace should find the existing date")
	}

	records := h.Records()
	if len(records) != 2 {
		t.Fatalf("Replace must not change length, got %d", len(records))
	}
	if records[0].Date != "2024-01-31" || records[0].TighteningScore != 80 {
		t.Errorf("Record not replaced in place: %+v", records[0])
	}
	if !h.Dirty() {
		t.Error("Replace should mark the history dirty")
	}
}

func TestReplaceUnknownDate(t *testing.T) {
	h := New([]types.StatementRecord{rec("2024-01-31", 55)})

	if h.Replace(rec("2024-03-20", 70)) {
		t.Error("Replace should report false for an unknown date")
	}
	if h.Dirty() {
		t.Error("Failed replace should not mark the history dirty")
	}
}

func TestHasAndAppend(t *testing.T) {
	h := New(nil)

	if h.Has("2024-03-20") {
		t.Error("Empty history should have nothing")
	}
	h.Append(rec("2024-03-20", 70))
	if !h.Has("2024-03-20") {
		t.Error("Appended record should be found")
	}
	if h.Len() != 1 {
		t.Errorf("Expected length 1, got %d", h.Len())
	}
	if !h.Dirty() {
		t.Error("Append should mark the history dirty")
	}
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))

	records, err := store.Load()
	if err != nil {
		t.Fatalf("Missing file should not error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Missing file should load as empty history, got %d records", len(records))
	}
}

func TestFileStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileStore(path).Load(); err == nil {
		t.Error("Corrupt file should error")
	}
}

func TestFileStoreSaveCreatesDirAndRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.json")
	store := NewFileStore(path)

	saved := []types.StatementRecord{
		{
			Date:               "2024-03-20",
			Text:               "The Committee raised the target range.",
			TighteningScore:    72.5,
			TighteningKeywords: []string{"hawkish"},
			PolicyDecisions:    []string{"Rate Decision: raise the target range"},
			URL:                "https://example.org/statement",
		},
	}
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(loaded))
	}
	if loaded[0].Date != "2024-03-20" || loaded[0].TighteningScore != 72.5 {
		t.Errorf("Round trip mismatch: %+v", loaded[0])
	}
	if len(loaded[0].TighteningKeywords) != 1 || loaded[0].TighteningKeywords[0] != "hawkish" {
		t.Errorf("Keywords did not round trip: %v", loaded[0].TighteningKeywords)
	}
}
