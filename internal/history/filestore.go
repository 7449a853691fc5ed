package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"fedwatch/internal/types"
)

// FileStore persists statement records as a single JSON document with
// full-overwrite semantics.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted records. An absent file yields an empty slice,
// not an error (fresh start).
func (s *FileStore) Load() ([]types.StatementRecord, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []types.StatementRecord{}, nil
		}
		return nil, fmt.Errorf("read history %s: %w", s.path, err)
	}

	var records []types.StatementRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("decode history %s: %w", s.path, err)
	}
	return records, nil
}

// Save overwrites the store with the given records.
func (s *FileStore) Save(records []types.StatementRecord) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}

	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write history %s: %w", s.path, err)
	}
	return nil
}
