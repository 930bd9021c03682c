// storage/store.go
package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Store reads and writes one JSON file holding a whole collection (or a
// singleton object). Every Load parses the file from scratch and every
// Save rewrites it whole; the last writer wins. There is no locking.
type Store[T any] struct {
	path     string
	fallback T
}

// New returns a store for path. fallback is written when the file does
// not exist yet and returned when the file cannot be parsed.
func New[T any](path string, fallback T) *Store[T] {
	return &Store[T]{path: path, fallback: fallback}
}

// Path returns the backing file path.
func (s *Store[T]) Path() string {
	return s.path
}

// Load returns the current contents of the file. A missing file is
// created with the fallback value; an unparsable file yields the
// fallback without failing the request.
func (s *Store[T]) Load() (T, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		if werr := s.Save(s.fallback); werr != nil {
			return s.fallback, werr
		}
		return s.fallback, nil
	}
	if err != nil {
		return s.fallback, err
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return s.fallback, nil
	}
	return v, nil
}

// Save serializes v and overwrites the file, creating the data
// directory if needed. Files are indented so they stay hand-editable.
func (s *Store[T]) Save(v T) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
