// Package history persists the list of previously analyzed repository URLs
// as a small JSON file.
package history

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"slices"
)

// Store reads and rewrites the URL history at a fixed file path. The file
// holds a single JSON array of strings, pretty-printed so it stays easy to
// inspect and edit by hand.
type Store struct {
	path string
}

// NewStore creates a Store persisting to path. The file is created on the
// first Add; a missing file is an empty history.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted URLs in stored order. Loading is best effort:
// a missing, unreadable, or malformed file yields an empty history, never
// an error.
func (s *Store) Load() []string {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var urls []string
	if err := json.Unmarshal(raw, &urls); err != nil {
		return nil
	}
	return urls
}

// Add appends url to the history unless it is already present, rewriting the
// whole file. It reports whether the URL was newly added.
func (s *Store) Add(url string) (bool, error) {
	urls := s.Load()
	if slices.Contains(urls, url) {
		return false, nil
	}
	urls = append(urls, url)
	if err := s.save(urls); err != nil {
		return false, err
	}
	return true, nil
}

// save writes the array with HTML escaping off and non-ASCII intact, so the
// stored strings match what the user typed.
func (s *Store) save(urls []string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(urls); err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	return nil
}
