// Package docstore keeps one UTF-8 text file per document under a base
// directory, named <URL_ID>.txt.
package docstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ArticleMetrics/internal/ports"
)

// ErrMissingDocument marks a document the acquisition step never produced.
var ErrMissingDocument = errors.New("document text not found")

// Store reads and writes per-document text files.
type Store struct {
	dir string
}

var _ ports.DocumentStore = (*Store)(nil)

// New wires the base directory holding the extracted articles.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the file location for a document identifier.
func (s *Store) Path(urlID string) string {
	return filepath.Join(s.dir, urlID+".txt")
}

// Exists reports whether a text file was already written for the identifier.
func (s *Store) Exists(urlID string) bool {
	info, err := os.Stat(s.Path(urlID))
	return err == nil && !info.IsDir()
}

// Read returns the stored text. A missing file yields ErrMissingDocument so
// the batch runner can record it as a failure instead of aborting.
func (s *Store) Read(urlID string) (string, error) {
	raw, err := os.ReadFile(s.Path(urlID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", urlID, ErrMissingDocument)
		}
		return "", fmt.Errorf("read document %s: %w", urlID, err)
	}
	return string(raw), nil
}

// Write stores the text, creating the base directory on first use.
func (s *Store) Write(urlID, text string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create documents dir: %w", err)
	}
	if err := os.WriteFile(s.Path(urlID), []byte(text), 0o644); err != nil {
		return fmt.Errorf("write document %s: %w", urlID, err)
	}
	return nil
}
