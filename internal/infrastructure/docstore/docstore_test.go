package docstore

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := New(filepath.Join(t.TempDir(), "articles"))

	if store.Exists("doc-1") {
		t.Fatalf("document should not exist yet")
	}
	if err := store.Write("doc-1", "Title\n\nBody text."); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !store.Exists("doc-1") {
		t.Fatalf("document should exist after write")
	}

	text, err := store.Read("doc-1")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if text != "Title\n\nBody text." {
		t.Fatalf("unexpected content: %q", text)
	}
}

func TestStoreMissingDocument(t *testing.T) {
	t.Parallel()

	store := New(t.TempDir())

	_, err := store.Read("never-written")
	if !errors.Is(err, ErrMissingDocument) {
		t.Fatalf("expected ErrMissingDocument, got %v", err)
	}
}
