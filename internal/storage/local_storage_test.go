package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStorageSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("unexpected error creating storage: %v", err)
	}

	key, err := store.Save(context.Background(), []byte("payload"), SaveOptions{
		Category:  "sources",
		Extension: "txt",
		BaseName:  "My Upload",
	})
	if err != nil {
		t.Fatalf("unexpected error saving: %v", err)
	}
	if !strings.HasPrefix(key, "sources/") {
		t.Errorf("expected key under sources/, got %q", key)
	}
	if !strings.HasSuffix(key, "my-upload.txt") {
		t.Errorf("expected sanitized base name, got %q", key)
	}

	absPath := filepath.Join(dir, filepath.FromSlash(key))
	data, err := os.ReadFile(absPath)
	if err != nil {
		t.Fatalf("saved file unreadable: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("unexpected file contents: %q", data)
	}

	if err := store.Delete(context.Background(), key); err != nil {
		t.Fatalf("unexpected error deleting: %v", err)
	}
	if _, err := os.Stat(absPath); !os.IsNotExist(err) {
		t.Error("expected file to be removed")
	}

	// Deleting again is a no-op.
	if err := store.Delete(context.Background(), key); err != nil {
		t.Errorf("expected idempotent delete, got %v", err)
	}
}

func TestLocalStorageRejectsEmptyPayload(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error creating storage: %v", err)
	}
	if _, err := store.Save(context.Background(), nil, SaveOptions{Category: "sources"}); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestLocalStorageDeleteRejectsTraversal(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error creating storage: %v", err)
	}

	for _, key := range []string{"", "..", "../outside.txt", "/etc/passwd"} {
		if err := store.Delete(context.Background(), key); err == nil {
			t.Errorf("expected error for key %q", key)
		}
	}
}
