package blob_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/localnerve/reviewdb/internal/blob"
)

// TestFSStoreRoundTrip tests put, overwrite and delete
func TestFSStoreRoundTrip(t *testing.T) {
	root := t.TempDir()
	store, err := blob.NewFSStore(root)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	ctx := context.Background()

	key := blob.PhotoKey(7)
	if err := store.Put(ctx, key, bytes.NewReader([]byte("first")), blob.PutOptions{ContentType: "image/png"}); err != nil {
		t.Fatalf("Failed to put: %v", err)
	}

	path := filepath.Join(root, "photos", "7")
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read blob: %v", err)
	}
	if string(content) != "first" {
		t.Errorf("Unexpected content: %s", content)
	}

	// Overwrite replaces content.
	if err := store.Put(ctx, key, bytes.NewReader([]byte("second")), blob.PutOptions{}); err != nil {
		t.Fatalf("Failed to overwrite: %v", err)
	}
	content, _ = os.ReadFile(path)
	if string(content) != "second" {
		t.Errorf("Expected overwrite, got: %s", content)
	}

	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected blob removed, stat err: %v", err)
	}

	// Deleting a missing key is not an error.
	if err := store.Delete(ctx, key); err != nil {
		t.Errorf("Expected idempotent delete, got: %v", err)
	}
}

// TestFSStorePing tests sink reachability
func TestFSStorePing(t *testing.T) {
	root := t.TempDir()
	store, err := blob.NewFSStore(root)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if err := store.Ping(context.Background()); err != nil {
		t.Errorf("Expected ping to succeed: %v", err)
	}

	os.RemoveAll(root)
	if err := store.Ping(context.Background()); err == nil {
		t.Error("Expected ping to fail after the root is gone")
	}
}
