package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFSStoreUploadAndPublicURL(t *testing.T) {
	root := t.TempDir()
	store := NewFSStore(root, "http://localhost:8080/media/")

	err := store.Upload(context.Background(), "messages/a/b.png", []byte("data"), UploadOptions{ContentType: "image/png"})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(root, "messages", "a", "b.png"))
	if err != nil {
		t.Fatalf("read stored object: %v", err)
	}
	if string(raw) != "data" {
		t.Fatalf("stored content = %q", raw)
	}

	if got := store.PublicURL("messages/a/b.png"); got != "http://localhost:8080/media/messages/a/b.png" {
		t.Fatalf("PublicURL = %q", got)
	}
}

func TestFSStoreNoOverwrite(t *testing.T) {
	store := NewFSStore(t.TempDir(), "http://localhost")
	ctx := context.Background()

	if err := store.Upload(ctx, "messages/one.bin", []byte("first"), UploadOptions{}); err != nil {
		t.Fatalf("first upload: %v", err)
	}
	err := store.Upload(ctx, "messages/one.bin", []byte("second"), UploadOptions{})
	if !errors.Is(err, ErrObjectExists) {
		t.Fatalf("second upload error = %v, want ErrObjectExists", err)
	}

	// Upsert allows the overwrite.
	if err := store.Upload(ctx, "messages/one.bin", []byte("third"), UploadOptions{Upsert: true}); err != nil {
		t.Fatalf("upsert upload: %v", err)
	}
}
