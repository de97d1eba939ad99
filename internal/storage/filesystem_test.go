package storage

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"scanworker/internal/domain"
)

func TestFileStoreWriteDownloadRoundtrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	ctx := context.Background()
	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	key, err := store.Write(ctx, "receipts/user-1/scan.png", payload)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if key != "receipts/user-1/scan.png" {
		t.Fatalf("key = %q", key)
	}

	got, err := store.Download(ctx, key)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("roundtrip mismatch: %v", got)
	}
}

func TestFileStoreDownloadMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := store.Download(context.Background(), "nope.png"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := store.Download(context.Background(), "../outside"); err == nil {
		t.Fatal("expected traversal to be rejected")
	}
	if _, err := store.Write(context.Background(), "../outside", []byte("x")); err == nil {
		t.Fatal("expected traversal to be rejected")
	}
}
