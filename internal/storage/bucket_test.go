package storage

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"scanworker/internal/domain"
)

func TestBucketClientDownload(t *testing.T) {
	payload := []byte("image-bytes")
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	client, err := NewBucketClient(BucketOptions{
		BaseURL:    srv.URL + "/storage/v1",
		Bucket:     "receipt-images",
		ServiceKey: "service-key",
		HTTPClient: srv.Client(),
	})
	if err != nil {
		t.Fatalf("NewBucketClient: %v", err)
	}

	data, err := client.Download(context.Background(), "user-1/scan.png")
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Fatalf("payload mismatch: %q", data)
	}
	if gotPath != "/storage/v1/object/receipt-images/user-1/scan.png" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotAuth != "Bearer service-key" {
		t.Fatalf("auth = %q", gotAuth)
	}
}

func TestBucketClientDownloadNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client, err := NewBucketClient(BucketOptions{
		BaseURL:    srv.URL,
		Bucket:     "receipt-images",
		HTTPClient: srv.Client(),
	})
	if err != nil {
		t.Fatalf("NewBucketClient: %v", err)
	}
	if _, err := client.Download(context.Background(), "missing.png"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestBucketClientValidation(t *testing.T) {
	if _, err := NewBucketClient(BucketOptions{Bucket: "b"}); err == nil {
		t.Fatal("expected error without base url")
	}
	if _, err := NewBucketClient(BucketOptions{BaseURL: "http://x"}); err == nil {
		t.Fatal("expected error without bucket")
	}
}
