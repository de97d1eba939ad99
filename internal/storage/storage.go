package storage

import "context"

// ObjectStore retrieves receipt images by their storage key.
type ObjectStore interface {
	Download(ctx context.Context, key string) ([]byte, error)
}
