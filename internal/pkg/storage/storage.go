package storage

import (
	"context"
	"io"
)

// Storage persists photo blobs under relative paths.
type Storage interface {
	Save(ctx context.Context, path string, content io.Reader) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}
