package storage

import (
	"context"
	"io"
)

// Storage stores uploaded files and returns public URLs for them.
type Storage interface {
	// Upload stores the content under key and returns its public URL.
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
	// Delete removes the object. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
}
