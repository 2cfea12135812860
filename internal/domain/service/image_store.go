package service

import (
	"context"
	"io"
)

// ImageStore defines the interface for storing user photos in object storage.
type ImageStore interface {
	// Upload stores the image under the given key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// Delete removes a previously uploaded image.
	Delete(ctx context.Context, key string) error
}
