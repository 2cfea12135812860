// Package storage implements object storage for user photos via gocloud.dev.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"tetatete/config"
	"tetatete/internal/domain/lifecycle"
	"tetatete/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // local development
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// blobImageStore is the gocloud-backed implementation of service.ImageStore.
type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewImageStore opens the configured bucket and ties its lifetime to the
// application lifecycle.
func NewImageStore(params Params) (service.ImageStore, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket url must be provided")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(params.Config.Storage.PublicBaseURL, "/"),
	}, nil
}

// Upload stores the image under the given key and returns its public URL.
func (s *blobImageStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, body); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write image")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finish image upload")
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes a previously uploaded image.
func (s *blobImageStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}
