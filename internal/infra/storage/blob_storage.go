// Package storage implements media storage on top of the Go CDK blob API.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"tradie/config"
	"tradie/internal/domain/lifecycle"
	"tradie/internal/domain/service"
	"tradie/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Registers the file:// bucket scheme used in local and test deployments.
	_ "gocloud.dev/blob/fileblob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobMediaStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// New opens the configured bucket and returns it as a domain MediaStorage.
func New(params Params) (service.MediaStorage, error) {
	if params.Config.Storage == nil {
		return nil, errors.New("storage config is required")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobMediaStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(params.Config.Storage.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// NewWithBucket wraps an already open bucket. Used by tests with memblob.
func NewWithBucket(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.MediaStorage {
	return &blobMediaStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload writes the payload under the given key and returns its public URL.
func (s *blobMediaStorage) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write media object %q", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes a stored object. Missing objects are not an error, so
// cleanup after a partial failure can be retried safely.
func (s *blobMediaStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err == nil {
		return nil
	}

	exists, existsErr := s.bucket.Exists(ctx, key)
	if existsErr == nil && !exists {
		return nil
	}

	return errors.Wrapf(err, "failed to delete media object %q", key)
}
