// Package storage persists product images through a gocloud.dev blob
// bucket, which keeps local file buckets and S3 behind one URL scheme.
package storage

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

const openTimeout = 10 * time.Second

type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// ImageStoreParams holds dependencies for the image store, injected by Fx.
type ImageStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobImageStore opens the bucket named by the storage configuration
// and releases it on shutdown.
func NewBlobImageStore(params ImageStoreParams) (service.ImageStore, error) {
	cfg := params.Config
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.Storage.BucketURL)
	}

	store := &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.Storage.PublicBaseURL, "/"),
		logger:        params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing image store bucket")

			return store.Close()
		},
	})

	return store, nil
}

// Save writes the image under the given name and returns its public URL.
func (s *blobImageStore) Save(ctx context.Context, name string, contentType string, data []byte) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, name, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write image %s", name)
	}

	return s.publicBaseURL + "/" + name, nil
}

// Remove deletes a previously saved image. Missing objects are not an error.
func (s *blobImageStore) Remove(ctx context.Context, name string) error {
	err := s.bucket.Delete(ctx, name)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete image %s", name)
	}

	return nil
}

// Close releases the underlying bucket handle.
func (s *blobImageStore) Close() error {
	return s.bucket.Close()
}
