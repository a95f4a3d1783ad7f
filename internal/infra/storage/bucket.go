// Package storage stores uploaded media in a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"carebridge/config"
	"carebridge/internal/domain/service"
	"carebridge/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

// BucketStorage implements service.MediaStorage on top of a blob.Bucket.
type BucketStorage struct {
	bucket  *blob.Bucket
	baseURL string
}

// NewBucketStorage wraps bucket. Public URLs are baseURL joined with the object key.
func NewBucketStorage(bucket *blob.Bucket, baseURL string) *BucketStorage {
	return &BucketStorage{
		bucket:  bucket,
		baseURL: baseURL,
	}
}

// Put writes data at key. Blob writes replace existing objects.
func (s *BucketStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}

func (s *BucketStorage) PublicURL(key string) string {
	if s.baseURL == "" {
		return key
	}

	return strings.TrimSuffix(s.baseURL, "/") + "/" + strings.TrimPrefix(key, "/")
}

// Params defines the parameters required for media storage
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.MediaStorage, error) {
	storageCfg := params.Config.Storage

	bucket, err := blob.OpenBucket(params.Ctx, storageCfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", storageCfg.BucketURL)
	}

	params.Logger.Info("[Media] Storage bucket opened", slog.String("bucket_url", storageCfg.BucketURL))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBucketStorage(bucket, storageCfg.PublicBaseURL), nil
}
