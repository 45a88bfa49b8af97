package cloud

import (
	"context"
	"errors"
	"fmt"
	"io"

	gstorage "cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// gcsObjectIterator abstracts the GCS object iterator.
type gcsObjectIterator interface {
	Next() (*gstorage.ObjectAttrs, error)
}

type gcsBackend struct {
	bucket      string
	newReader   func(ctx context.Context, bucket, key string) (io.ReadCloser, error)
	newIterator func(ctx context.Context, bucket, prefix string) gcsObjectIterator
}

func newGCSBackend(ctx context.Context, bucket string) (*gcsBackend, error) {
	client, err := gstorage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create GCS client: %w", err)
	}
	return &gcsBackend{
		bucket: bucket,
		newReader: func(ctx context.Context, b, key string) (io.ReadCloser, error) {
			return client.Bucket(b).Object(key).NewReader(ctx)
		},
		newIterator: func(ctx context.Context, b, prefix string) gcsObjectIterator {
			return client.Bucket(b).Objects(ctx, &gstorage.Query{Prefix: prefix})
		},
	}, nil
}

func (b *gcsBackend) Download(ctx context.Context, key string, w io.Writer) error {
	r, err := b.newReader(ctx, b.bucket, key)
	if err != nil {
		return fmt.Errorf("gcs open %s: %w", key, err)
	}
	defer func() { _ = r.Close() }()

	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("gcs read %s: %w", key, err)
	}
	return nil
}

func (b *gcsBackend) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	var objects []ObjectInfo
	it := b.newIterator(ctx, b.bucket, prefix)
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("gcs list %s: %w", prefix, err)
		}
		objects = append(objects, ObjectInfo{Key: attrs.Name, Size: attrs.Size})
	}
	return objects, nil
}
