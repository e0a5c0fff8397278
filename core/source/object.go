package source

import (
	"context"
	"fmt"
	"io"
	"path"

	"asset-loader/core/storage"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/singleflight"
)

// ObjectStore reads assets from an object storage bucket. Concurrent reads of the
// same object share a single download.
type ObjectStore struct {
	client storage.Client
	bucket string
	prefix string
	sf     singleflight.Group
}

// NewObjectStore creates a source reading objects named prefix+path from bucket.
func NewObjectStore(client storage.Client, bucket, prefix string) *ObjectStore {
	return &ObjectStore{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

func (o *ObjectStore) objectName(name string) string {
	if o.prefix == "" {
		return name
	}
	return path.Join(o.prefix, name)
}

// Load downloads the object for name.
func (o *ObjectStore) Load(ctx context.Context, name string) ([]byte, error) {
	objectName := o.objectName(name)

	// the download is shared, so one caller cancelling must not fail the others
	shared := context.WithoutCancel(ctx)
	result, err, _ := o.sf.Do(objectName, func() (interface{}, error) {
		reader, err := o.client.GetObject(shared, o.bucket, objectName, minio.GetObjectOptions{})
		if err != nil {
			return nil, err
		}
		defer reader.Close()

		return io.ReadAll(reader)
	})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to download %s: %w", objectName, err)
	}

	// callers sharing a download must not see each other's mutations
	data := result.([]byte)
	return append([]byte(nil), data...), nil
}

// Modified returns the object's last-modified time in unix nanoseconds.
func (o *ObjectStore) Modified(ctx context.Context, name string) (int64, error) {
	objectName := o.objectName(name)

	info, err := o.client.StatObject(ctx, o.bucket, objectName, minio.StatObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return 0, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return 0, fmt.Errorf("failed to stat %s: %w", objectName, err)
	}
	return info.LastModified.UnixNano(), nil
}
