// Package storage holds the S3-compatible object store used for founder pictures and startup logos.
// Uploads stream straight through; nothing touches local disk.
package storage

import (
	"context"
	"io"
	"time"
)

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known, or -1 to let the backend chunk the stream.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
	Metadata    map[string]string
}

// Storage is the object store contract. Implementations must be safe for concurrent use.
type Storage interface {
	// Put uploads an object under the given key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	// Ping reports whether the bucket is reachable.
	Ping(ctx context.Context) error
}
