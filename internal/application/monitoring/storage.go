package monitoring

import (
	"context"
	"io"
	"time"
)

// ObjectStorage abstracts the S3-compatible backend screenshots are
// written to. Implementations live in infrastructure/storage.
type ObjectStorage interface {
	// PutObject uploads an object and returns its stable URL.
	// The upload must complete before any database record is written.
	PutObject(ctx context.Context, storageKey, contentType string, body io.Reader, size int64) (string, error)

	// DeleteObject deletes an object from storage
	DeleteObject(ctx context.Context, storageKey string) error

	// GenerateDownloadURL returns a presigned URL for an object along
	// with its expiry. A non-positive expiresIn uses the implementation's
	// configured default.
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)
}
