// Package storage holds the object store used for profile avatar images.
package storage

import (
	"context"
	"io"
)

// AvatarStorage uploads image bytes and returns a publicly reachable URL.
type AvatarStorage interface {
	EnsureBucket(ctx context.Context) error
	Upload(ctx context.Context, r io.Reader, size int64, contentType string) (string, error)
}
