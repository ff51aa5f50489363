// Package storage defines the ObjectStore interface for media object backends.
package storage

import (
	"context"
	"errors"
)

// UploadOptions controls a single object write.
type UploadOptions struct {
	// ContentType is sent to the backend; backends may reject types they
	// do not accept (see ErrUnsupportedMime).
	ContentType string
	// Upsert allows overwriting an existing object. The ingestion pipeline
	// always uploads with Upsert=false; an existing key is a collision.
	Upsert bool
}

// ObjectStore abstracts object storage operations.
type ObjectStore interface {
	// Upload writes data under key. With Upsert=false an existing object
	// yields ErrObjectExists.
	Upload(ctx context.Context, key string, data []byte, opts UploadOptions) error
	// PublicURL returns the stable, unauthenticated URL for a stored key.
	// It is derivable from bucket + key alone and never expires.
	PublicURL(key string) string
}

// Sentinel errors backends classify store rejections into. The media
// pipeline's retry policies dispatch on these via errors.Is.
var (
	// ErrObjectExists reports a write conflict on an existing key.
	ErrObjectExists = errors.New("storage: object already exists")
	// ErrUnsupportedMime reports the backend rejected the content type.
	ErrUnsupportedMime = errors.New("storage: content type not supported")
)
