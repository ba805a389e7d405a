// Package blob abstracts the sink for uploaded photo bytes. Objects are
// addressed by the owning photo's generated id; the database row is the
// source of truth and the blob is content keyed off it.
package blob

import (
	"context"
	"fmt"
	"io"
)

// PutOptions carries optional object metadata.
type PutOptions struct {
	ContentType string
}

// Store is a minimal blob sink: a filesystem directory or an S3-compatible
// bucket, selected by configuration.
type Store interface {
	// Put writes the object at key, replacing any previous content.
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) error
	// Delete removes the object at key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Ping verifies the sink is reachable and writable enough to serve uploads.
	Ping(ctx context.Context) error
}

// PhotoKey maps a photo id to its object key.
func PhotoKey(photoID uint64) string {
	return fmt.Sprintf("photos/%d", photoID)
}
