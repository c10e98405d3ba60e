package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has never been written. It is an
// expected outcome (first run, missing optional enrichment) and callers
// treat it as "no prior state", never as a fatal error.
var ErrNotFound = errors.New("key not found")

const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain"
)

// Blob is the key-value blob store contract. Put always overwrites the
// key; there is no versioning and no "already exists" failure mode.
// Each Put is atomic at the key level; there is no cross-key atomicity.
type Blob interface {
	Put(ctx context.Context, key string, value []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
}
