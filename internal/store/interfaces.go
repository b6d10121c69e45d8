package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Bucket is a read-only key→blob namespace bound under a logical name.
//
// Get returns a handle to the object stored under key, or an error matching
// [ErrObjectNotFound] when no such object exists. The object's bytes are not
// necessarily loaded until [Object.ReadAll] is called.
type Bucket interface {
	Get(ctx context.Context, key string) (Object, error)
}

// Object is a handle to a single stored blob.
type Object interface {
	// Key returns the exact key the object was fetched by.
	Key() string
	// ContentType returns the MIME type recorded by the backend, or "" when
	// the backend has none.
	ContentType() string
	// ReadAll materializes the object's bytes.
	ReadAll(ctx context.Context) ([]byte, error)
}

// BucketResolver looks up a bound bucket by its request-facing name.
type BucketResolver interface {
	Resolve(name string) (Bucket, string, bool)
}
