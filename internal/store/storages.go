package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/YOKO3227/Webtoon/internal/config"
	"github.com/YOKO3227/Webtoon/internal/logger"
)

// bindingNameTransforms are the candidate spellings tried, in order, when a
// request names a bucket.
var bindingNameTransforms = []func(string) string{
	func(name string) string { return name },
	func(name string) string { return strings.ReplaceAll(strings.ToUpper(name), "-", "_") },
	func(name string) string { return strings.ReplaceAll(strings.ToLower(name), "-", "_") },
}

// Buckets is the registry of bound buckets. It implements [BucketResolver].
type Buckets struct {
	bindings map[string]Bucket
	closers  []io.Closer
}

// NewBuckets opens every binding in cfg.Buckets. On failure the buckets
// opened so far are closed.
func NewBuckets(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Buckets, error) {
	buckets := NewBucketsFrom(nil)

	for name, rawURL := range cfg.Buckets {
		bucket, err := openBucket(ctx, rawURL, cfg, log.GetChildLogger())
		if err != nil {
			log.Err(err).Str("bucket", name).Msg("error opening bucket")
			return nil, errors.Join(fmt.Errorf("bucket %q: %w", name, err), buckets.Close())
		}

		buckets.bindings[name] = bucket
		if closer, ok := bucket.(io.Closer); ok {
			buckets.closers = append(buckets.closers, closer)
		}
		log.Info().Str("bucket", name).Msg("bucket bound")
	}

	return buckets, nil
}

// NewBucketsFrom builds a registry from already constructed buckets.
func NewBucketsFrom(bindings map[string]Bucket) *Buckets {
	b := &Buckets{bindings: make(map[string]Bucket, len(bindings))}
	for name, bucket := range bindings {
		b.bindings[name] = bucket
	}
	return b
}

// Resolve returns the first bucket bound under one of the candidate
// spellings of name, with the binding name that matched.
func (b *Buckets) Resolve(name string) (Bucket, string, bool) {
	for _, transform := range bindingNameTransforms {
		candidate := transform(name)
		if bucket, ok := b.bindings[candidate]; ok {
			return bucket, candidate, true
		}
	}

	return nil, "", false
}

// Close releases every bucket holding resources.
func (b *Buckets) Close() error {
	var errs []error
	for _, closer := range b.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	b.closers = nil

	return errors.Join(errs...)
}

func openBucket(ctx context.Context, rawURL string, cfg config.Storage, log *logger.Logger) (Bucket, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBucketURL, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "file":
		dir := u.Host + u.Path
		if dir == "" {
			return nil, fmt.Errorf("%w: file url needs a directory", ErrInvalidBucketURL)
		}
		bucket, err := NewFileBucket(dir, log)
		if err != nil {
			return nil, err
		}
		return bucket, nil
	case "http", "https":
		bucket, err := NewHTTPBucket(rawURL, cfg.HTTP.Timeout, log)
		if err != nil {
			return nil, err
		}
		return bucket, nil
	case "postgres", "postgresql", "sqlite", "sqlite3":
		db, err := NewConnectDB(ctx, rawURL, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return NewSQLBucket(db, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}
