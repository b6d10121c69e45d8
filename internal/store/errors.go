package store

import "errors"

// Sentinel errors returned by buckets. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrObjectNotFound is returned by [Bucket.Get] when the key has no
	// stored object.
	ErrObjectNotFound = errors.New("object not found")

	// ErrUnexpectedStatus is returned by the HTTP bucket when the origin
	// answers with a status other than 2xx or 404.
	ErrUnexpectedStatus = errors.New("unexpected storage response status")

	// ErrObjectsTableMissing is returned by SQL buckets whose database has no
	// objects table (migrations were not applied).
	ErrObjectsTableMissing = errors.New("objects table does not exist")

	// ErrConnectionLost is returned by SQL buckets when the database
	// connection failed or was dropped.
	ErrConnectionLost = errors.New("database connection lost")
)

// Errors returned while opening bucket bindings.
var (
	// ErrUnsupportedScheme is returned when a bucket URL uses a scheme no
	// backend is registered for.
	ErrUnsupportedScheme = errors.New("unsupported bucket url scheme")

	// ErrInvalidBucketURL is returned when a bucket URL cannot be parsed or
	// misses a required part (host, path).
	ErrInvalidBucketURL = errors.New("invalid bucket url")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan object row")
)
