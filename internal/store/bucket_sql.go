package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/YOKO3227/Webtoon/internal/logger"
)

const (
	objectsTable      = "objects"
	columnObjectKey   = "object_key"
	columnContentType = "content_type"
	columnData        = "data"
)

// SQLBucket serves objects stored as rows of the objects table. Get only
// reads the content type; the blob column is selected by ReadAll.
type SQLBucket struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLBucket constructs a [Bucket] backed by db.
func NewSQLBucket(db *DB, log *logger.Logger) *SQLBucket {
	log.Debug().Str("dialect", string(db.dialect)).Msg("creating sql bucket")
	return &SQLBucket{db: db, logger: log}
}

func (b *SQLBucket) Get(ctx context.Context, key string) (Object, error) {
	log := logger.FromContext(ctx)

	query, args, err := b.db.builder.
		Select(columnContentType).
		From(objectsTable).
		Where(columnObjectKey+" = ?", key).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*SQLBucket.Get").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var contentType sql.NullString
	if err = b.db.QueryRowContext(ctx, query, args...).Scan(&contentType); err != nil {
		return nil, b.mapError(ctx, "*SQLBucket.Get", key, err)
	}

	return &object{
		key:         key,
		contentType: contentType.String,
		read: func(ctx context.Context) ([]byte, error) {
			return b.readData(ctx, key)
		},
	}, nil
}

func (b *SQLBucket) readData(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := b.db.builder.
		Select(columnData).
		From(objectsTable).
		Where(columnObjectKey+" = ?", key).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*SQLBucket.readData").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var data []byte
	if err = b.db.QueryRowContext(ctx, query, args...).Scan(&data); err != nil {
		return nil, b.mapError(ctx, "*SQLBucket.readData", key, err)
	}

	return data, nil
}

func (b *SQLBucket) mapError(ctx context.Context, fn, key string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}

	logger.FromContext(ctx).Err(err).Str("func", fn).Str("key", key).Msg("error querying object")

	switch b.db.errorClassificator.Classify(err) {
	case UndefinedTable:
		return fmt.Errorf("%w: %w", ErrObjectsTableMissing, err)
	case ConnectionLost:
		return fmt.Errorf("%w: %w", ErrConnectionLost, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// Close closes the underlying database handle.
func (b *SQLBucket) Close() error {
	return b.db.Close()
}
