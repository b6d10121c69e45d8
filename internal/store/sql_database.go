package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/YOKO3227/Webtoon/internal/config"
	"github.com/YOKO3227/Webtoon/internal/logger"
	"github.com/YOKO3227/Webtoon/migrations"
)

// Dialect names a supported SQL backend. Its value is also the goose dialect
// and the database/sql driver name.
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite3"
)

// DB is a database handle bound to one dialect, with the matching query
// builder and error classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// NewConnectDB opens and pings the database behind a postgres:// or sqlite://
// bucket URL and, when cfg.Migrate is set, applies the schema migrations.
func NewConnectDB(ctx context.Context, rawURL string, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, dsn, err := parseDSN(rawURL)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(string(dialect), dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectDB").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectDB").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectDB").Str("dialect", string(dialect)).Msg("connected to database successfully")

	db := newDB(conn, dialect, log)
	if cfg.Migrate {
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewConnectDB").Msg("error migrating database")
			conn.Close()
			return nil, err
		}
	}

	return db, nil
}

// Migrate applies the embedded migrations for the handle's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// parseDSN maps a bucket URL to a driver and its data source name.
// postgres:// and postgresql:// URLs are passed to pgx unchanged;
// sqlite:///abs/path.db and sqlite://rel/path.db name a database file.
func parseDSN(rawURL string) (Dialect, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidBucketURL, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "postgres", "postgresql":
		return DialectPostgres, rawURL, nil
	case "sqlite", "sqlite3":
		path := u.Host + u.Path
		if path == "" {
			return "", "", fmt.Errorf("%w: sqlite url needs a file path", ErrInvalidBucketURL)
		}
		if u.RawQuery != "" {
			path += "?" + u.RawQuery
		}
		return DialectSQLite, "file:" + path, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}
