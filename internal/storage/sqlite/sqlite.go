// Package sqlite provides a SQLite-backed PersonRepository built on the pure Go
// modernc.org/sqlite driver. Schema is managed by goose from the embedded
// sqlite migrations.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/lueurxax/greeter/migrations"
)

const (
	driverName = "sqlite"
	// MemoryPath opens a private in-memory database.
	MemoryPath = ":memory:"
)

// goose keeps its base FS and dialect in package globals.
var migrateMu sync.Mutex

// DB wraps a SQLite handle.
type DB struct {
	conn   *sql.DB
	logger *zerolog.Logger
}

// Open opens (or creates) the database at path and runs migrations.
func Open(ctx context.Context, path string, logger *zerolog.Logger) (*DB, error) {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	conn, err := sql.Open(driverName, dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	// A second pooled connection to ":memory:" would see an empty database.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}

	db := &DB{conn: conn, logger: logger}
	if err := db.migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}

	logger.Debug().Str("path", path).Msg("sqlite database ready")

	return db, nil
}

func dsn(path string) string {
	if path == MemoryPath {
		return path
	}

	return path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

type gooseLogger struct {
	logger *zerolog.Logger
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Fatal().Msgf(format, v...)
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Debug().Msgf(format, v...)
}

func (db *DB) migrate(ctx context.Context) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(&gooseLogger{logger: db.logger})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db.conn, migrations.SQLiteDir); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// Ping checks the database handle.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("ping sqlite: %w", err)
	}

	return nil
}

// Close closes the database handle.
func (db *DB) Close() error {
	if err := db.conn.Close(); err != nil {
		return fmt.Errorf("close sqlite: %w", err)
	}

	return nil
}
