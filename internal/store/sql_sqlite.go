package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/MKhiriev/go-pass-bot/internal/config"
	"github.com/MKhiriev/go-pass-bot/internal/logger"
	"github.com/MKhiriev/go-pass-bot/migrations"
)

var sqlitePragmas = []string{
	"PRAGMA journal_mode = WAL;",
	"PRAGMA synchronous = NORMAL;",
	"PRAGMA busy_timeout = 5000;",
}

// NewConnectSQLite opens a SQLite database with either the cgo driver
// ("sqlite3") or the pure Go one ("sqlite"). The pool is limited to a single
// connection so writers never interleave.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}

	for _, pragma := range sqlitePragmas {
		if _, err = conn.ExecContext(ctx, pragma); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Str("pragma", pragma).Msg("error setting pragma")
			conn.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("driver", cfg.Driver).Msg("connected to database successfully")

	classifier := ErrorClassifier(mattnErrorClassifier{})
	if cfg.Driver == config.DriverSQLitePureGo {
		classifier = moderncErrorClassifier{}
	}

	return &DB{
		DB:         conn,
		dialect:    migrations.DialectSQLite,
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Question),
		classifier: classifier,
		logger:     log,
	}, nil
}

// createLocalDBFileIfNotExists creates an empty database file so that a
// missing parent directory is reported before the driver opens it.
// In-memory and URI DSNs are left alone.
func createLocalDBFileIfNotExists(dsn string) error {
	if dsn == "" || dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return nil
	}

	if _, err := os.Stat(dsn); os.IsNotExist(err) {
		f, err := os.OpenFile(dsn, os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		return f.Close()
	}

	return nil
}
