package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-module-installer/internal/config"
	"github.com/MKhiriev/go-module-installer/internal/logger"
)

// DatabaseType names a supported database engine. Its value is also the
// scripts subdirectory a module keeps its SQL under.
type DatabaseType string

const (
	PostgreSQL DatabaseType = "postgresql"
	SQLite     DatabaseType = "sqlite"
)

// ParseDatabaseType maps a configured engine name to a [DatabaseType].
func ParseDatabaseType(s string) (DatabaseType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "postgresql", "postgres", "pgx":
		return PostgreSQL, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDatabaseType, s)
	}
}

// GooseDialect returns the dialect name goose uses for the engine.
func (t DatabaseType) GooseDialect() string {
	if t == SQLite {
		return "sqlite3"
	}
	return "pgx"
}

func (t DatabaseType) placeholder() sq.PlaceholderFormat {
	if t == SQLite {
		return sq.Question
	}
	return sq.Dollar
}

// DB wraps a *sql.DB together with the engine it talks to.
type DB struct {
	*sql.DB
	dbType             DatabaseType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Type returns the engine behind the connection.
func (db *DB) Type() DatabaseType {
	return db.dbType
}

// NewConnect opens a connection to the engine named in cfg.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dbType, err := ParseDatabaseType(cfg.Type)
	if err != nil {
		return nil, err
	}

	switch dbType {
	case SQLite:
		return NewConnectSQLite(ctx, cfg.DSN, log)
	default:
		return NewConnectPostgres(ctx, cfg.DSN, log)
	}
}
