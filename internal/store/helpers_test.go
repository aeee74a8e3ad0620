package store

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-module-installer/internal/logger"
)

// newMockDB wraps a sqlmock connection. Scripts are matched literally, so
// exactQueries switches the matcher from regexp to equality.
func newMockDB(t *testing.T, dbType DatabaseType, exactQueries bool) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	var (
		conn *sql.DB
		mock sqlmock.Sqlmock
		err  error
	)
	if exactQueries {
		conn, mock, err = sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	} else {
		conn, mock, err = sqlmock.New()
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db := &DB{DB: conn, dbType: dbType, logger: logger.Nop()}
	switch dbType {
	case SQLite:
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.errorClassificator = NewPostgresErrorClassifier()
	}
	return db, mock
}
