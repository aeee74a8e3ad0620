package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-module-installer/internal/config"
	"github.com/MKhiriev/go-module-installer/internal/logger"
	"github.com/MKhiriev/go-module-installer/migrations"
	"github.com/MKhiriev/go-module-installer/models"
)

func newSQLiteStorages(t *testing.T) (*DB, *Storages) {
	t.Helper()
	ctx := context.Background()

	db, err := NewConnect(ctx, config.DB{Type: "sqlite", DSN: filepath.Join(t.TempDir(), "modules.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db, NewStorages(db, logger.Nop())
}

func TestNewConnectSQLite_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.db")

	db, err := NewConnectSQLite(context.Background(), path, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, SQLite, db.Type())
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestNewConnect_UnsupportedType(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Type: "oracle", DSN: "x"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDatabaseType)
}

// TestSQLite_ScriptsMaintainVersionRow runs scripts that record their own
// version and reads it back through the repository.
func TestSQLite_ScriptsMaintainVersionRow(t *testing.T) {
	ctx := context.Background()
	db, storages := newSQLiteStorages(t)

	// before migrating the table is missing: not installed
	_, ok, err := storages.Versions.InstalledVersion(ctx, "articles")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, migrations.Migrate(db.DB, db.Type().GooseDialect()))

	install := writeScript(t, `
CREATE TABLE articles (id INTEGER PRIMARY KEY, title TEXT NOT NULL);
INSERT INTO module_versions (module_name, major, minor, patch) VALUES ('articles', 1, 0, 0);
`)
	require.NoError(t, storages.Scripts.ExecuteScript(ctx, install))

	version, ok, err := storages.Versions.InstalledVersion(ctx, "articles")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, models.NewModuleVersion(1, 0, 0), version)
}

// TestSQLite_FailingScriptIsRolledBack verifies that statements before the
// failing one inside the same script are not kept.
func TestSQLite_FailingScriptIsRolledBack(t *testing.T) {
	ctx := context.Background()
	db, storages := newSQLiteStorages(t)
	require.NoError(t, migrations.Migrate(db.DB, db.Type().GooseDialect()))

	broken := writeScript(t, `
INSERT INTO module_versions (module_name, major, minor, patch) VALUES ('articles', 2, 0, 0);
INSERT INTO no_such_table VALUES (1);
`)
	err := storages.Scripts.ExecuteScript(ctx, broken)
	require.ErrorIs(t, err, ErrExecutingScript)

	_, ok, err := storages.Versions.InstalledVersion(ctx, "articles")
	require.NoError(t, err)
	assert.False(t, ok)
}
