package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-module-installer/internal/logger"
	"github.com/MKhiriev/go-module-installer/models"
)

const moduleVersionsTable = "module_versions"

// versionRepository is the [VersionRepository] over the module_versions
// table created by the migrations package.
type versionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewVersionRepository constructs a [VersionRepository] backed by db.
func NewVersionRepository(db *DB, logger *logger.Logger) VersionRepository {
	logger.Debug().Msg("creating version repository")
	return &versionRepository{
		db:     db,
		logger: logger,
	}
}

// InstalledVersion returns the version recorded for moduleName.
//
// A missing row, and a missing module_versions table, both mean the module
// was never installed: ok is false and err is nil.
func (r *versionRepository) InstalledVersion(ctx context.Context, moduleName string) (models.ModuleVersion, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectInstalledVersionQuery(r.db.Type(), moduleName)
	if err != nil {
		log.Err(err).Str("func", "*versionRepository.InstalledVersion").Msg("error building query")
		return models.ModuleVersion{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var major, minor, patch int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&major, &minor, &patch)
	switch {
	case err == nil:
		return models.NewModuleVersion(major, minor, patch), true, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.ModuleVersion{}, false, nil
	case r.isUndefinedTable(err):
		log.Debug().Str("module", moduleName).Msg("module_versions table does not exist, module is not installed")
		return models.ModuleVersion{}, false, nil
	default:
		log.Err(err).Str("func", "*versionRepository.InstalledVersion").Str("module", moduleName).Msg("error reading module version")
		return models.ModuleVersion{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (r *versionRepository) isUndefinedTable(err error) bool {
	if r.db.Type() == SQLite {
		return strings.Contains(err.Error(), "no such table")
	}
	return postgresError(err) == pgerrcode.UndefinedTable
}

func buildSelectInstalledVersionQuery(dbType DatabaseType, moduleName string) (string, []any, error) {
	return sq.Select("major", "minor", "patch").
		From(moduleVersionsTable).
		Where(sq.Eq{"module_name": moduleName}).
		PlaceholderFormat(dbType.placeholder()).
		ToSql()
}
