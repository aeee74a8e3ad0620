package store

import (
	"context"

	"github.com/MKhiriev/go-module-installer/models"
)

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// VersionRepository reads the version row a module's scripts maintain in
// the module_versions table.
type VersionRepository interface {
	InstalledVersion(ctx context.Context, moduleName string) (models.ModuleVersion, bool, error)
}

// ScriptExecutor runs a SQL script file against the database.
type ScriptExecutor interface {
	ExecuteScript(ctx context.Context, path string) error
}
