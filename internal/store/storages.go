package store

import "github.com/MKhiriev/go-module-installer/internal/logger"

// Storages groups the database collaborators of the installer.
type Storages struct {
	Versions VersionRepository
	Scripts  ScriptExecutor
}

// NewStorages builds every storage over one connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Versions: NewVersionRepository(db, logger),
		Scripts:  NewScriptExecutor(db, logger),
	}
}
