//go:generate mockgen -source=interfaces.go -destination=../mock/installer_mock.go -package=mock

package installer

import (
	"context"

	"github.com/MKhiriev/go-module-installer/models"
)

// Installer installs, upgrades and uninstalls the database part of a module.
//
// The Can* methods are evaluated against current state on every call. The
// action methods fail with an error wrapping [ErrInvalidOperation] when the
// matching Can* check is false.
type Installer interface {
	CanInstall() bool
	CanUpgrade() bool
	CanUninstall() bool

	Install(ctx context.Context) error
	Upgrade(ctx context.Context) error
	Uninstall(ctx context.Context) error
}

// VersionReader looks up the version of a module recorded in the database.
// ok is false when the module has never been installed.
type VersionReader interface {
	InstalledVersion(ctx context.Context, moduleName string) (version models.ModuleVersion, ok bool, err error)
}

// ScriptExecutor runs one SQL script file against the configured database.
type ScriptExecutor interface {
	ExecuteScript(ctx context.Context, path string) error
}
