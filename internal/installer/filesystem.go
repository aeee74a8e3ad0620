package installer

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-module-installer/internal/logger"
	"github.com/MKhiriev/go-module-installer/models"
)

// FileSystemInstaller runs the SQL scripts of a [ScriptCatalog].
//
// The recorded version is read once at construction and advanced in memory
// while upgrade scripts succeed. Scripts are expected to update the
// persistent version row themselves.
type FileSystemInstaller struct {
	catalog  *ScriptCatalog
	module   *Module
	executor ScriptExecutor

	recorded    models.ModuleVersion
	hasRecorded bool

	logger *logger.Logger
}

// NewFileSystemInstaller catalogues scriptsDir and, when module is not nil,
// reads the version recorded for it through versions.
func NewFileSystemInstaller(
	ctx context.Context,
	scriptsDir string,
	module *Module,
	versions VersionReader,
	executor ScriptExecutor,
	log *logger.Logger,
) (*FileSystemInstaller, error) {
	catalog, err := BuildScriptCatalog(scriptsDir, log)
	if err != nil {
		return nil, err
	}

	fsi := &FileSystemInstaller{
		catalog:  catalog,
		module:   module,
		executor: executor,
		logger:   log,
	}

	if module != nil {
		fsi.recorded, fsi.hasRecorded, err = versions.InstalledVersion(ctx, module.Name)
		if err != nil {
			return nil, fmt.Errorf("error reading installed version of %s: %w", module.Name, err)
		}
	}

	log.Debug().
		Str("dir", scriptsDir).
		Bool("recorded", fsi.hasRecorded).
		Stringer("recorded_version", fsi.recorded).
		Msg("file system installer created")

	return fsi, nil
}

// Catalog returns the scripts the installer works with.
func (f *FileSystemInstaller) Catalog() *ScriptCatalog {
	return f.catalog
}

// RecordedVersion returns the version the installer currently tracks.
func (f *FileSystemInstaller) RecordedVersion() (models.ModuleVersion, bool) {
	return f.recorded, f.hasRecorded
}

// CanInstall is true when no version is recorded and install.sql exists.
func (f *FileSystemInstaller) CanInstall() bool {
	_, hasScript := f.catalog.InstallScript()
	return !f.hasRecorded && hasScript
}

// CanUpgrade is true when the recorded version is below the highest upgrade
// script and the module version reaches at least that script's version.
func (f *FileSystemInstaller) CanUpgrade() bool {
	if f.module == nil || !f.hasRecorded {
		return false
	}

	highest, ok := f.catalog.Highest()
	if !ok {
		return false
	}

	return f.recorded.Less(highest.Version) && !f.module.Version.Less(highest.Version)
}

// CanUninstall is true for a known module with an uninstall.sql.
func (f *FileSystemInstaller) CanUninstall() bool {
	_, hasScript := f.catalog.UninstallScript()
	return f.module != nil && hasScript
}

// Install runs install.sql once.
func (f *FileSystemInstaller) Install(ctx context.Context) error {
	if !f.CanInstall() {
		return invalidOperation("install", f.catalog.Dir())
	}

	script, _ := f.catalog.InstallScript()
	logger.FromContext(ctx).Info().Str("script", script).Msg("installing module")

	return f.executor.ExecuteScript(ctx, script)
}

// Upgrade runs every upgrade script newer than the tracked version in
// ascending order and stops at the first failing script.
func (f *FileSystemInstaller) Upgrade(ctx context.Context) error {
	if !f.CanUpgrade() {
		return invalidOperation("upgrade", f.catalog.Dir())
	}

	log := logger.FromContext(ctx)
	log.Info().Str("module", f.module.Name).Stringer("from", f.recorded).Msg("upgrading module")

	reached, err := ApplyUpgrades(f.recorded, f.catalog.Upgrades(), func(step UpgradeStep) error {
		log.Info().Str("script", step.Script).Stringer("version", step.Version).Msg("running upgrade script")
		return f.executor.ExecuteScript(ctx, step.Script)
	})
	f.recorded = reached

	return err
}

// Uninstall runs uninstall.sql once.
func (f *FileSystemInstaller) Uninstall(ctx context.Context) error {
	if !f.CanUninstall() {
		return invalidOperation("uninstall", f.catalog.Dir())
	}

	script, _ := f.catalog.UninstallScript()
	logger.FromContext(ctx).Info().Str("script", script).Msg("uninstalling module")

	return f.executor.ExecuteScript(ctx, script)
}
