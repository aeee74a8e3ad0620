package installer

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-module-installer/internal/logger"
	"github.com/MKhiriev/go-module-installer/models"
)

// Dependencies are the collaborators a [ModuleInstaller] needs.
type Dependencies struct {
	// Versions reads the version recorded for a module.
	Versions VersionReader
	// Executor runs SQL scripts.
	Executor ScriptExecutor
	// DatabaseType selects the scripts subdirectory, e.g. "postgresql".
	DatabaseType string
	// Logger receives construction diagnostics. Nil means no logging.
	Logger *logger.Logger
}

// ModuleInstaller installs, upgrades and uninstalls the database part of one
// module. One instance serves one session.
type ModuleInstaller struct {
	installRoot string
	module      *Module

	currentVersion    models.ModuleVersion
	hasCurrentVersion bool

	installer Installer
	logger    *logger.Logger
}

// NewModuleInstaller prepares a session for the scripts under installRoot.
//
// module may be nil: the session then only offers a fresh install through
// the file-system installer. With a module, the version recorded for it is
// read and its custom installers are combined with the file-system one.
func NewModuleInstaller(ctx context.Context, installRoot string, module *Module, deps Dependencies) (*ModuleInstaller, error) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	m := &ModuleInstaller{
		installRoot: installRoot,
		module:      module,
		logger:      log,
	}

	if module != nil {
		var err error
		m.currentVersion, m.hasCurrentVersion, err = deps.Versions.InstalledVersion(ctx, module.Name)
		if err != nil {
			log.Err(err).Str("module", module.Name).Msg("error reading installed module version")
			return nil, fmt.Errorf("error reading installed version of %s: %w", module.Name, err)
		}
	}

	scriptsDir := ScriptsDirectory(installRoot, deps.DatabaseType)
	primary, err := NewFileSystemInstaller(ctx, scriptsDir, module, deps.Versions, deps.Executor, log)
	if err != nil {
		return nil, err
	}

	if module == nil {
		m.installer = primary
		return m, nil
	}

	m.installer, err = NewComposite(primary, m.customInstallers()...)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// customInstallers instantiates the installers registered by the module.
// Failing factories are skipped with a warning.
func (m *ModuleInstaller) customInstallers() []Installer {
	installers := make([]Installer, 0, len(m.module.Installers))
	for i, factory := range m.module.Installers {
		if factory == nil {
			continue
		}

		inst, err := factory()
		switch {
		case err != nil:
			m.logger.Warn().Err(err).Str("module", m.module.Name).Int("index", i).Msg("custom installer could not be created, skipping")
			continue
		case inst == nil:
			m.logger.Warn().Str("module", m.module.Name).Int("index", i).Msg("custom installer factory returned nil, skipping")
			continue
		}

		if _, self := inst.(*ModuleInstaller); self {
			m.logger.Warn().Str("module", m.module.Name).Int("index", i).Msg("module installer registered as its own custom installer, skipping")
			continue
		}

		installers = append(installers, inst)
	}

	m.logger.Debug().Str("module", m.module.Name).Int("custom_installers", len(installers)).Msg("custom installers loaded")
	return installers
}

// CurrentVersionInDatabase returns the version recorded for the module when
// the session started. ok is false for a module that was never installed or
// when no module was given.
func (m *ModuleInstaller) CurrentVersionInDatabase() (models.ModuleVersion, bool) {
	return m.currentVersion, m.hasCurrentVersion
}

// NewDescriptorVersion returns the version the module declares.
func (m *ModuleInstaller) NewDescriptorVersion() (models.ModuleVersion, bool) {
	if m.module == nil {
		return models.ModuleVersion{}, false
	}
	return m.module.Version, true
}

// InstallRoot returns the directory the session was created for.
func (m *ModuleInstaller) InstallRoot() string {
	return m.installRoot
}

func (m *ModuleInstaller) CanInstall() bool {
	return m.installer.CanInstall()
}

func (m *ModuleInstaller) CanUpgrade() bool {
	return m.installer.CanUpgrade()
}

func (m *ModuleInstaller) CanUninstall() bool {
	return m.installer.CanUninstall()
}

// Install installs the module or returns an [*OperationError] when
// CanInstall is false.
func (m *ModuleInstaller) Install(ctx context.Context) error {
	if !m.CanInstall() {
		return invalidOperation("install", m.installRoot)
	}
	return m.installer.Install(ctx)
}

// Upgrade upgrades the module or returns an [*OperationError] when
// CanUpgrade is false.
func (m *ModuleInstaller) Upgrade(ctx context.Context) error {
	if !m.CanUpgrade() {
		return invalidOperation("upgrade", m.installRoot)
	}
	return m.installer.Upgrade(ctx)
}

// Uninstall uninstalls the module or returns an [*OperationError] when
// CanUninstall is false.
func (m *ModuleInstaller) Uninstall(ctx context.Context) error {
	if !m.CanUninstall() {
		return invalidOperation("uninstall", m.installRoot)
	}
	return m.installer.Uninstall(ctx)
}
