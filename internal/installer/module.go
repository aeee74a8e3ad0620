package installer

import "github.com/MKhiriev/go-module-installer/models"

// Factory creates a custom installer bundled with a module. Returning an
// error or a nil installer excludes it from the session.
type Factory func() (Installer, error)

// Module describes the module being installed, upgraded or uninstalled.
type Module struct {
	// Name is the stable module name the database records versions under.
	Name string
	// Version is the version the module code declares.
	Version models.ModuleVersion
	// Installers are the custom installers the module registers, in the
	// order they are combined after the file-system installer.
	Installers []Factory
}

// NewModule returns a module descriptor registering the given factories.
func NewModule(name string, version models.ModuleVersion, installers ...Factory) *Module {
	return &Module{
		Name:       name,
		Version:    version,
		Installers: installers,
	}
}
