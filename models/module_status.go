package models

// ModuleStatus is a snapshot of what an install session can do for a module.
type ModuleStatus struct {
	ModuleName string `json:"module_name,omitempty"`

	// Installed is false when no version row exists for the module.
	Installed        bool          `json:"installed"`
	InstalledVersion ModuleVersion `json:"installed_version"`

	// HasDescriptor is false for a session started without a module.
	HasDescriptor   bool          `json:"has_descriptor"`
	DeclaredVersion ModuleVersion `json:"declared_version"`

	CanInstall   bool `json:"can_install"`
	CanUpgrade   bool `json:"can_upgrade"`
	CanUninstall bool `json:"can_uninstall"`
}
