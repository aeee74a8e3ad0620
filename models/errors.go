package models

import "errors"

var (
	// ErrInvalidModuleVersion is returned when a version string is not a
	// semantic version.
	ErrInvalidModuleVersion = errors.New("invalid module version")

	// ErrUnknownInstallAction is returned for an action name other than
	// install, upgrade, uninstall or status.
	ErrUnknownInstallAction = errors.New("unknown install action")
)
