package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidInstallerConfigs indicates invalid session settings
	// (for example, a missing install root or an unknown action).
	ErrInvalidInstallerConfigs = errors.New("invalid installer configuration")
	// ErrInvalidStorageConfigs indicates a missing database type or DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
