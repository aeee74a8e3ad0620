// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-module-installer/models"
)

// validate checks that the merged [StructuredConfig] can drive a session:
// an install root and a database are required, the action must be known
// and a module name needs a parseable version.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Installer.RootDir) == "" {
		return fmt.Errorf("%w: install root directory is empty", ErrInvalidInstallerConfigs)
	}

	if _, err := models.ParseInstallAction(cfg.Installer.Action); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInstallerConfigs, err)
	}

	if cfg.Installer.ModuleName != "" {
		if _, err := models.ParseModuleVersion(cfg.Installer.ModuleVersion); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInstallerConfigs, err)
		}
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.DB.Type == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
