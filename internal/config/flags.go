package config

import (
	"flag"
	"fmt"
)

// parseFlags parses the command line of the installer.
//
// Flags:
//
//	-root            module install root directory
//	-module          module name
//	-module-version  module version (1.2.3 or v1.2.3)
//	-action          install | upgrade | uninstall | status
//	-log-level       zerolog level name
//	-db-type         postgresql | sqlite
//	-d               database DSN
//	-c/-config       json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig

	fs := flag.NewFlagSet("modinstall", flag.ContinueOnError)
	fs.StringVar(&cfg.Installer.RootDir, "root", "", "Module install root directory")
	fs.StringVar(&cfg.Installer.ModuleName, "module", "", "Module name")
	fs.StringVar(&cfg.Installer.ModuleVersion, "module-version", "", "Module version (e.g. 1.2.3)")
	fs.StringVar(&cfg.Installer.Action, "action", "", "Action: install, upgrade, uninstall or status")
	fs.StringVar(&cfg.Installer.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.Storage.DB.Type, "db-type", "", "Database type: postgresql or sqlite")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &cfg, nil
}
