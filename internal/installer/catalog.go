package installer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-module-installer/internal/logger"
	"github.com/MKhiriev/go-module-installer/models"
)

const (
	scriptExtension     = ".sql"
	installScriptName   = "install.sql"
	uninstallScriptName = "uninstall.sql"
	databaseSubDir      = "Database"
)

// UpgradeStep is an upgrade script together with the schema version it
// brings the module to.
type UpgradeStep struct {
	Version models.ModuleVersion
	Script  string
}

// ScriptCatalog is the set of SQL scripts found in one scripts directory.
// Upgrade steps are sorted ascending by version and versions are unique.
type ScriptCatalog struct {
	dir       string
	install   string
	uninstall string
	upgrades  []UpgradeStep
}

// ScriptsDirectory returns <installRoot>/Database/<databaseType> with the
// database type lower-cased.
func ScriptsDirectory(installRoot, databaseType string) string {
	return filepath.Join(installRoot, databaseSubDir, strings.ToLower(databaseType))
}

// BuildScriptCatalog scans dir for *.sql files.
//
// A missing directory yields an empty catalog. install.sql and
// uninstall.sql are matched case-insensitively; every other script must be
// named <major>.<minor>.<patch>.sql or it is skipped with a warning. When two
// files map to the same version the one listed last wins.
func BuildScriptCatalog(dir string, log *logger.Logger) (*ScriptCatalog, error) {
	catalog := &ScriptCatalog{dir: dir}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("dir", dir).Msg("scripts directory does not exist, catalog is empty")
			return catalog, nil
		}
		return nil, fmt.Errorf("error reading scripts directory %s: %w", dir, err)
	}

	byVersion := make(map[models.ModuleVersion]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		lower := strings.ToLower(name)
		if !strings.HasSuffix(lower, scriptExtension) {
			continue
		}

		path := filepath.Join(dir, name)
		switch lower {
		case installScriptName:
			catalog.install = path
		case uninstallScriptName:
			catalog.uninstall = path
		default:
			version, ok := versionFromScriptName(name)
			if !ok {
				log.Warn().Str("dir", dir).Str("file", name).Msg("invalid SQL script file name, skipping")
				continue
			}
			byVersion[version] = path
		}
	}

	catalog.upgrades = make([]UpgradeStep, 0, len(byVersion))
	for version, script := range byVersion {
		catalog.upgrades = append(catalog.upgrades, UpgradeStep{Version: version, Script: script})
	}
	slices.SortFunc(catalog.upgrades, func(a, b UpgradeStep) int {
		return a.Version.Compare(b.Version)
	})

	log.Debug().
		Str("dir", dir).
		Bool("install", catalog.install != "").
		Bool("uninstall", catalog.uninstall != "").
		Int("upgrades", len(catalog.upgrades)).
		Msg("script catalog built")

	return catalog, nil
}

// versionFromScriptName parses "<major>.<minor>.<patch>.sql".
func versionFromScriptName(name string) (models.ModuleVersion, bool) {
	tokens := strings.Split(name, ".")
	if len(tokens) != 4 || !strings.EqualFold(tokens[3], "sql") {
		return models.ModuleVersion{}, false
	}

	parts := make([]int, 0, 3)
	for _, token := range tokens[:3] {
		n, err := strconv.ParseUint(token, 10, 31)
		if err != nil {
			return models.ModuleVersion{}, false
		}
		parts = append(parts, int(n))
	}

	return models.NewModuleVersion(parts[0], parts[1], parts[2]), true
}

// Dir returns the scanned directory.
func (c *ScriptCatalog) Dir() string {
	return c.dir
}

// InstallScript returns the path of install.sql, if present.
func (c *ScriptCatalog) InstallScript() (string, bool) {
	return c.install, c.install != ""
}

// UninstallScript returns the path of uninstall.sql, if present.
func (c *ScriptCatalog) UninstallScript() (string, bool) {
	return c.uninstall, c.uninstall != ""
}

// Upgrades returns a copy of the ascending upgrade steps.
func (c *ScriptCatalog) Upgrades() []UpgradeStep {
	return slices.Clone(c.upgrades)
}

// Highest returns the upgrade step with the highest version.
func (c *ScriptCatalog) Highest() (UpgradeStep, bool) {
	if len(c.upgrades) == 0 {
		return UpgradeStep{}, false
	}
	return c.upgrades[len(c.upgrades)-1], true
}
