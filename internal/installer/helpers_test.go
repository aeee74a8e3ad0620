package installer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-module-installer/models"
)

// writeScripts creates dir and an empty file for every name.
func writeScripts(t *testing.T, dir string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- "+name), 0o644))
	}
}

func v(major, minor, patch int) models.ModuleVersion {
	return models.NewModuleVersion(major, minor, patch)
}

func versionsOf(steps []UpgradeStep) []models.ModuleVersion {
	out := make([]models.ModuleVersion, 0, len(steps))
	for _, s := range steps {
		out = append(out, s.Version)
	}
	return out
}
