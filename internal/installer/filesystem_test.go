package installer

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-module-installer/internal/logger"
	"github.com/MKhiriev/go-module-installer/internal/mock"
	"github.com/MKhiriev/go-module-installer/models"
)

// newTestFSI builds a FileSystemInstaller over dir. recorded == nil means the
// module has no version row.
func newTestFSI(
	t *testing.T,
	ctrl *gomock.Controller,
	dir string,
	module *Module,
	recorded *models.ModuleVersion,
) (*FileSystemInstaller, *mock.MockScriptExecutor) {
	t.Helper()
	versions := mock.NewMockVersionReader(ctrl)
	executor := mock.NewMockScriptExecutor(ctrl)

	if module != nil {
		if recorded != nil {
			versions.EXPECT().InstalledVersion(gomock.Any(), module.Name).Return(*recorded, true, nil)
		} else {
			versions.EXPECT().InstalledVersion(gomock.Any(), module.Name).Return(models.ModuleVersion{}, false, nil)
		}
	}

	fsi, err := NewFileSystemInstaller(context.Background(), dir, module, versions, executor, logger.Nop())
	require.NoError(t, err)
	return fsi, executor
}

func ptr(ver models.ModuleVersion) *models.ModuleVersion {
	return &ver
}

// ── capabilities ─────────────────────────────────────────────────────────────

func TestFileSystemInstaller_Capabilities(t *testing.T) {
	articles := NewModule("articles", v(1, 1, 0))

	tests := []struct {
		name         string
		scripts      []string
		module       *Module
		recorded     *models.ModuleVersion
		canInstall   bool
		canUpgrade   bool
		canUninstall bool
	}{
		{
			name:       "install only, never installed",
			scripts:    []string{"install.sql"},
			module:     articles,
			canInstall: true,
		},
		{
			name:     "install only, already installed",
			scripts:  []string{"install.sql"},
			module:   articles,
			recorded: ptr(v(1, 0, 0)),
		},
		{
			name:       "install only, no module",
			scripts:    []string{"install.sql"},
			canInstall: true,
		},
		{
			name:       "upgrade scripts but no recorded version",
			scripts:    []string{"install.sql", "1.0.0.sql", "1.1.0.sql"},
			module:     articles,
			canInstall: true,
		},
		{
			name:       "recorded below highest script, module reaches it",
			scripts:    []string{"install.sql", "1.0.0.sql", "1.1.0.sql"},
			module:     articles,
			recorded:   ptr(v(0, 0, 0)),
			canUpgrade: true,
		},
		{
			name:     "module version below highest script",
			scripts:  []string{"1.0.0.sql", "1.1.0.sql", "1.2.0.sql"},
			module:   articles,
			recorded: ptr(v(1, 0, 0)),
		},
		{
			name:     "recorded equals highest script",
			scripts:  []string{"1.0.0.sql", "1.1.0.sql"},
			module:   articles,
			recorded: ptr(v(1, 1, 0)),
		},
		{
			name:     "recorded above highest script",
			scripts:  []string{"1.0.0.sql"},
			module:   articles,
			recorded: ptr(v(1, 0, 1)),
		},
		{
			name:     "no upgrade scripts",
			scripts:  []string{"install.sql"},
			module:   articles,
			recorded: ptr(v(0, 1, 0)),
		},
		{
			name:    "upgrade scripts without module",
			scripts: []string{"1.0.0.sql"},
		},
		{
			name:         "uninstall with module",
			scripts:      []string{"uninstall.sql"},
			module:       articles,
			recorded:     ptr(v(1, 0, 0)),
			canUninstall: true,
		},
		{
			name:    "uninstall without module",
			scripts: []string{"uninstall.sql"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dir := t.TempDir()
			writeScripts(t, dir, tt.scripts...)

			fsi, _ := newTestFSI(t, ctrl, dir, tt.module, tt.recorded)

			assert.Equal(t, tt.canInstall, fsi.CanInstall(), "CanInstall")
			assert.Equal(t, tt.canUpgrade, fsi.CanUpgrade(), "CanUpgrade")
			assert.Equal(t, tt.canUninstall, fsi.CanUninstall(), "CanUninstall")
		})
	}
}

func TestFileSystemInstaller_EmptyDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsi, _ := newTestFSI(t, ctrl, filepath.Join(t.TempDir(), "missing"), NewModule("m", v(1, 0, 0)), nil)

	assert.False(t, fsi.CanInstall())
	assert.False(t, fsi.CanUpgrade())
	assert.False(t, fsi.CanUninstall())
}

func TestNewFileSystemInstaller_VersionReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	versions := mock.NewMockVersionReader(ctrl)
	versions.EXPECT().InstalledVersion(gomock.Any(), "m").Return(models.ModuleVersion{}, false, assert.AnError)

	_, err := NewFileSystemInstaller(context.Background(), t.TempDir(), NewModule("m", v(1, 0, 0)), versions, mock.NewMockScriptExecutor(ctrl), logger.Nop())
	assert.ErrorIs(t, err, assert.AnError)
}

// ── Install ──────────────────────────────────────────────────────────────────

func TestFileSystemInstaller_Install_RunsOnlyInstallScript(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	writeScripts(t, dir, "install.sql", "uninstall.sql", "1.0.0.sql", "1.1.0.sql")

	fsi, executor := newTestFSI(t, ctrl, dir, NewModule("articles", v(1, 1, 0)), nil)
	executor.EXPECT().ExecuteScript(gomock.Any(), filepath.Join(dir, "install.sql")).Return(nil).Times(1)

	require.NoError(t, fsi.Install(context.Background()))
}

func TestFileSystemInstaller_Install_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	writeScripts(t, dir, "install.sql")

	fsi, _ := newTestFSI(t, ctrl, dir, NewModule("articles", v(1, 0, 0)), ptr(v(1, 0, 0)))

	err := fsi.Install(context.Background())
	require.ErrorIs(t, err, ErrInvalidOperation)
	assert.EqualError(t, err, "cannot install from "+dir)
}

func TestFileSystemInstaller_Install_PropagatesScriptError(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	writeScripts(t, dir, "install.sql")

	fsi, executor := newTestFSI(t, ctrl, dir, nil, nil)
	executor.EXPECT().ExecuteScript(gomock.Any(), gomock.Any()).Return(assert.AnError)

	assert.ErrorIs(t, fsi.Install(context.Background()), assert.AnError)
}

// ── Upgrade ──────────────────────────────────────────────────────────────────

func TestFileSystemInstaller_Upgrade_RunsScriptsAscending(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	writeScripts(t, dir, "1.1.0.sql", "0.9.0.sql", "1.0.0.sql", "install.sql")

	fsi, executor := newTestFSI(t, ctrl, dir, NewModule("articles", v(1, 1, 0)), ptr(v(0, 9, 0)))
	gomock.InOrder(
		executor.EXPECT().ExecuteScript(gomock.Any(), filepath.Join(dir, "1.0.0.sql")).Return(nil),
		executor.EXPECT().ExecuteScript(gomock.Any(), filepath.Join(dir, "1.1.0.sql")).Return(nil),
	)

	require.NoError(t, fsi.Upgrade(context.Background()))

	recorded, ok := fsi.RecordedVersion()
	assert.True(t, ok)
	assert.Equal(t, v(1, 1, 0), recorded)
}

// TestFileSystemInstaller_Upgrade_SecondCallRunsNothing verifies that once
// the tracked version reached the highest script nothing runs again.
func TestFileSystemInstaller_Upgrade_SecondCallRunsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	writeScripts(t, dir, "1.0.0.sql")

	fsi, executor := newTestFSI(t, ctrl, dir, NewModule("articles", v(1, 0, 0)), ptr(v(0, 0, 0)))
	executor.EXPECT().ExecuteScript(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	require.NoError(t, fsi.Upgrade(context.Background()))
	assert.False(t, fsi.CanUpgrade())
	assert.ErrorIs(t, fsi.Upgrade(context.Background()), ErrInvalidOperation)
}

func TestFileSystemInstaller_Upgrade_ResumesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	writeScripts(t, dir, "1.0.0.sql", "1.1.0.sql", "1.2.0.sql")
	failure := errors.New("syntax error")

	fsi, executor := newTestFSI(t, ctrl, dir, NewModule("articles", v(1, 2, 0)), ptr(v(0, 0, 0)))
	gomock.InOrder(
		executor.EXPECT().ExecuteScript(gomock.Any(), filepath.Join(dir, "1.0.0.sql")).Return(nil),
		executor.EXPECT().ExecuteScript(gomock.Any(), filepath.Join(dir, "1.1.0.sql")).Return(failure),
		executor.EXPECT().ExecuteScript(gomock.Any(), filepath.Join(dir, "1.1.0.sql")).Return(nil),
		executor.EXPECT().ExecuteScript(gomock.Any(), filepath.Join(dir, "1.2.0.sql")).Return(nil),
	)

	require.ErrorIs(t, fsi.Upgrade(context.Background()), failure)
	recorded, _ := fsi.RecordedVersion()
	assert.Equal(t, v(1, 0, 0), recorded)

	require.NoError(t, fsi.Upgrade(context.Background()))
	recorded, _ = fsi.RecordedVersion()
	assert.Equal(t, v(1, 2, 0), recorded)
}

func TestFileSystemInstaller_Upgrade_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	writeScripts(t, dir, "1.0.0.sql", "2.0.0.sql")

	fsi, _ := newTestFSI(t, ctrl, dir, NewModule("articles", v(1, 5, 0)), ptr(v(1, 0, 0)))

	err := fsi.Upgrade(context.Background())
	require.ErrorIs(t, err, ErrInvalidOperation)
	assert.EqualError(t, err, "cannot upgrade from "+dir)
}

// ── Uninstall ────────────────────────────────────────────────────────────────

func TestFileSystemInstaller_Uninstall(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	writeScripts(t, dir, "install.sql", "uninstall.sql")

	fsi, executor := newTestFSI(t, ctrl, dir, NewModule("articles", v(1, 0, 0)), ptr(v(1, 0, 0)))
	executor.EXPECT().ExecuteScript(gomock.Any(), filepath.Join(dir, "uninstall.sql")).Return(nil).Times(1)

	require.NoError(t, fsi.Uninstall(context.Background()))
}

func TestFileSystemInstaller_Uninstall_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	writeScripts(t, dir, "install.sql")

	fsi, _ := newTestFSI(t, ctrl, dir, NewModule("articles", v(1, 0, 0)), ptr(v(1, 0, 0)))

	err := fsi.Uninstall(context.Background())
	require.ErrorIs(t, err, ErrInvalidOperation)
	assert.EqualError(t, err, "cannot uninstall from "+dir)
}
