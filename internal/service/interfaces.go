package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-module-installer/models"
)

// Session is an install session prepared for one module, such as
// *installer.ModuleInstaller.
type Session interface {
	CanInstall() bool
	CanUpgrade() bool
	CanUninstall() bool

	Install(ctx context.Context) error
	Upgrade(ctx context.Context) error
	Uninstall(ctx context.Context) error

	CurrentVersionInDatabase() (models.ModuleVersion, bool)
	NewDescriptorVersion() (models.ModuleVersion, bool)
}

type ModuleService interface {
	// Run performs action against the session. ActionStatus performs nothing
	// and only logs the status.
	Run(ctx context.Context, action models.InstallAction) error
	// Status reports versions and capabilities of the session.
	Status(ctx context.Context) models.ModuleStatus
}
