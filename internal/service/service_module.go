package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-module-installer/internal/logger"
	"github.com/MKhiriev/go-module-installer/internal/utils"
	"github.com/MKhiriev/go-module-installer/models"
)

type moduleService struct {
	session    Session
	moduleName string
	ids        *utils.UUIDGenerator

	logger *logger.Logger
}

func NewModuleService(session Session, moduleName string, logger *logger.Logger) (ModuleService, error) {
	if session == nil {
		return nil, ErrNoSession
	}

	return &moduleService{
		session:    session,
		moduleName: moduleName,
		ids:        utils.NewUUIDGenerator(),
		logger:     logger,
	}, nil
}

func (s *moduleService) Run(ctx context.Context, action models.InstallAction) error {
	sessionID := s.ids.Generate()
	log := s.logger.With("session", sessionID).With("action", string(action))
	if s.moduleName != "" {
		log = log.With("module", s.moduleName)
	}
	ctx = log.WithContext(utils.WithSessionID(ctx, sessionID))

	var run func(context.Context) error
	switch action {
	case models.ActionInstall:
		run = s.session.Install
	case models.ActionUpgrade:
		run = s.session.Upgrade
	case models.ActionUninstall:
		run = s.session.Uninstall
	case models.ActionStatus:
		s.logStatus(log, s.Status(ctx))
		return nil
	default:
		log.Error().Msg("unknown action requested")
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	log.Info().Msg("action started")
	start := time.Now()

	if err := run(ctx); err != nil {
		log.Err(err).Dur("elapsed", time.Since(start)).Msg("action failed")
		return err
	}

	log.Info().Dur("elapsed", time.Since(start)).Msg("action finished")
	return nil
}

func (s *moduleService) Status(ctx context.Context) models.ModuleStatus {
	status := models.ModuleStatus{
		ModuleName:   s.moduleName,
		CanInstall:   s.session.CanInstall(),
		CanUpgrade:   s.session.CanUpgrade(),
		CanUninstall: s.session.CanUninstall(),
	}
	status.InstalledVersion, status.Installed = s.session.CurrentVersionInDatabase()
	status.DeclaredVersion, status.HasDescriptor = s.session.NewDescriptorVersion()

	return status
}

func (s *moduleService) logStatus(log *logger.Logger, status models.ModuleStatus) {
	event := log.Info().
		Bool("installed", status.Installed).
		Bool("has_descriptor", status.HasDescriptor).
		Bool("can_install", status.CanInstall).
		Bool("can_upgrade", status.CanUpgrade).
		Bool("can_uninstall", status.CanUninstall)
	if status.Installed {
		event = event.Stringer("installed_version", status.InstalledVersion)
	}
	if status.HasDescriptor {
		event = event.Stringer("declared_version", status.DeclaredVersion)
	}
	event.Msg("module status")
}
