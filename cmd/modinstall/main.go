package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-module-installer/internal/config"
	"github.com/MKhiriev/go-module-installer/internal/installer"
	"github.com/MKhiriev/go-module-installer/internal/logger"
	"github.com/MKhiriev/go-module-installer/internal/service"
	"github.com/MKhiriev/go-module-installer/internal/store"
	"github.com/MKhiriev/go-module-installer/migrations"
	"github.com/MKhiriev/go-module-installer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("modinstall")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.Installer.LogLevel != "" && !logger.SetLevel(cfg.Installer.LogLevel) {
		log.Warn().Str("level", cfg.Installer.LogLevel).Msg("unknown log level, keeping debug")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		stop()
		log.Fatal().Err(err).Msg("module installer failed")
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	action, err := models.ParseInstallAction(cfg.Installer.Action)
	if err != nil {
		return err
	}

	module, err := moduleFromConfig(cfg.Installer)
	if err != nil {
		return err
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB, db.Type().GooseDialect()); err != nil {
		return err
	}

	storages := store.NewStorages(db, log)

	session, err := installer.NewModuleInstaller(ctx, cfg.Installer.RootDir, module, installer.Dependencies{
		Versions:     storages.Versions,
		Executor:     storages.Scripts,
		DatabaseType: string(db.Type()),
		Logger:       log,
	})
	if err != nil {
		return fmt.Errorf("error preparing install session: %w", err)
	}

	svc, err := service.NewModuleService(session, cfg.Installer.ModuleName, log)
	if err != nil {
		return err
	}

	return svc.Run(ctx, action)
}

func moduleFromConfig(cfg config.Installer) (*installer.Module, error) {
	if cfg.ModuleName == "" {
		return nil, nil
	}

	version, err := models.ParseModuleVersion(cfg.ModuleVersion)
	if err != nil {
		return nil, err
	}

	return installer.NewModule(cfg.ModuleName, version), nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
