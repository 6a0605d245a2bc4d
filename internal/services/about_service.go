package services

import (
	"context"
	goruntime "runtime"

	"curio/internal/models"
)

// Overridden at build time via -ldflags "-X curio/internal/services.Version=...".
var (
	Version = "dev"
	Commit  = "none"
)

type AboutService struct {
	settings AppSettingsService
	dbPath   string
}

func NewAboutService(settings AppSettingsService, dbPath string) *AboutService {
	return &AboutService{settings: settings, dbPath: dbPath}
}

func (s *AboutService) Info(ctx context.Context) (*models.AboutInfo, error) {
	record, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &models.AboutInfo{
		Name:            "Curio",
		Version:         Version,
		Commit:          Commit,
		OperatingSystem: record.OperatingSystem,
		Architecture:    goruntime.GOARCH,
		GoVersion:       goruntime.Version(),
		FirstStartup:    record.FirstStartup,
		DatabasePath:    s.dbPath,
	}, nil
}
