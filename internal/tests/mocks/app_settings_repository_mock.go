package mocks

import (
	"context"
	"time"

	"curio/internal/models"
)

type AppSettingsRepositoryMock struct {
	GetFunc  func(ctx context.Context) (*models.AppSettings, error)
	SaveFunc func(ctx context.Context, settings *models.AppSettings) error
}

func (m *AppSettingsRepositoryMock) Get(ctx context.Context) (*models.AppSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return &models.AppSettings{
		ID:              1,
		OperatingSystem: "linux",
		FirstStartup:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CollectionPath:  "/home/u/.config/curio/collections",
		Theme:           "system",
	}, nil
}

func (m *AppSettingsRepositoryMock) Save(ctx context.Context, settings *models.AppSettings) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, settings)
	}
	return nil
}
