package mocks

import (
	"context"
	"time"

	"curio/internal/models"
)

type AppSettingsServiceMock struct {
	GetFunc                  func(ctx context.Context) (*models.AppSettings, error)
	UpdateCollectionPathFunc func(ctx context.Context, path string) (*models.AppSettings, error)
	UpdateThemeFunc          func(ctx context.Context, name string) (*models.AppSettings, error)
	SelectCollectionPathFunc func(ctx context.Context) (*models.AppSettings, bool, error)
}

func (m *AppSettingsServiceMock) Get(ctx context.Context) (*models.AppSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return &models.AppSettings{
		ID:              1,
		OperatingSystem: "linux",
		FirstStartup:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CollectionPath:  "/tmp/collections",
		Theme:           "system",
	}, nil
}

func (m *AppSettingsServiceMock) UpdateCollectionPath(ctx context.Context, path string) (*models.AppSettings, error) {
	if m.UpdateCollectionPathFunc != nil {
		return m.UpdateCollectionPathFunc(ctx, path)
	}
	return m.Get(ctx)
}

func (m *AppSettingsServiceMock) UpdateTheme(ctx context.Context, name string) (*models.AppSettings, error) {
	if m.UpdateThemeFunc != nil {
		return m.UpdateThemeFunc(ctx, name)
	}
	return m.Get(ctx)
}

func (m *AppSettingsServiceMock) SelectCollectionPath(ctx context.Context) (*models.AppSettings, bool, error) {
	if m.SelectCollectionPathFunc != nil {
		return m.SelectCollectionPathFunc(ctx)
	}
	settings, err := m.Get(ctx)
	return settings, false, err
}
