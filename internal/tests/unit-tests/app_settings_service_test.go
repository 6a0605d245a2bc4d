package unit_tests

import (
	"context"
	"errors"
	"path/filepath"
	goruntime "runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"curio/internal/models"
	"curio/internal/services"
	"curio/internal/tests/mocks"
	"curio/internal/theme"
)

func storedSettings() *models.AppSettings {
	return &models.AppSettings{
		ID:              1,
		OperatingSystem: "linux",
		FirstStartup:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CollectionPath:  "/home/u/.config/curio/collections",
		Theme:           "system",
	}
}

func TestAppSettingsService_Get_FreshProfileCreatesRecord(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)

	var saved *models.AppSettings
	mockRepo := &mocks.AppSettingsRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.AppSettings, error) {
			return nil, gorm.ErrRecordNotFound
		},
		SaveFunc: func(ctx context.Context, settings *models.AppSettings) error {
			saved = settings
			return nil
		},
	}
	service := services.NewAppSettingsService(mockRepo, theme.NewManager(theme.System, nil), nil)

	before := time.Now()
	settings, err := service.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, uint(1), settings.ID)
	assert.Equal(t, goruntime.GOOS, settings.OperatingSystem)
	assert.NotEmpty(t, settings.OperatingSystem)
	assert.False(t, settings.FirstStartup.Before(before))
	assert.False(t, settings.FirstStartup.After(time.Now()))
	assert.True(t, filepath.IsAbs(settings.CollectionPath))
	assert.Equal(t, theme.System, settings.Theme)

	// First load persists the created record
	assert.NotNil(t, saved)
	assert.Equal(t, settings, saved)
}

func TestAppSettingsService_Get_ExistingRecord(t *testing.T) {
	stored := storedSettings()
	stored.Theme = theme.Dark

	mockRepo := &mocks.AppSettingsRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.AppSettings, error) {
			return stored, nil
		},
	}
	themes := theme.NewManager(theme.System, nil)
	service := services.NewAppSettingsService(mockRepo, themes, nil)

	settings, err := service.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, stored, settings)
	// Load refreshes the active theme from the stored record
	assert.Equal(t, theme.Dark, themes.Current())
}

func TestAppSettingsService_Get_RepositoryError(t *testing.T) {
	mockRepo := &mocks.AppSettingsRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.AppSettings, error) {
			return nil, errors.New("disk gone")
		},
	}
	service := services.NewAppSettingsService(mockRepo, theme.NewManager(theme.System, nil), nil)

	_, err := service.Get(context.Background())
	assert.ErrorIs(t, err, services.ErrStorageUnavailable)
}

func TestAppSettingsService_UpdateCollectionPath_PreservesWriteOnceFields(t *testing.T) {
	stored := storedSettings()

	var saved *models.AppSettings
	mockRepo := &mocks.AppSettingsRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.AppSettings, error) {
			return stored, nil
		},
		SaveFunc: func(ctx context.Context, settings *models.AppSettings) error {
			saved = settings
			return nil
		},
	}
	service := services.NewAppSettingsService(mockRepo, theme.NewManager(theme.System, nil), nil)

	updated, err := service.UpdateCollectionPath(context.Background(), "/home/u/Documents/col2")
	assert.NoError(t, err)
	assert.Equal(t, "/home/u/Documents/col2", updated.CollectionPath)
	assert.Equal(t, "linux", updated.OperatingSystem)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), updated.FirstStartup)
	assert.NotNil(t, saved)
	assert.Equal(t, updated, saved)
}

func TestAppSettingsService_UpdateCollectionPath_EmptyPath(t *testing.T) {
	saveCalled := false
	mockRepo := &mocks.AppSettingsRepositoryMock{
		SaveFunc: func(ctx context.Context, settings *models.AppSettings) error {
			saveCalled = true
			return nil
		},
	}
	service := services.NewAppSettingsService(mockRepo, theme.NewManager(theme.System, nil), nil)

	_, err := service.UpdateCollectionPath(context.Background(), "   ")
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.False(t, saveCalled)
}

func TestAppSettingsService_UpdateCollectionPath_RelativePath(t *testing.T) {
	mockRepo := &mocks.AppSettingsRepositoryMock{}
	service := services.NewAppSettingsService(mockRepo, theme.NewManager(theme.System, nil), nil)

	_, err := service.UpdateCollectionPath(context.Background(), "relative/collections")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestAppSettingsService_UpdateCollectionPath_SaveError(t *testing.T) {
	mockRepo := &mocks.AppSettingsRepositoryMock{
		SaveFunc: func(ctx context.Context, settings *models.AppSettings) error {
			return errors.New("database locked")
		},
	}
	service := services.NewAppSettingsService(mockRepo, theme.NewManager(theme.System, nil), nil)

	_, err := service.UpdateCollectionPath(context.Background(), "/home/u/Documents/col2")
	assert.ErrorIs(t, err, services.ErrStorageUnavailable)
}

func TestAppSettingsService_UpdateTheme_Success(t *testing.T) {
	var saved *models.AppSettings
	mockRepo := &mocks.AppSettingsRepositoryMock{
		SaveFunc: func(ctx context.Context, settings *models.AppSettings) error {
			saved = settings
			return nil
		},
	}
	themes := theme.NewManager(theme.System, nil)
	service := services.NewAppSettingsService(mockRepo, themes, nil)

	updated, err := service.UpdateTheme(context.Background(), theme.Dark)
	assert.NoError(t, err)
	assert.Equal(t, theme.Dark, updated.Theme)
	assert.Equal(t, theme.Dark, saved.Theme)
	assert.Equal(t, theme.Dark, themes.Current())
}

func TestAppSettingsService_UpdateTheme_EmptyTheme(t *testing.T) {
	service := services.NewAppSettingsService(&mocks.AppSettingsRepositoryMock{}, theme.NewManager(theme.System, nil), nil)

	_, err := service.UpdateTheme(context.Background(), "")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestAppSettingsService_UpdateTheme_InvalidTheme(t *testing.T) {
	themes := theme.NewManager(theme.System, nil)
	service := services.NewAppSettingsService(&mocks.AppSettingsRepositoryMock{}, themes, nil)

	_, err := service.UpdateTheme(context.Background(), "sepia")
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Equal(t, theme.System, themes.Current())
}

func TestAppSettingsService_SelectCollectionPath_Cancelled(t *testing.T) {
	stored := storedSettings()

	saveCalled := false
	mockRepo := &mocks.AppSettingsRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.AppSettings, error) {
			return stored, nil
		},
		SaveFunc: func(ctx context.Context, settings *models.AppSettings) error {
			saveCalled = true
			return nil
		},
	}
	dialog := &mocks.DirectoryDialogMock{
		ChooseFunc: func(ctx context.Context, title string) (string, error) {
			return "", nil
		},
	}
	service := services.NewAppSettingsService(mockRepo, theme.NewManager(theme.System, nil), dialog)

	settings, picked, err := service.SelectCollectionPath(context.Background())
	assert.NoError(t, err)
	assert.False(t, picked)
	assert.Equal(t, stored.CollectionPath, settings.CollectionPath)
	assert.False(t, saveCalled)
}

func TestAppSettingsService_SelectCollectionPath_Picked(t *testing.T) {
	stored := storedSettings()

	var saved *models.AppSettings
	mockRepo := &mocks.AppSettingsRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.AppSettings, error) {
			return stored, nil
		},
		SaveFunc: func(ctx context.Context, settings *models.AppSettings) error {
			saved = settings
			return nil
		},
	}
	dialog := &mocks.DirectoryDialogMock{
		ChooseFunc: func(ctx context.Context, title string) (string, error) {
			return "/home/u/Documents/col2", nil
		},
	}
	service := services.NewAppSettingsService(mockRepo, theme.NewManager(theme.System, nil), dialog)

	settings, picked, err := service.SelectCollectionPath(context.Background())
	assert.NoError(t, err)
	assert.True(t, picked)
	assert.Equal(t, "/home/u/Documents/col2", settings.CollectionPath)
	assert.Equal(t, "linux", settings.OperatingSystem)
	assert.NotNil(t, saved)
}

func TestAppSettingsService_SelectCollectionPath_DialogError(t *testing.T) {
	dialog := &mocks.DirectoryDialogMock{
		ChooseFunc: func(ctx context.Context, title string) (string, error) {
			return "", errors.New("no display")
		},
	}
	service := services.NewAppSettingsService(&mocks.AppSettingsRepositoryMock{}, theme.NewManager(theme.System, nil), dialog)

	_, picked, err := service.SelectCollectionPath(context.Background())
	assert.Error(t, err)
	assert.False(t, picked)
	assert.Equal(t, "no display", err.Error())
}
