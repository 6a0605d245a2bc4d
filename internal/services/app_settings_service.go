package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	goruntime "runtime"
	"strings"
	"time"

	"gorm.io/gorm"

	"curio/internal/models"
	"curio/internal/repositories"
	"curio/internal/theme"
)

type AppSettingsService interface {
	Get(ctx context.Context) (*models.AppSettings, error)
	UpdateCollectionPath(ctx context.Context, path string) (*models.AppSettings, error)
	UpdateTheme(ctx context.Context, name string) (*models.AppSettings, error)
	SelectCollectionPath(ctx context.Context) (*models.AppSettings, bool, error)
}

type appSettingsService struct {
	settings repositories.AppSettingsRepository
	themes   *theme.Manager
	dialog   DirectoryDialog
}

func NewAppSettingsService(settings repositories.AppSettingsRepository, themes *theme.Manager, dialog DirectoryDialog) AppSettingsService {
	return &appSettingsService{settings: settings, themes: themes, dialog: dialog}
}

// Get returns the settings record, creating and persisting it on the first
// launch of this profile. The created record captures the host OS and the
// first-startup timestamp; neither is ever written again.
func (s *appSettingsService) Get(ctx context.Context) (*models.AppSettings, error) {
	current, err := s.settings.Get(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.createDefaults(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if s.themes != nil {
		s.themes.Set(current.Theme)
	}
	return current, nil
}

func (s *appSettingsService) createDefaults(ctx context.Context) (*models.AppSettings, error) {
	collections, err := DefaultCollectionPath()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	created := &models.AppSettings{
		ID:              1,
		OperatingSystem: goruntime.GOOS,
		FirstStartup:    time.Now(),
		CollectionPath:  collections,
		Theme:           theme.System,
		UpdatedAt:       time.Now(),
	}
	if err := s.settings.Save(ctx, created); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return created, nil
}

// UpdateCollectionPath changes the collection folder. OperatingSystem and
// FirstStartup are re-read from the stored row, never taken from the caller.
func (s *appSettingsService) UpdateCollectionPath(ctx context.Context, path string) (*models.AppSettings, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: collection path is required", ErrValidation)
	}
	if !filepath.IsAbs(path) {
		return nil, fmt.Errorf("%w: collection path must be absolute", ErrValidation)
	}

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	current.CollectionPath = path
	current.UpdatedAt = time.Now()
	if err := s.settings.Save(ctx, current); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return current, nil
}

// UpdateTheme changes the persisted theme and refreshes the active one.
func (s *appSettingsService) UpdateTheme(ctx context.Context, name string) (*models.AppSettings, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: theme is required", ErrValidation)
	}
	if !theme.Valid(name) {
		return nil, fmt.Errorf("%w: theme must be 'light', 'dark', or 'system'", ErrValidation)
	}

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	current.Theme = name
	current.UpdatedAt = time.Now()
	if err := s.settings.Save(ctx, current); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if s.themes != nil {
		s.themes.Set(name)
	}
	return current, nil
}

// SelectCollectionPath runs the native directory picker and stores the
// choice. Cancelling the dialog leaves the stored path unmodified; the
// second return value tells callers whether a folder was actually picked.
func (s *appSettingsService) SelectCollectionPath(ctx context.Context) (*models.AppSettings, bool, error) {
	if s.dialog == nil {
		return nil, false, errors.New("directory dialog not available")
	}

	dir, err := s.dialog.Choose(ctx, "Select Collection Folder")
	if err != nil {
		return nil, false, err
	}
	if dir == "" {
		settings, err := s.Get(ctx)
		return settings, false, err
	}

	settings, err := s.UpdateCollectionPath(ctx, dir)
	if err != nil {
		return nil, false, err
	}
	return settings, true, nil
}
