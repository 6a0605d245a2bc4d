package repositories

import (
	"context"

	"gorm.io/gorm"

	"curio/internal/models"
)

// AppSettingsRepository persists the single settings row. Get returns
// gorm.ErrRecordNotFound on a fresh profile; first-launch defaults are the
// service's job, not the repository's.
type AppSettingsRepository interface {
	Get(ctx context.Context) (*models.AppSettings, error)
	Save(ctx context.Context, settings *models.AppSettings) error
}

type appSettingsRepository struct {
	db *gorm.DB
}

func NewAppSettingsRepository(db *gorm.DB) AppSettingsRepository {
	return &appSettingsRepository{db: db}
}

func (r *appSettingsRepository) Get(ctx context.Context) (*models.AppSettings, error) {
	var settings models.AppSettings
	if err := r.db.WithContext(ctx).First(&settings, 1).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *appSettingsRepository) Save(ctx context.Context, settings *models.AppSettings) error {
	// Ensure ID is set to 1 for single-row table
	settings.ID = 1
	return r.db.WithContext(ctx).Save(settings).Error
}
