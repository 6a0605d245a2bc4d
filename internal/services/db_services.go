package services

import (
	"gorm.io/gorm"

	"curio/internal/repositories"
	"curio/internal/theme"
)

// DbServices aggregates the domain services backed by the database.
type DbServices struct {
	AppSettings AppSettingsService
	Connections ConnectionService
	Collections CollectionService
}

// NewDbServices constructs the service container using repositories backed by db.
func NewDbServices(db *gorm.DB, themes *theme.Manager, dialog DirectoryDialog) *DbServices {
	settingsRepo := repositories.NewAppSettingsRepository(db)
	connectionRepo := repositories.NewConnectionRepository(db)

	settings := NewAppSettingsService(settingsRepo, themes, dialog)

	return &DbServices{
		AppSettings: settings,
		Connections: NewConnectionService(connectionRepo, NewKeyringStore()),
		Collections: NewCollectionService(settings, NewShell()),
	}
}
