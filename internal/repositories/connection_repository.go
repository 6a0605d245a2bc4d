package repositories

import (
	"context"

	"gorm.io/gorm"

	"curio/internal/models"
)

type ConnectionRepository interface {
	Create(ctx context.Context, c *models.Connection) error
	FindByID(ctx context.Context, id uint) (*models.Connection, error)
	List(ctx context.Context) ([]models.Connection, error)
	Update(ctx context.Context, c *models.Connection) error
	Delete(ctx context.Context, id uint) error
}

type connectionRepository struct {
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) Create(ctx context.Context, c *models.Connection) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *connectionRepository) FindByID(ctx context.Context, id uint) (*models.Connection, error) {
	var c models.Connection
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *connectionRepository) List(ctx context.Context) ([]models.Connection, error) {
	var connections []models.Connection
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&connections).Error; err != nil {
		return nil, err
	}
	return connections, nil
}

func (r *connectionRepository) Update(ctx context.Context, c *models.Connection) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *connectionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Connection{}, id).Error
}
