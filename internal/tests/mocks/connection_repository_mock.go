package mocks

import (
	"context"

	"curio/internal/models"
)

type ConnectionRepositoryMock struct {
	CreateFunc   func(ctx context.Context, c *models.Connection) error
	FindByIDFunc func(ctx context.Context, id uint) (*models.Connection, error)
	ListFunc     func(ctx context.Context) ([]models.Connection, error)
	UpdateFunc   func(ctx context.Context, c *models.Connection) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *ConnectionRepositoryMock) Create(ctx context.Context, c *models.Connection) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *ConnectionRepositoryMock) FindByID(ctx context.Context, id uint) (*models.Connection, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &models.Connection{ID: id, Key: "key", Name: "conn"}, nil
}

func (m *ConnectionRepositoryMock) List(ctx context.Context) ([]models.Connection, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Connection{}, nil
}

func (m *ConnectionRepositoryMock) Update(ctx context.Context, c *models.Connection) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *ConnectionRepositoryMock) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
