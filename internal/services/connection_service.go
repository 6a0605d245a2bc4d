package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"curio/internal/models"
	"curio/internal/repositories"
)

// ConnectionService manages remote-sync connection profiles. Secrets never
// touch the database; List returns metadata only.
type ConnectionService interface {
	Register(ctx context.Context, name, endpoint, secret string) (*models.Connection, error)
	Update(ctx context.Context, id uint, name, endpoint string) (*models.Connection, error)
	List(ctx context.Context) ([]models.Connection, error)
	SetSecret(ctx context.Context, id uint, secret string) error
	HasSecret(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type connectionService struct {
	connections repositories.ConnectionRepository
	secrets     SecretStore
}

func NewConnectionService(connections repositories.ConnectionRepository, secrets SecretStore) ConnectionService {
	return &connectionService{connections: connections, secrets: secrets}
}

func (s *connectionService) Register(ctx context.Context, name, endpoint, secret string) (*models.Connection, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: connection name is required", ErrValidation)
	}
	if strings.TrimSpace(endpoint) == "" {
		return nil, fmt.Errorf("%w: endpoint is required", ErrValidation)
	}

	c := &models.Connection{
		Key:      uuid.NewString(),
		Name:     name,
		Endpoint: endpoint,
	}
	if err := s.connections.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if secret != "" {
		if err := s.secrets.Set(c.Key, secret); err != nil {
			// Keep row and keychain in step: roll the row back.
			_ = s.connections.Delete(ctx, c.ID)
			return nil, fmt.Errorf("store connection secret: %w", err)
		}
	}
	return c, nil
}

// Update renames a connection or points it at another endpoint. The keychain
// key never changes, so the stored secret stays attached.
func (s *connectionService) Update(ctx context.Context, id uint, name, endpoint string) (*models.Connection, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: connection name is required", ErrValidation)
	}
	if strings.TrimSpace(endpoint) == "" {
		return nil, fmt.Errorf("%w: endpoint is required", ErrValidation)
	}

	c, err := s.connections.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	c.Name = name
	c.Endpoint = endpoint
	if err := s.connections.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return c, nil
}

func (s *connectionService) List(ctx context.Context) ([]models.Connection, error) {
	connections, err := s.connections.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return connections, nil
}

func (s *connectionService) SetSecret(ctx context.Context, id uint, secret string) error {
	if secret == "" {
		return fmt.Errorf("%w: secret is required", ErrValidation)
	}
	c, err := s.connections.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return s.secrets.Set(c.Key, secret)
}

// HasSecret reports whether a usable secret exists for the connection. Any
// keychain failure reads as "no secret" so the panel can prompt for one.
func (s *connectionService) HasSecret(ctx context.Context, id uint) (bool, error) {
	c, err := s.connections.FindByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if _, err := s.secrets.Get(c.Key); err != nil {
		return false, nil
	}
	return true, nil
}

// Delete removes the row first: if that fails the keychain entry is still in
// place and the whole delete can simply be retried. A missing keychain entry
// afterwards is fine, KeyringStore.Delete treats not-found as success.
func (s *connectionService) Delete(ctx context.Context, id uint) error {
	c, err := s.connections.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err := s.connections.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err := s.secrets.Delete(c.Key); err != nil {
		return fmt.Errorf("delete connection secret: %w", err)
	}
	return nil
}
