package services

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const keyringServiceName = "curio"

// SecretStore keeps connection secrets out of the database.
type SecretStore interface {
	Set(key, secret string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// KeyringStore backs SecretStore with the OS keychain.
type KeyringStore struct {
}

func NewKeyringStore() *KeyringStore {
	return &KeyringStore{}
}

func (s *KeyringStore) Set(key, secret string) error {
	if key == "" {
		return errors.New("key is required")
	}
	if secret == "" {
		return errors.New("secret is empty")
	}
	return keyring.Set(keyringServiceName, key, secret)
}

func (s *KeyringStore) Get(key string) (string, error) {
	if key == "" {
		return "", errors.New("key is required")
	}
	return keyring.Get(keyringServiceName, key)
}

func (s *KeyringStore) Delete(key string) error {
	if key == "" {
		return errors.New("key is required")
	}
	err := keyring.Delete(keyringServiceName, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
