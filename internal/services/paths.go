package services

import (
	"os"
	"path/filepath"
)

// AppDataDir returns the application's private data directory, creating it
// on first use.
func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	appDir := filepath.Join(configDir, "curio")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}
	return appDir, nil
}

// DefaultCollectionPath is where collections live until the user picks
// another folder.
func DefaultCollectionPath() (string, error) {
	appDir, err := AppDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, "collections"), nil
}
