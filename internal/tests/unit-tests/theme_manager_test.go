package unit_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"curio/internal/theme"
)

func TestThemeManager_SetFiresCallbackOnChange(t *testing.T) {
	var applied []string
	manager := theme.NewManager(theme.System, func(name string) {
		applied = append(applied, name)
	})

	manager.Set(theme.Dark)
	manager.Set(theme.Dark) // no change, no callback
	manager.Set(theme.Light)

	assert.Equal(t, []string{theme.Dark, theme.Light}, applied)
	assert.Equal(t, theme.Light, manager.Current())
}

func TestThemeManager_IgnoresUnknownThemes(t *testing.T) {
	called := false
	manager := theme.NewManager(theme.Dark, func(name string) {
		called = true
	})

	manager.Set("sepia")
	assert.Equal(t, theme.Dark, manager.Current())
	assert.False(t, called)
}

func TestThemeManager_InvalidInitialFallsBackToSystem(t *testing.T) {
	manager := theme.NewManager("corrupted-value", nil)
	assert.Equal(t, theme.System, manager.Current())
}

func TestThemeValid(t *testing.T) {
	assert.True(t, theme.Valid(theme.Light))
	assert.True(t, theme.Valid(theme.Dark))
	assert.True(t, theme.Valid(theme.System))
	assert.False(t, theme.Valid(""))
	assert.False(t, theme.Valid("LIGHT"))
}
