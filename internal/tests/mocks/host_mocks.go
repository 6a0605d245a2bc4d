package mocks

import (
	"context"

	"curio/internal/events"
)

// DirectoryDialogMock fakes the native directory picker.
type DirectoryDialogMock struct {
	ChooseFunc func(ctx context.Context, title string) (string, error)
}

func (m *DirectoryDialogMock) Choose(ctx context.Context, title string) (string, error) {
	if m.ChooseFunc != nil {
		return m.ChooseFunc(ctx, title)
	}
	return "", nil
}

// ShellMock fakes opening a path in the host file manager.
type ShellMock struct {
	OpenPathFunc func(path string) error
	Opened       []string
}

func (m *ShellMock) OpenPath(path string) error {
	m.Opened = append(m.Opened, path)
	if m.OpenPathFunc != nil {
		return m.OpenPathFunc(path)
	}
	return nil
}

// NotifierMock records toasts instead of emitting them.
type NotifierMock struct {
	Kinds    []events.EventType
	Messages []string
}

func (m *NotifierMock) Notify(eventType events.EventType, message string) {
	m.Kinds = append(m.Kinds, eventType)
	m.Messages = append(m.Messages, message)
}

// SecretStoreMock fakes the OS keychain.
type SecretStoreMock struct {
	SetFunc    func(key, secret string) error
	GetFunc    func(key string) (string, error)
	DeleteFunc func(key string) error
}

func (m *SecretStoreMock) Set(key, secret string) error {
	if m.SetFunc != nil {
		return m.SetFunc(key, secret)
	}
	return nil
}

func (m *SecretStoreMock) Get(key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(key)
	}
	return "", nil
}

func (m *SecretStoreMock) Delete(key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(key)
	}
	return nil
}
