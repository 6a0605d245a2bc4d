package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"curio/internal/events"
	"curio/internal/models"
	"curio/internal/services"
)

// App struct
type App struct {
	ctx context.Context

	AppSettings services.AppSettingsService
	Connections services.ConnectionService
	Collections services.CollectionService
	About       *services.AboutService

	notifier events.Notifier
	dbClose  func() error

	demoMu      sync.Mutex
	demoRunning bool
	demoCancel  context.CancelFunc
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	// Stop any running demo event stream
	a.demoMu.Lock()
	cancel := a.demoCancel
	a.demoMu.Unlock()
	if cancel != nil {
		cancel()
	}

	// Close database connection pool
	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to close database: %v", err))
		} else {
			runtime.LogInfo(ctx, "database closed")
		}
		a.dbClose = nil
	}
}

// reportError logs the failed action and surfaces it as an error toast.
// State stays untouched; the frontend keeps showing what it already had.
func (a *App) reportError(msg string, err error) {
	runtime.LogError(a.ctx, fmt.Sprintf("%s: %v", msg, err))
	if a.notifier != nil {
		a.notifier.Notify(events.EventError, fmt.Sprintf("%s: %v", msg, err))
	}
}

// GetSettings returns the settings record, creating it on first launch.
func (a *App) GetSettings() (*models.AppSettings, error) {
	settings, err := a.AppSettings.Get(a.ctx)
	if err != nil {
		a.reportError("failed to load settings", err)
		return nil, err
	}
	return settings, nil
}

// SelectCollectionFolder opens the native directory picker and stores the
// chosen folder. Cancelling keeps the current folder and shows no toast.
func (a *App) SelectCollectionFolder() (*models.AppSettings, error) {
	settings, picked, err := a.AppSettings.SelectCollectionPath(a.ctx)
	if err != nil {
		a.reportError("failed to update collection folder", err)
		return nil, err
	}
	if picked {
		a.notifier.Notify(events.EventSuccess, "Collection folder updated")
	}
	return settings, nil
}

// SetCollectionPath stores an explicitly entered collection folder.
func (a *App) SetCollectionPath(path string) (*models.AppSettings, error) {
	settings, err := a.AppSettings.UpdateCollectionPath(a.ctx, path)
	if err != nil {
		a.reportError("failed to update collection folder", err)
		return nil, err
	}
	a.notifier.Notify(events.EventSuccess, "Collection folder updated")
	return settings, nil
}

// SetTheme persists the chosen theme and applies it.
func (a *App) SetTheme(name string) (*models.AppSettings, error) {
	settings, err := a.AppSettings.UpdateTheme(a.ctx, name)
	if err != nil {
		a.reportError("failed to update theme", err)
		return nil, err
	}
	return settings, nil
}

// OpenCollectionFolder shows path in the host file manager; with an empty
// path it opens the configured collection folder.
func (a *App) OpenCollectionFolder(path string) error {
	if err := a.Collections.OpenInFileManager(a.ctx, path); err != nil {
		a.reportError("failed to open folder", err)
		return err
	}
	return nil
}

// ListCollections returns the collection folders under the collection path.
func (a *App) ListCollections() ([]models.CollectionInfo, error) {
	collections, err := a.Collections.List(a.ctx)
	if err != nil {
		a.reportError("failed to list collections", err)
		return nil, err
	}
	return collections, nil
}

// CreateCollection makes a new collection folder.
func (a *App) CreateCollection(name string) (*models.CollectionInfo, error) {
	collection, err := a.Collections.Create(a.ctx, name)
	if err != nil {
		a.reportError("failed to create collection", err)
		return nil, err
	}
	a.notifier.Notify(events.EventSuccess, fmt.Sprintf("Collection %q created", name))
	return collection, nil
}

// GetCollectionRepoInfo reports git metadata for a collection folder.
func (a *App) GetCollectionRepoInfo(path string) (*models.RepoInfo, error) {
	info, err := a.Collections.RepoInfo(a.ctx, path)
	if err != nil {
		a.reportError("failed to inspect collection", err)
		return nil, err
	}
	return info, nil
}

// RegisterConnection creates a connection profile; the secret goes to the
// OS keychain.
func (a *App) RegisterConnection(name, endpoint, secret string) (*models.Connection, error) {
	connection, err := a.Connections.Register(a.ctx, name, endpoint, secret)
	if err != nil {
		a.reportError("failed to register connection", err)
		return nil, err
	}
	a.notifier.Notify(events.EventSuccess, fmt.Sprintf("Connection %q registered", name))
	return connection, nil
}

// UpdateConnection renames a connection or changes its endpoint.
func (a *App) UpdateConnection(id uint, name, endpoint string) (*models.Connection, error) {
	connection, err := a.Connections.Update(a.ctx, id, name, endpoint)
	if err != nil {
		a.reportError("failed to update connection", err)
		return nil, err
	}
	a.notifier.Notify(events.EventSuccess, fmt.Sprintf("Connection %q updated", name))
	return connection, nil
}

// ListConnections returns connection profiles without their secrets.
func (a *App) ListConnections() ([]models.Connection, error) {
	connections, err := a.Connections.List(a.ctx)
	if err != nil {
		a.reportError("failed to list connections", err)
		return nil, err
	}
	return connections, nil
}

// SetConnectionSecret replaces the keychain secret for a connection.
func (a *App) SetConnectionSecret(id uint, secret string) error {
	if err := a.Connections.SetSecret(a.ctx, id, secret); err != nil {
		a.reportError("failed to store connection secret", err)
		return err
	}
	a.notifier.Notify(events.EventSuccess, "Connection secret stored")
	return nil
}

// HasConnectionSecret reports whether a connection has a usable secret.
func (a *App) HasConnectionSecret(id uint) (bool, error) {
	return a.Connections.HasSecret(a.ctx, id)
}

// DeleteConnection removes a connection profile and its keychain secret.
func (a *App) DeleteConnection(id uint) error {
	if err := a.Connections.Delete(a.ctx, id); err != nil {
		a.reportError("failed to delete connection", err)
		return err
	}
	a.notifier.Notify(events.EventSuccess, "Connection deleted")
	return nil
}

// GetAboutInfo returns build and host details for the About panel.
func (a *App) GetAboutInfo() (*models.AboutInfo, error) {
	info, err := a.About.Info(a.ctx)
	if err != nil {
		a.reportError("failed to load about info", err)
		return nil, err
	}
	return info, nil
}

// StartDemoEvents starts emitting demo events periodically to the frontend via Wails events
// It will no-op if a demo events stream is already running
func (a *App) StartDemoEvents() {
	a.demoMu.Lock()
	if a.demoRunning {
		// already running; ignore duplicate starts
		a.demoMu.Unlock()
		return
	}
	a.demoRunning = true
	ctx, cancel := context.WithCancel(a.ctx)
	a.demoCancel = cancel
	a.demoMu.Unlock()

	go func() {
		defer func() {
			a.demoMu.Lock()
			a.demoRunning = false
			a.demoCancel = nil
			a.demoMu.Unlock()
			// Notify frontend that the demo events stream has finished
			runtime.EventsEmit(a.ctx, events.TopicDemoDone)
		}()

		eventTypes := []events.EventType{events.EventInfo, events.EventWarn, events.EventSuccess, events.EventError}
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		i := 0
		for {
			select {
			case t := <-ticker.C:
				i++
				if i > 15 {
					return
				}
				evt := events.DemoEvent{
					ID:        i,
					Type:      eventTypes[(i-1)%len(eventTypes)],
					Message:   fmt.Sprintf("Demo event #%d", i),
					Timestamp: t,
				}
				runtime.EventsEmit(a.ctx, events.TopicDemo, evt)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// StopDemoEvents cancels the running demo event stream, if any
func (a *App) StopDemoEvents() {
	a.demoMu.Lock()
	cancel := a.demoCancel
	running := a.demoRunning
	a.demoMu.Unlock()
	if running && cancel != nil {
		cancel()
	}
}
