package main

import (
	"context"
	"embed"
	"fmt"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"gorm.io/gorm/logger"

	"curio/internal/database"
	"curio/internal/events"
	"curio/internal/services"
	"curio/internal/theme"
	"curio/internal/utils"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	if database.IsDevelopment() {
		// .env is optional; dev convenience only
		_ = utils.LoadEnv()
	}

	app := NewApp()

	dbPath := database.GetDefaultDBPath()
	db, err := database.Init(database.Config{
		Path:     dbPath,
		LogLevel: logger.Warn,
	})
	if err != nil {
		fmt.Println("Error opening database:", err)
		return
	}

	if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	notifier := events.NewRuntimeNotifier()
	themes := theme.NewManager(theme.System, notifier.EmitThemeChange)

	svc := services.NewDbServices(db, themes, services.NewDirectoryDialog())
	app.AppSettings = svc.AppSettings
	app.Connections = svc.Connections
	app.Collections = svc.Collections
	app.About = services.NewAboutService(svc.AppSettings, dbPath)
	app.notifier = notifier

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "Curio",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "Curio",
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup: func(ctx context.Context) {
			app.startup(ctx)
			notifier.Startup(ctx)

			// First Get creates the record on a fresh profile and seeds
			// the active theme from the stored one.
			if _, err := svc.AppSettings.Get(ctx); err != nil {
				fmt.Println("Error loading settings:", err)
			}
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
