package main

import (
	"embed"
	_ "embed"
	"log/slog"
	"os"
	"runtime"

	"overglass/config"
	"overglass/logging"
	"overglass/startupservice"
	"overglass/tray"

	"github.com/wailsapp/wails/v3/pkg/application"
)

//go:embed all:frontend/dist
var assets embed.FS

//go:embed frontend/public/trayicon.png
var trayIcon []byte

func main() {
	cfg := config.Load()

	if err := logging.Init(cfg.LogLevel); err != nil {
		slog.Warn("file logging unavailable, using stderr", "error", err)
	}
	defer logging.Close()

	// Initialize services
	windowService := NewWindowService()
	hotkeyService := NewHotkeyService(windowService)
	startupService := startupservice.NewStartupService()

	app := application.New(application.Options{
		Name:        "Overglass",
		Description: "Always-on-top desktop overlay",
		Services: []application.Service{
			application.NewService(windowService),
			application.NewService(startupService),
		},
		Assets: application.AssetOptions{
			Handler: application.AssetFileServerFS(assets),
		},
		Mac: application.MacOptions{
			ApplicationShouldTerminateAfterLastWindowClosed: false,
		},
	})

	// Tray-only app: keep it out of the dock and CMD+Tab.
	hideAppFromDock()

	windowService.SetApp(app)
	hotkeyService.SetApp(app)

	mainWindow := app.NewWebviewWindowWithOptions(application.WebviewWindowOptions{
		Title:         "Overglass",
		Width:         cfg.WindowWidth,
		Height:        cfg.WindowHeight,
		Frameless:     true,
		DisableResize: true,
		AlwaysOnTop:   cfg.AlwaysOnTop,
		Mac: application.MacWindow{
			InvisibleTitleBarHeight: 50,
			Backdrop:                application.MacBackdropTransparent,
			TitleBar: application.MacTitleBar{
				AppearsTransparent:   true,
				Hide:                 true,
				HideTitle:            true,
				FullSizeContent:      true,
				UseToolbar:           true,
				HideToolbarSeparator: true,
			},
		},
		BackgroundColour: application.NewRGBA(0, 0, 0, 0),
		URL:              "/",
	})

	windowService.RegisterWindow(tray.MainWindowName, mainWindow)

	// The listener only starts once the main window is registered, so a
	// press during startup finds either the window or nothing at all.
	if cfg.HotkeyEnabled {
		go func() {
			runtime.LockOSThread() // <-- Required by macOS for hotkey
			hotkeyService.StartHotkeyListener()
		}()
	}

	// Let the frontend pick up env file edits without a restart.
	stopWatch, err := config.Watch(func(config.AppConfig) {
		windowService.Emit(tray.MainWindowName, "config-updated")
	})
	if err != nil {
		slog.Warn("config watcher unavailable", "error", err)
	} else {
		defer stopWatch()
	}

	tray.Setup(app, windowService, trayIcon)

	// Run the application. This blocks until the application has been exited.
	if err := app.Run(); err != nil {
		slog.Error("application failed", "error", err)
		logging.Close()
		os.Exit(1)
	}
}
