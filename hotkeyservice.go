package main

import (
	"log/slog"

	"golang.design/x/hotkey"

	"overglass/tray"

	"github.com/wailsapp/wails/v3/pkg/application"
)

// HotkeyService toggles the overlay from anywhere with a global shortcut.
type HotkeyService struct {
	app           *application.App
	windowService *WindowService
}

func NewHotkeyService(windowService *WindowService) *HotkeyService {
	return &HotkeyService{
		windowService: windowService,
	}
}

func (s *HotkeyService) SetApp(app *application.App) {
	s.app = app
}

// StartHotkeyListener registers Ctrl+Space and toggles the main window on
// every press. Must run on a locked OS thread on macOS.
func (s *HotkeyService) StartHotkeyListener() {
	visHk := hotkey.New([]hotkey.Modifier{hotkey.ModCtrl}, hotkey.KeySpace)
	if err := visHk.Register(); err != nil {
		slog.Error("failed to register hotkey", "error", err)
		return
	}

	slog.Info("hotkey registered", "binding", "ctrl+space")

	go func() {
		for range visHk.Keydown() {
			s.windowService.ToggleVisibility(tray.MainWindowName)
		}
	}()
}
