package main

import (
	"sync"

	"github.com/wailsapp/wails/v3/pkg/application"
)

// WindowService keeps a registry of named windows so collaborators can reach
// them without holding references. Lookups are allowed to fail: a window may
// not exist yet during startup or may already be gone, and every operation
// treats that as a normal state and does nothing.
//
// Callers live on different goroutines (the UI event loop, the hotkey
// listener, the config watcher), so the registry is guarded by a mutex.
type WindowService struct {
	mu      sync.Mutex
	app     *application.App
	windows map[string]*application.WebviewWindow
	visible map[string]bool
}

func NewWindowService() *WindowService {
	return &WindowService{
		windows: make(map[string]*application.WebviewWindow),
		visible: make(map[string]bool),
	}
}

func (s *WindowService) SetApp(app *application.App) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.app = app
}

// RegisterWindow Register a window by name
func (s *WindowService) RegisterWindow(name string, win *application.WebviewWindow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows[name] = win
	s.visible[name] = true
}

// Window is the fallible accessor: the second return reports whether a
// window is registered under the name.
func (s *WindowService) Window(name string) (*application.WebviewWindow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	win, ok := s.windows[name]
	return win, ok
}

// Show makes the named window visible, bringing it to front.
func (s *WindowService) Show(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.show(name)
}

// Hide makes the named window invisible.
func (s *WindowService) Hide(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hide(name)
}

// ToggleVisibility Toggle visibility of a window by name
func (s *WindowService) ToggleVisibility(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.windows[name]; !ok {
		return
	}

	if s.visible[name] {
		s.hide(name)
	} else {
		s.show(name)
	}
}

// Emit delivers a payload-free event for the named window's frontend to act
// on. Nothing is sent when the window is not registered.
func (s *WindowService) Emit(name string, event string) {
	s.mu.Lock()
	_, ok := s.windows[name]
	app := s.app
	s.mu.Unlock()

	if !ok || app == nil {
		return
	}
	app.EmitEvent(event)
}

// show and hide expect s.mu to be held. A registered-but-nil handle counts
// as absent for display calls, matching the silent-skip contract.
func (s *WindowService) show(name string) {
	win, ok := s.windows[name]
	if !ok {
		return
	}

	if win != nil {
		win.Show()
		win.SetAlwaysOnTop(true)
		focusAppWindow()
	}
	s.visible[name] = true
}

func (s *WindowService) hide(name string) {
	win, ok := s.windows[name]
	if !ok {
		return
	}

	if win != nil {
		win.Hide()
	}
	s.visible[name] = false
}
