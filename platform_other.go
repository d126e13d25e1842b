//go:build !darwin
// +build !darwin

package main

// hideAppFromDock is a no-op outside macOS; there is no dock to hide from.
func hideAppFromDock() {}

// focusAppWindow is a no-op outside macOS; the window manager handles focus.
func focusAppWindow() {}
