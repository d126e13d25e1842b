package tray

import (
	"github.com/wailsapp/wails/v3/pkg/application"
)

// MainWindowName is the logical name the overlay window is registered under.
const MainWindowName = "main"

// Event names delivered to the overlay window. The frontend owns the actual
// behavior (flipping click-through, re-centering, toggling the login item);
// the tray only announces intent.
const (
	EventToggleClickThrough = "toggle-click-through"
	EventResetPosition      = "reset-position"
	EventToggleAutostart    = "toggle-autostart"
)

// menuAction is the closed set of things a tray click can do. Adding or
// removing a menu item means touching this enum and the entry table, so the
// dispatch switch below stays compile-time checked.
type menuAction int

const (
	actionShow menuAction = iota
	actionHide
	actionClickThrough
	actionResetPos
	actionAutostart
	actionQuit
)

type menuEntry struct {
	id     string
	label  string
	action menuAction
}

// menuEntries returns the fixed menu, in order. One entry per identifier,
// always enabled, never mutated after startup.
func menuEntries() []menuEntry {
	return []menuEntry{
		{id: "show", label: "Show", action: actionShow},
		{id: "hide", label: "Hide", action: actionHide},
		{id: "click_through", label: "Toggle Click-Through", action: actionClickThrough},
		{id: "reset_pos", label: "Reset Position", action: actionResetPos},
		{id: "autostart", label: "Start at Login", action: actionAutostart},
		{id: "quit", label: "Quit", action: actionQuit},
	}
}

// WindowServiceInterface is the slice of the window service the tray needs.
// Every method tolerates an unregistered name by doing nothing.
type WindowServiceInterface interface {
	Show(name string)
	Hide(name string)
	Emit(name string, event string)
}

// Controller maps tray menu clicks onto window actions. It holds no state
// beyond its collaborators; all effects live in the window layer.
type Controller struct {
	windows WindowServiceInterface
	quit    func()
}

func NewController(windows WindowServiceInterface, quit func()) *Controller {
	return &Controller{windows: windows, quit: quit}
}

func (c *Controller) dispatch(action menuAction) {
	switch action {
	case actionShow:
		c.windows.Show(MainWindowName)
	case actionHide:
		c.windows.Hide(MainWindowName)
	case actionClickThrough:
		c.windows.Emit(MainWindowName, EventToggleClickThrough)
	case actionResetPos:
		c.windows.Emit(MainWindowName, EventResetPosition)
	case actionAutostart:
		c.windows.Emit(MainWindowName, EventToggleAutostart)
	case actionQuit:
		c.quit()
	default:
		// Unknown actions are ignored.
	}
}

// Setup builds the tray icon and its menu and wires each entry to the
// controller. Quitting goes through app.Quit so the process exits cleanly
// with code 0.
func Setup(app *application.App, windows WindowServiceInterface, trayIcon []byte) *Controller {
	controller := NewController(windows, app.Quit)

	tray := app.NewSystemTray()
	menu := application.NewMenu()

	for _, entry := range menuEntries() {
		entry := entry
		menu.Add(entry.label).OnClick(func(_ *application.Context) {
			controller.dispatch(entry.action)
		})
	}

	tray.SetMenu(menu)
	tray.SetIcon(trayIcon)

	return controller
}
