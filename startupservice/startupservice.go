package startupservice

import (
	"os"

	"github.com/ProtonMail/go-autostart"
)

// StartupService registers Overglass as a login item. Constructing the
// service registers the capability with the OS mechanism (a launch agent on
// macOS, an autostart entry elsewhere); nothing is enabled until the window
// layer asks for it in response to the toggle-autostart notification.
type StartupService struct {
	app *autostart.App
}

func NewStartupService() *StartupService {
	execPath, err := os.Executable()
	if err != nil {
		execPath = "/Applications/Overglass.app/Contents/MacOS/overglass"
	}

	app := &autostart.App{
		Name:        "Overglass",
		DisplayName: "Overglass",
		Exec:        []string{execPath},
	}

	return &StartupService{app: app}
}

func (s *StartupService) EnableLaunchAtLogin() error {
	return s.app.Enable()
}

func (s *StartupService) DisableLaunchAtLogin() error {
	return s.app.Disable()
}

func (s *StartupService) IsEnabled() bool {
	return s.app.IsEnabled()
}

// ToggleLaunchAtLogin flips the login item and reports the new state.
func (s *StartupService) ToggleLaunchAtLogin() (bool, error) {
	if s.IsEnabled() {
		if err := s.DisableLaunchAtLogin(); err != nil {
			return true, err
		}
		return false, nil
	}

	if err := s.EnableLaunchAtLogin(); err != nil {
		return false, err
	}
	return true, nil
}
