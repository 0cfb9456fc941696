package shell

import (
	"github.com/sing-config/sing-config/internal/i18n"
)

// Commands is the command surface bound into the web view. Method names are part of the
// contract with the front end.
type Commands struct {
	shell *Shell
}

// NewCommands binds the command surface to s.
func NewCommands(s *Shell) *Commands {
	return &Commands{shell: s}
}

// GetCurrentLocale returns the active locale tag.
func (c *Commands) GetCurrentLocale() string {
	return string(c.shell.CurrentLocale())
}

// UpdateMenuLocale rebuilds the native menus for locale.
func (c *Commands) UpdateMenuLocale(locale string) error {
	return c.shell.UpdateMenuLocale(i18n.Locale(locale))
}

// ExitApp terminates the application.
func (c *Commands) ExitApp() {
	c.shell.ExitApp()
}

// SetWindowTitle changes the main window title.
func (c *Commands) SetWindowTitle(title string) error {
	return c.shell.SetWindowTitle(title)
}
