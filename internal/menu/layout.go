package menu

import (
	"fmt"
	"strings"

	"github.com/sing-config/sing-config/internal/i18n"
)

// Layout decides how the shared submenus are arranged on a platform family.
// A layout is chosen once at startup and reused for every rebuild.
type Layout interface {
	// Name identifies the layout in config files and logs.
	Name() string

	// Compose returns the top-level submenus in on-screen order.
	Compose(locale i18n.Locale, text *i18n.Text) []*Submenu
}

// Layout names accepted by ParseLayout.
const (
	LayoutAuto     = "auto"
	LayoutAppMenu  = "app-menu"
	LayoutFileMenu = "file-menu"
)

// AppMenuLayout leads with an application submenu (About, Quit) the way macOS expects.
// File carries no Quit entry.
type AppMenuLayout struct{}

// Name implements Layout.
func (AppMenuLayout) Name() string { return LayoutAppMenu }

// Compose implements Layout.
func (AppMenuLayout) Compose(locale i18n.Locale, text *i18n.Text) []*Submenu {
	return []*Submenu{
		AppMenu(text),
		FileMenu(text, false),
		EditMenu(text),
		ViewMenu(text, locale),
		ToolsMenu(text),
		SettingsMenu(text),
		HelpMenu(text),
	}
}

// FileMenuLayout has no application submenu; Quit closes the File submenu instead.
type FileMenuLayout struct{}

// Name implements Layout.
func (FileMenuLayout) Name() string { return LayoutFileMenu }

// Compose implements Layout.
func (FileMenuLayout) Compose(locale i18n.Locale, text *i18n.Text) []*Submenu {
	return []*Submenu{
		FileMenu(text, true),
		EditMenu(text),
		ViewMenu(text, locale),
		ToolsMenu(text),
		SettingsMenu(text),
		HelpMenu(text),
	}
}

// LayoutFor returns the conventional layout for a GOOS value.
func LayoutFor(goos string) Layout {
	if goos == "darwin" {
		return AppMenuLayout{}
	}
	return FileMenuLayout{}
}

// ParseLayout resolves a configured layout name. "auto" and "" defer to LayoutFor(goos).
func ParseLayout(name, goos string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", LayoutAuto:
		return LayoutFor(goos), nil
	case LayoutAppMenu:
		return AppMenuLayout{}, nil
	case LayoutFileMenu:
		return FileMenuLayout{}, nil
	default:
		return nil, fmt.Errorf("unknown menu layout %q (valid: %s, %s, %s)", name, LayoutAuto, LayoutAppMenu, LayoutFileMenu)
	}
}
