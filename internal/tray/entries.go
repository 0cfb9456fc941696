// Package tray renders the tray menu and forwards tray clicks to the shell.
package tray

import (
	"github.com/sing-config/sing-config/internal/i18n"
	"github.com/sing-config/sing-config/internal/menu"
)

// Handler receives tray interactions.
type Handler interface {
	HandleTrayEvent(id string)
	HandleTrayIconClick()
}

// Entry is one row of the rendered tray menu.
type Entry struct {
	ID        string
	Title     string
	Separator bool
	Checkable bool
	Checked   bool
	Disabled  bool
	Children  []Entry
}

// Entries converts a tray tree into render entries in on-screen order.
func Entries(tree *menu.TrayTree) []Entry {
	if tree == nil {
		return nil
	}
	return entries(tree.Items)
}

func entries(nodes []menu.Node) []Entry {
	out := make([]Entry, 0, len(nodes))
	for _, n := range nodes {
		switch v := n.(type) {
		case *menu.Item:
			out = append(out, Entry{ID: v.ID, Title: v.Label, Disabled: !v.Enabled})
		case *menu.CheckItem:
			out = append(out, Entry{ID: v.ID, Title: v.Label, Checkable: true, Checked: v.Checked, Disabled: !v.Enabled})
		case menu.Separator:
			out = append(out, Entry{Separator: true})
		case *menu.Submenu:
			out = append(out, Entry{Title: v.Label, Children: entries(v.Children)})
		}
	}
	return out
}

// Tooltip is shown when hovering the tray icon.
func Tooltip() string {
	return i18n.AppName
}
