// Package desktop hosts the shell inside a Wails window.
package desktop

import (
	"fmt"

	wmenu "github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"

	"github.com/sing-config/sing-config/internal/menu"
)

// ToWailsMenu converts a menu tree into a Wails application menu. Every click calls onClick
// with the entry's identifier. Conversion is all-or-nothing: an accelerator Wails cannot
// parse fails the whole conversion.
func ToWailsMenu(tree *menu.Tree, onClick func(id string)) (*wmenu.Menu, error) {
	root := wmenu.NewMenu()
	for _, sub := range tree.Menus {
		target := root.AddSubmenu(sub.Label)
		if err := addChildren(target, []string{sub.Label}, sub.Children, onClick); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func addChildren(target *wmenu.Menu, path []string, nodes []menu.Node, onClick func(id string)) error {
	for _, n := range nodes {
		switch v := n.(type) {
		case *menu.Item:
			accel, err := accelerator(v.Accelerator)
			if err != nil {
				return &menu.BuildError{Target: menu.TargetMenuBar, Path: path, ID: v.ID, Accelerator: v.Accelerator, Err: err}
			}
			item := target.AddText(v.Label, accel, callback(v.ID, onClick))
			item.Disabled = !v.Enabled
		case *menu.CheckItem:
			item := target.AddCheckbox(v.Label, v.Checked, nil, callback(v.ID, onClick))
			item.Disabled = !v.Enabled
		case menu.Separator:
			target.AddSeparator()
		case *menu.Submenu:
			child := target.AddSubmenu(v.Label)
			if err := addChildren(child, append(append([]string(nil), path...), v.Label), v.Children, onClick); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported menu node %T", n)
		}
	}
	return nil
}

func accelerator(s string) (*keys.Accelerator, error) {
	if s == "" {
		return nil, nil
	}
	accel, err := keys.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", menu.ErrInvalidAccelerator, err)
	}
	return accel, nil
}

func callback(id string, onClick func(id string)) wmenu.Callback {
	return func(*wmenu.CallbackData) {
		if onClick != nil {
			onClick(id)
		}
	}
}
