package menu

// View is a serializable rendering of a node, used by the CLI dump and the bridge.
type View struct {
	Kind        NodeKind `json:"kind" yaml:"kind"`
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Label       string   `json:"label,omitempty" yaml:"label,omitempty"`
	Accelerator string   `json:"accelerator,omitempty" yaml:"accelerator,omitempty"`
	Checked     bool     `json:"checked,omitempty" yaml:"checked,omitempty"`
	Disabled    bool     `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Children    []View   `json:"children,omitempty" yaml:"children,omitempty"`
}

// ViewOf renders one node and its descendants.
func ViewOf(n Node) View {
	switch v := n.(type) {
	case *Item:
		return View{Kind: KindItem, ID: v.ID, Label: v.Label, Accelerator: v.Accelerator, Disabled: !v.Enabled}
	case *CheckItem:
		return View{Kind: KindCheckItem, ID: v.ID, Label: v.Label, Checked: v.Checked, Disabled: !v.Enabled}
	case *Submenu:
		children := make([]View, 0, len(v.Children))
		for _, c := range v.Children {
			children = append(children, ViewOf(c))
		}
		return View{Kind: KindSubmenu, Label: v.Label, Children: children}
	default:
		return View{Kind: KindSeparator}
	}
}

// Views renders the menu bar.
func (t *Tree) Views() []View {
	out := make([]View, 0, len(t.Menus))
	for _, m := range t.Menus {
		out = append(out, ViewOf(m))
	}
	return out
}

// Views renders the tray menu.
func (t *TrayTree) Views() []View {
	out := make([]View, 0, len(t.Items))
	for _, n := range t.Items {
		out = append(out, ViewOf(n))
	}
	return out
}
