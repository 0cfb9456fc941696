package menu

// WalkFunc is called for every node in depth-first, on-screen order. path holds the labels of
// the enclosing submenus. Returning false stops the walk.
type WalkFunc func(path []string, n Node) bool

// Walk visits every node of the tree.
func (t *Tree) Walk(fn WalkFunc) {
	for _, m := range t.Menus {
		if !walk(nil, m, fn) {
			return
		}
	}
}

// Walk visits every node of the tray menu.
func (t *TrayTree) Walk(fn WalkFunc) {
	for _, n := range t.Items {
		if !walk(nil, n, fn) {
			return
		}
	}
}

func walk(path []string, n Node, fn WalkFunc) bool {
	if !fn(path, n) {
		return false
	}
	sub, ok := n.(*Submenu)
	if !ok {
		return true
	}
	childPath := append(append([]string(nil), path...), sub.Label)
	for _, c := range sub.Children {
		if !walk(childPath, c, fn) {
			return false
		}
	}
	return true
}

// IDOf returns the identifier carried by n, or "" for separators and submenus.
func IDOf(n Node) string {
	switch v := n.(type) {
	case *Item:
		return v.ID
	case *CheckItem:
		return v.ID
	default:
		return ""
	}
}

// IDs lists every identifier in the tree in on-screen order.
func (t *Tree) IDs() []string {
	var ids []string
	t.Walk(func(_ []string, n Node) bool {
		if id := IDOf(n); id != "" {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}

// IDs lists every identifier in the tray menu in on-screen order.
func (t *TrayTree) IDs() []string {
	var ids []string
	t.Walk(func(_ []string, n Node) bool {
		if id := IDOf(n); id != "" {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}

// Find returns the node carrying id, or nil.
func (t *Tree) Find(id string) Node {
	var found Node
	t.Walk(func(_ []string, n Node) bool {
		if IDOf(n) == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Submenu returns the top-level submenu with the given label, or nil.
func (t *Tree) Submenu(label string) *Submenu {
	for _, m := range t.Menus {
		if m.Label == label {
			return m
		}
	}
	return nil
}
