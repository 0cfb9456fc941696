// Package menu builds the locale-aware description of the menu bar and the tray menu.
// Trees produced here are plain data: the desktop host converts them into native menus and
// the router matches on the identifiers they carry.
package menu

// NodeKind discriminates the variants of Node.
type NodeKind string

const (
	KindItem      NodeKind = "item"
	KindCheckItem NodeKind = "check_item"
	KindSeparator NodeKind = "separator"
	KindSubmenu   NodeKind = "submenu"
)

// Node is one entry of a menu. The set of implementations is closed: *Item, *CheckItem,
// Separator and *Submenu.
type Node interface {
	Kind() NodeKind
	node()
}

// Item is a clickable entry with an optional accelerator.
type Item struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label" yaml:"label"`
	Accelerator string `json:"accelerator,omitempty" yaml:"accelerator,omitempty"`
	Enabled     bool   `json:"enabled" yaml:"enabled"`
}

// CheckItem is a clickable entry rendered with a check mark.
type CheckItem struct {
	ID      string `json:"id" yaml:"id"`
	Label   string `json:"label" yaml:"label"`
	Checked bool   `json:"checked" yaml:"checked"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// Separator is a horizontal rule between groups of entries.
type Separator struct{}

// Submenu groups child nodes under a label. Children order is the on-screen order.
type Submenu struct {
	Label    string `json:"label" yaml:"label"`
	Children []Node `json:"children" yaml:"children"`
}

func (*Item) Kind() NodeKind      { return KindItem }
func (*CheckItem) Kind() NodeKind { return KindCheckItem }
func (Separator) Kind() NodeKind  { return KindSeparator }
func (*Submenu) Kind() NodeKind   { return KindSubmenu }

func (*Item) node()      {}
func (*CheckItem) node() {}
func (Separator) node()  {}
func (*Submenu) node()   {}

// Tree is the menu bar: an ordered list of top-level submenus.
type Tree struct {
	Menus []*Submenu
}

// TrayTree is the flat menu attached to the tray icon.
type TrayTree struct {
	Items []Node
}

// item is a shorthand for an enabled Item.
func item(id, label, accelerator string) *Item {
	return &Item{ID: id, Label: label, Accelerator: accelerator, Enabled: true}
}

func checkItem(id, label string, checked bool) *CheckItem {
	return &CheckItem{ID: id, Label: label, Checked: checked, Enabled: true}
}

func submenu(label string, children ...Node) *Submenu {
	return &Submenu{Label: label, Children: children}
}
