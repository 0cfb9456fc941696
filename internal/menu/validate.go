package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/menu/keys"
)

// Validation failures reported through BuildError.
var (
	ErrDuplicateID        = errors.New("duplicate menu identifier")
	ErrEmptyID            = errors.New("empty menu identifier")
	ErrEmptyLabel         = errors.New("empty menu label")
	ErrInvalidAccelerator = errors.New("invalid accelerator")
	ErrTrayAccelerator    = errors.New("tray entries cannot carry accelerators")
	ErrLanguageSelection  = errors.New("language submenu must have exactly one checked entry")
)

// Menu targets used in BuildError.Target.
const (
	TargetMenuBar = "menu"
	TargetTray    = "tray"
)

// BuildError reports why a menu or tray tree was rejected. Nothing is installed when a build
// fails.
type BuildError struct {
	Target      string
	Path        []string
	ID          string
	Accelerator string
	Err         error
}

func (e *BuildError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "build %s", e.Target)
	if len(e.Path) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(e.Path, " > "))
	}
	if e.ID != "" {
		fmt.Fprintf(&b, " item %q", e.ID)
	}
	if e.Accelerator != "" {
		fmt.Fprintf(&b, " accelerator %q", e.Accelerator)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ValidateAccelerator checks an accelerator string against the Wails key grammar.
func ValidateAccelerator(accel string) error {
	if accel == "" {
		return nil
	}
	if _, err := keys.Parse(accel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAccelerator, err)
	}
	return nil
}

func validateTree(t *Tree) error {
	var err error
	seen := make(map[string]struct{})

	t.Walk(func(path []string, n Node) bool {
		err = validateNode(TargetMenuBar, path, n, seen)
		return err == nil
	})
	if err != nil {
		return err
	}

	// Language entries form a radio group
	var checked int
	t.Walk(func(_ []string, n Node) bool {
		if c, ok := n.(*CheckItem); ok && isLanguageID(c.ID) && c.Checked {
			checked++
		}
		return true
	})
	if checked != 1 {
		return &BuildError{Target: TargetMenuBar, Err: fmt.Errorf("%w (got %d)", ErrLanguageSelection, checked)}
	}
	return nil
}

func validateTray(t *TrayTree) error {
	var err error
	seen := make(map[string]struct{})

	t.Walk(func(path []string, n Node) bool {
		if it, ok := n.(*Item); ok && it.Accelerator != "" {
			err = &BuildError{Target: TargetTray, Path: path, ID: it.ID, Accelerator: it.Accelerator, Err: ErrTrayAccelerator}
			return false
		}
		err = validateNode(TargetTray, path, n, seen)
		return err == nil
	})
	return err
}

func validateNode(target string, path []string, n Node, seen map[string]struct{}) error {
	fail := func(id, accel string, cause error) error {
		return &BuildError{Target: target, Path: path, ID: id, Accelerator: accel, Err: cause}
	}

	switch v := n.(type) {
	case *Item:
		if err := checkIdentity(v.ID, v.Label, seen); err != nil {
			return fail(v.ID, "", err)
		}
		if err := ValidateAccelerator(v.Accelerator); err != nil {
			return fail(v.ID, v.Accelerator, err)
		}
	case *CheckItem:
		if err := checkIdentity(v.ID, v.Label, seen); err != nil {
			return fail(v.ID, "", err)
		}
	case *Submenu:
		if v.Label == "" {
			return fail("", "", ErrEmptyLabel)
		}
	}
	return nil
}

func checkIdentity(id, label string, seen map[string]struct{}) error {
	if id == "" {
		return ErrEmptyID
	}
	if label == "" {
		return ErrEmptyLabel
	}
	if _, dup := seen[id]; dup {
		return ErrDuplicateID
	}
	seen[id] = struct{}{}
	return nil
}

func isLanguageID(id string) bool {
	return id == IDViewLanguageZh || id == IDViewLanguageEn
}
