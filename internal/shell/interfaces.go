package shell

import (
	"github.com/sing-config/sing-config/internal/i18n"
	"github.com/sing-config/sing-config/internal/menu"
)

// EventMenu is the name of the event that carries forwarded identifiers to the embedding
// application.
const EventMenu = "menu-event"

// MenuInstaller replaces the menu bar shown by the host window.
type MenuInstaller interface {
	InstallMenu(tree *menu.Tree) error
}

// TrayPresenter renders the tray menu. Presenting again replaces the previous menu.
type TrayPresenter interface {
	Present(tree *menu.TrayTree) error
}

// Emitter delivers named events to the embedding application.
type Emitter interface {
	Emit(name string, payload string)
}

// HideNotifier is told every time the window went from visible to hidden. It is called from
// the shell's watcher goroutine.
type HideNotifier interface {
	WindowHidden(text i18n.Text)
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(name, payload string)

// Emit implements Emitter.
func (f EmitterFunc) Emit(name, payload string) { f(name, payload) }

// MultiEmitter fans one event out to several emitters.
type MultiEmitter []Emitter

// Emit implements Emitter.
func (m MultiEmitter) Emit(name, payload string) {
	for _, e := range m {
		if e != nil {
			e.Emit(name, payload)
		}
	}
}
