package desktop

import (
	"fmt"

	"github.com/sing-config/sing-config/internal/shell"
)

// startShell attaches w and installer to the shell and starts it. When the start fails the
// window is detached again, so the quit that follows is not turned into a hide.
func startShell(s *shell.Shell, w *Window, installer shell.MenuInstaller) error {
	s.Window().Attach(w)
	s.SetInstaller(installer)

	if err := s.Start(); err != nil {
		s.Window().Detach()
		return fmt.Errorf("start native shell: %w", err)
	}
	return nil
}
