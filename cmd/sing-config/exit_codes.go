package main

import (
	"errors"
	"syscall"

	"github.com/sing-config/sing-config/internal/desktop"
	"github.com/sing-config/sing-config/internal/menu"
)

// Exit codes let launchers tell startup failures apart.
const (
	// ExitCodeSuccess indicates normal program termination
	ExitCodeSuccess = 0

	// ExitCodeGeneralError indicates a generic error (default)
	ExitCodeGeneralError = 1

	// ExitCodeConfigError indicates configuration loading or validation failed
	ExitCodeConfigError = 2

	// ExitCodeMenuBuildError indicates the menu bar or tray menu could not be built
	ExitCodeMenuBuildError = 3

	// ExitCodePortConflict indicates the bridge address is already in use
	ExitCodePortConflict = 4

	// ExitCodeNoDesktop indicates the binary was built without a desktop host
	ExitCodeNoDesktop = 5
)

// configError marks errors caused by the configuration.
type configError struct {
	err error
}

func (e *configError) Error() string { return "configuration error: " + e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// exitCodeFor maps an error returned by a command onto an exit code.
func exitCodeFor(err error) int {
	var cfgErr *configError
	var buildErr *menu.BuildError

	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.As(err, &cfgErr):
		return ExitCodeConfigError
	case errors.As(err, &buildErr):
		return ExitCodeMenuBuildError
	case errors.Is(err, syscall.EADDRINUSE):
		return ExitCodePortConflict
	case errors.Is(err, desktop.ErrUnavailable):
		return ExitCodeNoDesktop
	default:
		return ExitCodeGeneralError
	}
}

// exitCodeDescription returns a human-readable description of the exit code
func exitCodeDescription(code int) string {
	switch code {
	case ExitCodeSuccess:
		return "Success"
	case ExitCodeGeneralError:
		return "General error"
	case ExitCodeConfigError:
		return "Configuration error"
	case ExitCodeMenuBuildError:
		return "Menu build failed"
	case ExitCodePortConflict:
		return "Port conflict - address already in use"
	case ExitCodeNoDesktop:
		return "Desktop host not available in this build"
	default:
		return "Unknown error"
	}
}
