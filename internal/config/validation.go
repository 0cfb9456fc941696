package config

import (
	"errors"
	"fmt"
	"net"
	"runtime"
	"strings"

	"github.com/sing-config/sing-config/internal/menu"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate reports every problem in the configuration at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := menu.ParseLayout(c.Menu.Layout, runtime.GOOS); err != nil {
		errs = append(errs, fmt.Errorf("menu.layout: %w", err))
	}

	if c.Window.Width <= 0 {
		errs = append(errs, fmt.Errorf("window.width must be positive, got %d", c.Window.Width))
	}
	if c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window.height must be positive, got %d", c.Window.Height))
	}

	if c.Bridge.Listen != "" {
		if err := validateLoopback(c.Bridge.Listen); err != nil {
			errs = append(errs, fmt.Errorf("bridge.listen %q: %w", c.Bridge.Listen, err))
		}
	}

	if c.Logging != nil {
		if level := strings.ToLower(c.Logging.Level); level != "" && !validLogLevels[level] {
			errs = append(errs, fmt.Errorf("logging.level %q is not one of trace, debug, info, warn, error", c.Logging.Level))
		}
		if !c.Logging.EnableConsole && !c.Logging.EnableFile {
			errs = append(errs, errors.New("logging: at least one of enable_console or enable_file must be set"))
		}
	}

	return errors.Join(errs...)
}

// validateLoopback accepts host:port addresses whose host is "localhost" or a loopback IP.
// The bridge is unauthenticated and stays local.
func validateLoopback(addr string) error {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}
	if strings.EqualFold(host, "localhost") {
		return nil
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
		return nil
	}
	if host == "" {
		return errors.New("host is required, use 127.0.0.1 or localhost")
	}
	return fmt.Errorf("host %q is not a loopback address", host)
}
