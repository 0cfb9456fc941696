// Package config holds the sing-config runtime configuration and loads it from
// file, environment and command-line flags.
package config

const (
	// DefaultBridgeListen is the address used by `sing-config serve` when bridge.listen is empty.
	DefaultBridgeListen = "127.0.0.1:17654"

	defaultLocale       = "zh"
	defaultLayout       = "auto"
	defaultWindowTitle  = "sing-config"
	defaultWindowWidth  = 1280
	defaultWindowHeight = 800
)

// Config represents the sing-config configuration
type Config struct {
	// Locale is the startup locale tag. Unknown tags resolve to English.
	Locale string `json:"locale" toml:"locale" mapstructure:"locale"`

	// DetectSystemLocale replaces Locale with the OS locale when set. An explicit --locale
	// flag turns it off.
	DetectSystemLocale bool `json:"detect_system_locale" toml:"detect_system_locale" mapstructure:"detect_system_locale"`

	Menu    MenuConfig   `json:"menu" toml:"menu" mapstructure:"menu"`
	Tray    TrayConfig   `json:"tray" toml:"tray" mapstructure:"tray"`
	Window  WindowConfig `json:"window" toml:"window" mapstructure:"window"`
	Bridge  BridgeConfig `json:"bridge" toml:"bridge" mapstructure:"bridge"`
	Logging *LogConfig   `json:"logging,omitempty" toml:"logging,omitempty" mapstructure:"logging"`
}

// MenuConfig selects the menu bar layout
type MenuConfig struct {
	// Layout is one of auto, app-menu or file-menu.
	Layout string `json:"layout" toml:"layout" mapstructure:"layout"`
}

// TrayConfig controls the tray icon and its menu
type TrayConfig struct {
	Enabled      bool `json:"enabled" toml:"enabled" mapstructure:"enabled"`
	FollowLocale bool `json:"follow_locale" toml:"follow_locale" mapstructure:"follow_locale"`
	NotifyOnHide bool `json:"notify_on_hide" toml:"notify_on_hide" mapstructure:"notify_on_hide"`
}

// WindowConfig describes the main window
type WindowConfig struct {
	Title     string `json:"title" toml:"title" mapstructure:"title"`
	Width     int    `json:"width" toml:"width" mapstructure:"width"`
	Height    int    `json:"height" toml:"height" mapstructure:"height"`
	AssetsDir string `json:"assets_dir,omitempty" toml:"assets_dir,omitempty" mapstructure:"assets_dir"` // serve the web view from disk instead of the embedded page
}

// BridgeConfig configures the loopback HTTP bridge
type BridgeConfig struct {
	// Listen is the bridge address. Empty disables the bridge in desktop mode.
	Listen string `json:"listen" toml:"listen" mapstructure:"listen"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level         string `json:"level" toml:"level" mapstructure:"level"`
	EnableFile    bool   `json:"enable_file" toml:"enable_file" mapstructure:"enable_file"`
	EnableConsole bool   `json:"enable_console" toml:"enable_console" mapstructure:"enable_console"`
	Filename      string `json:"filename" toml:"filename" mapstructure:"filename"`
	LogDir        string `json:"log_dir,omitempty" toml:"log_dir,omitempty" mapstructure:"log_dir"` // Custom log directory
	MaxSize       int    `json:"max_size" toml:"max_size" mapstructure:"max_size"`                    // MB
	MaxBackups    int    `json:"max_backups" toml:"max_backups" mapstructure:"max_backups"`           // number of backup files
	MaxAge        int    `json:"max_age" toml:"max_age" mapstructure:"max_age"`                       // days
	Compress      bool   `json:"compress" toml:"compress" mapstructure:"compress"`
	JSONFormat    bool   `json:"json_format" toml:"json_format" mapstructure:"json_format"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Locale: defaultLocale,
		Menu: MenuConfig{
			Layout: defaultLayout,
		},
		Tray: TrayConfig{
			Enabled:      true,
			FollowLocale: true,
			NotifyOnHide: true,
		},
		Window: WindowConfig{
			Title:  defaultWindowTitle,
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
		},
		Logging: &LogConfig{
			Level:         "info",
			EnableFile:    false,
			EnableConsole: true,
			Filename:      "main.log",
			MaxSize:       10,
			MaxBackups:    5,
			MaxAge:        30,
			Compress:      true,
		},
	}
}

// BridgeAddress returns the configured bridge address, or fallback when none is set.
func (c *Config) BridgeAddress(fallback string) string {
	if c.Bridge.Listen != "" {
		return c.Bridge.Listen
	}
	return fallback
}
