package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultDataDir = ".sing-config"
	ConfigName     = "sing-config"
	ConfigFileName = ConfigName + ".toml"
	EnvPrefix      = "SINGCONFIG"
)

// Flags maps configuration keys such as "menu.layout" to the command-line flags that
// override them. Only flags the user actually set take precedence over the file.
type Flags map[string]*pflag.Flag

// DefaultPath returns ~/.sing-config/sing-config.toml
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, DefaultDataDir, ConfigFileName), nil
}

// Load reads configuration from defaults, the config file, SINGCONFIG_* environment
// variables and flags, in increasing order of precedence. An empty configPath searches
// the working directory and then ~/.sing-config; finding nothing is not an error.
// An explicit configPath must exist.
//
// The returned string is the config file that was used, or "" when none was found.
func Load(configPath string, flags Flags) (*Config, string, error) {
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("toml")
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, DefaultDataDir))
		}
	}

	used := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		used = v.ConfigFileUsed()
	}

	for key, flag := range flags {
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, "", fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, used, nil
}

// newViper returns a viper instance with every key registered so that environment
// variables can override keys absent from the file.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	d := DefaultConfig()
	v.SetDefault("locale", d.Locale)
	v.SetDefault("detect_system_locale", d.DetectSystemLocale)
	v.SetDefault("menu.layout", d.Menu.Layout)
	v.SetDefault("tray.enabled", d.Tray.Enabled)
	v.SetDefault("tray.follow_locale", d.Tray.FollowLocale)
	v.SetDefault("tray.notify_on_hide", d.Tray.NotifyOnHide)
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.assets_dir", d.Window.AssetsDir)
	v.SetDefault("bridge.listen", d.Bridge.Listen)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.enable_file", d.Logging.EnableFile)
	v.SetDefault("logging.enable_console", d.Logging.EnableConsole)
	v.SetDefault("logging.filename", d.Logging.Filename)
	v.SetDefault("logging.log_dir", d.Logging.LogDir)
	v.SetDefault("logging.max_size", d.Logging.MaxSize)
	v.SetDefault("logging.max_backups", d.Logging.MaxBackups)
	v.SetDefault("logging.max_age", d.Logging.MaxAge)
	v.SetDefault("logging.compress", d.Logging.Compress)
	v.SetDefault("logging.json_format", d.Logging.JSONFormat)

	return v
}

// Encode writes cfg as TOML.
func Encode(cfg *Config, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// WriteDefault writes the default configuration to path. An existing file is left alone
// unless overwrite is set.
func WriteDefault(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	defer f.Close()

	return Encode(DefaultConfig(), f)
}
