// Package config handles the XDG configuration directory, file paths and the
// optional config.yaml settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"todo/internal/logger"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// SettingsFile is the optional settings filename inside the config directory.
	SettingsFile = "config.yaml"

	// DatabaseFile is the default task database filename.
	DatabaseFile = "todo.db"

	// DefaultKey is the storage key the task collection lives under.
	DefaultKey = "tasks"

	// DefaultServeAddr is the listen address of the web UI.
	DefaultServeAddr = "127.0.0.1:8080"

	// EnvPrefix prefixes environment overrides, e.g. TODO_STORAGE_BACKEND.
	EnvPrefix = "TODO"
)

// Storage backends.
const (
	BackendBolt   = "bolt"
	BackendMemory = "memory"
)

// ID schemes.
const (
	IDSchemeTime = "time"
	IDSchemeUUID = "uuid"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `mapstructure:"-"`

	// Debug enables debug logging.
	Debug bool `mapstructure:"-"`

	// Quiet suppresses informational output.
	Quiet bool `mapstructure:"-"`

	// Logger is set by the dispatcher once the log level is known.
	Logger *logger.Logger `mapstructure:"-"`

	Storage StorageConfig `mapstructure:"storage"`
	IDs     string        `mapstructure:"ids"`
	Log     LogConfig     `mapstructure:"log"`
	Serve   ServeConfig   `mapstructure:"serve"`
}

// StorageConfig selects and locates the key-value store.
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
	Key     string `mapstructure:"key"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type ServeConfig struct {
	Addr string `mapstructure:"addr"`
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
// Settings are read from config.yaml in that directory when present and
// can be overridden through TODO_* environment variables.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir}

	v := viper.New()
	v.SetDefault("storage.backend", BackendBolt)
	v.SetDefault("storage.path", "")
	v.SetDefault("storage.key", DefaultKey)
	v.SetDefault("ids", IDSchemeTime)
	v.SetDefault("log.level", "warn")
	v.SetDefault("serve.addr", DefaultServeAddr)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfg.HasSettingsFile() {
		v.SetConfigFile(cfg.SettingsPath())
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", SettingsFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings. Empty values mean "use the default".
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "", BackendBolt, BackendMemory:
	default:
		return fmt.Errorf("invalid storage.backend: %q (want %s or %s)", c.Storage.Backend, BackendBolt, BackendMemory)
	}
	switch c.IDs {
	case "", IDSchemeTime, IDSchemeUUID:
	default:
		return fmt.Errorf("invalid ids: %q (want %s or %s)", c.IDs, IDSchemeTime, IDSchemeUUID)
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to config.yaml.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// HasSettingsFile checks if config.yaml exists.
func (c *Config) HasSettingsFile() bool {
	_, err := os.Stat(c.SettingsPath())
	return err == nil
}

// DatabasePath returns the bolt database path: storage.path if set,
// otherwise todo.db inside the config directory.
func (c *Config) DatabasePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	return filepath.Join(c.Dir, DatabaseFile)
}

// StorageKey returns the key the task collection is persisted under.
func (c *Config) StorageKey() string {
	if c.Storage.Key == "" {
		return DefaultKey
	}
	return c.Storage.Key
}

// ServeAddr returns the web UI listen address.
func (c *Config) ServeAddr() string {
	if c.Serve.Addr == "" {
		return DefaultServeAddr
	}
	return c.Serve.Addr
}

// LogLevel returns the effective log level; --debug wins over the file.
func (c *Config) LogLevel() string {
	if c.Debug {
		return "debug"
	}
	if c.Log.Level == "" {
		return "warn"
	}
	return c.Log.Level
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
