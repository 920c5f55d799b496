// Package config loads the safe area plugin configuration.
//
// Values come from safearea.{yaml,json,toml} in the configured directory,
// overridden by SAFEAREA_* environment variables (for example
// SAFEAREA_STATUSBARSTYLE or SAFEAREA_SYSTEMBARS_INSETSHANDLING). A missing
// file is not an error: every value has a default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	drifterrors "github.com/go-drift/safearea/pkg/errors"
)

// FileName is the config file base name, without extension.
const FileName = "safearea"

// InsetsHandlingDisable is the only SystemBars.insetsHandling value that
// keeps the host's own inset handling out of the way. An absent value means
// the host still handles insets.
const InsetsHandlingDisable = "disable"

// Config is the plugin configuration.
type Config struct {
	// StatusBarStyle and NavigationBarStyle are the initial styles
	// (DARK, LIGHT or DEFAULT). Empty leaves the bar alone until the app
	// sets a style.
	StatusBarStyle     string `mapstructure:"statusBarStyle" yaml:"statusBarStyle,omitempty"`
	NavigationBarStyle string `mapstructure:"navigationBarStyle" yaml:"navigationBarStyle,omitempty"`

	InitialViewportFitCover       bool `mapstructure:"initialViewportFitCover" yaml:"initialViewportFitCover"`
	DetectViewportFitCoverChanges bool `mapstructure:"detectViewportFitCoverChanges" yaml:"detectViewportFitCoverChanges"`

	SystemBars SystemBarsConfig `mapstructure:"systemBars" yaml:"systemBars"`
	Colors     ColorsConfig     `mapstructure:"colors" yaml:"colors"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
}

// SystemBarsConfig mirrors the host's own SystemBars settings.
type SystemBarsConfig struct {
	InsetsHandling string `mapstructure:"insetsHandling" yaml:"insetsHandling"`
}

// ColorsConfig holds the two theme colors as hex or color names.
type ColorsConfig struct {
	Dark  string `mapstructure:"dark" yaml:"dark"`
	Light string `mapstructure:"light" yaml:"light"`
}

// LoggingConfig selects log level and format.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		InitialViewportFitCover:       true,
		DetectViewportFitCoverChanges: true,
		Colors: ColorsConfig{
			Dark:  "#212b35",
			Light: "#ffffff",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// InsetsHandlingDisabled reports whether the host's inset handling is off.
func (c Config) InsetsHandlingDisabled() bool {
	return strings.EqualFold(strings.TrimSpace(c.SystemBars.InsetsHandling), InsetsHandlingDisable)
}

// Manager loads the configuration and reloads it when the file changes.
type Manager struct {
	viper     *viper.Viper
	mu        sync.RWMutex
	config    Config
	callbacks []func(Config)
	watching  bool
}

// NewManager creates a manager that looks for the config file in dirs,
// in order. With no dirs it looks in the current directory.
func NewManager(dirs ...string) *Manager {
	v := viper.New()
	v.SetConfigName(FileName)
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix("SAFEAREA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	m := &Manager{viper: v, config: Default()}
	m.setDefaults()
	return m
}

// NewFileManager creates a manager bound to one config file path.
func NewFileManager(path string) *Manager {
	m := NewManager(filepath.Dir(path))
	m.viper.SetConfigFile(path)
	return m
}

func (m *Manager) setDefaults() {
	d := Default()
	m.viper.SetDefault("statusBarStyle", d.StatusBarStyle)
	m.viper.SetDefault("navigationBarStyle", d.NavigationBarStyle)
	m.viper.SetDefault("initialViewportFitCover", d.InitialViewportFitCover)
	m.viper.SetDefault("detectViewportFitCoverChanges", d.DetectViewportFitCoverChanges)
	m.viper.SetDefault("systemBars.insetsHandling", d.SystemBars.InsetsHandling)
	m.viper.SetDefault("colors.dark", d.Colors.Dark)
	m.viper.SetDefault("colors.light", d.Colors.Light)
	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)
}

// Load reads the config file, if any, and the environment.
func (m *Manager) Load() error {
	cfg, err := m.read()
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.config = cfg
	m.mu.Unlock()
	return nil
}

func (m *Manager) read() (Config, error) {
	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
			// Defaults and environment only.
		default:
			return Config{}, &drifterrors.Error{Op: "config.Read", Kind: drifterrors.KindConfig, Err: err}
		}
	}

	var cfg Config
	if err := m.viper.Unmarshal(&cfg); err != nil {
		return Config{}, &drifterrors.Error{Op: "config.Unmarshal", Kind: drifterrors.KindConfig, Err: err}
	}
	return cfg, nil
}

// Get returns the current configuration.
func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// File returns the config file in use, or "" when running on defaults.
func (m *Manager) File() string {
	return m.viper.ConfigFileUsed()
}

// OnConfigChange registers a callback for reloaded configurations.
func (m *Manager) OnConfigChange(callback func(Config)) {
	m.mu.Lock()
	m.callbacks = append(m.callbacks, callback)
	m.mu.Unlock()
}

// Watch starts watching the config file. Reload failures are passed to
// onError and the previous configuration is kept.
func (m *Manager) Watch(onError func(error)) {
	m.mu.Lock()
	if m.watching {
		m.mu.Unlock()
		return
	}
	m.watching = true
	m.mu.Unlock()

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := m.read()
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}

		m.mu.Lock()
		m.config = cfg
		callbacks := make([]func(Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.Unlock()

		for _, cb := range callbacks {
			cb(cfg)
		}
	})
	m.viper.WatchConfig()
}

// LoadOptional loads the configuration from dir, falling back to defaults
// when no file is present.
func LoadOptional(dir string) (Config, error) {
	m := NewManager(dir)
	if err := m.Load(); err != nil {
		return Config{}, err
	}
	return m.Get(), nil
}

// WriteDefault writes the default configuration as YAML to path, with
// SystemBars.insetsHandling set to "disable". It refuses to overwrite an
// existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	cfg := Default()
	cfg.SystemBars.InsetsHandling = InsetsHandlingDisable
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode default config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
