package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"lazypager/internal/eventbus"
	"lazypager/internal/paging"
)

// FileName is the per-directory config file
const FileName = ".lazypager.toml"

// DefaultAutoplayPeriod is used when autoplay is enabled without a period
const DefaultAutoplayPeriod = 4 * time.Second

// ErrNotFound is returned when a config file does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version   int             `toml:"version"`
	PagesDir  string          `toml:"pages_dir"`
	Direction string          `toml:"direction"` // "horizontal" or "vertical"
	Circular  bool            `toml:"circular"`
	Autoplay  AutoplaySetting `toml:"autoplay"`
	Session   Session         `toml:"session"`
}

// AutoplaySetting configures the autoplay timer
type AutoplaySetting struct {
	Enabled bool   `toml:"enabled"`
	Period  string `toml:"period"` // Go duration, e.g. "3s"
}

// Session is state restored on the next start
type Session struct {
	LastPage int `toml:"last_page"`
}

// PagingDirection returns the parsed scroll axis
func (c *Config) PagingDirection() paging.Direction {
	return paging.ParseDirection(c.Direction)
}

// AutoplayPeriod returns the parsed autoplay period, falling back to the default
func (c *Config) AutoplayPeriod() time.Duration {
	if c.Autoplay.Period == "" {
		return DefaultAutoplayPeriod
	}
	d, err := time.ParseDuration(c.Autoplay.Period)
	if err != nil || d <= 0 {
		return DefaultAutoplayPeriod
	}
	return d
}

// Validate checks values that cannot be fixed up silently
func (c *Config) Validate() error {
	switch c.Direction {
	case "", "horizontal", "vertical":
	default:
		return fmt.Errorf("invalid direction %q", c.Direction)
	}
	if c.Autoplay.Period != "" {
		d, err := time.ParseDuration(c.Autoplay.Period)
		if err != nil {
			return fmt.Errorf("invalid autoplay period: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("autoplay period must be positive, got %s", d)
		}
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for the config file in dir
func NewConfigService(dir string) ConfigService {
	return &configService{
		filePath: filepath.Join(dir, FileName),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(dir string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(dir).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the config file path
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults when the file does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		cfg = DefaultConfig()
		cfg.PagesDir = filepath.Dir(cs.filePath)
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			PagesDir: cfg.PagesDir,
			LastPage: cfg.Session.LastPage,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	cfg.PagesDir = ""
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if cfg.PagesDir == "" {
		cfg.PagesDir = filepath.Dir(path)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:   1,
		PagesDir:  ".",
		Direction: paging.Horizontal.String(),
		Circular:  false,
		Autoplay: AutoplaySetting{
			Enabled: false,
			Period:  DefaultAutoplayPeriod.String(),
		},
	}
}
