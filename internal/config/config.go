package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/jask/adpulse/internal/compose"
	"github.com/jask/adpulse/internal/nav"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig                `mapstructure:"ui"`
	Data    DataConfig              `mapstructure:"data"`
	Log     LogConfig               `mapstructure:"log"`
	Menu    []MenuConfig            `mapstructure:"menu"`
	Formats map[string]FormatConfig `mapstructure:"formats"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AppName        string `mapstructure:"app_name"`
	StartPath      string `mapstructure:"start_path"`
	SidebarOpen    bool   `mapstructure:"sidebar_open"`
	SidebarWidth   int    `mapstructure:"sidebar_width"`
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

// DataConfig points at a snapshot file. Empty means the embedded sample.
type DataConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds zap settings. Empty File disables logging.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

type MenuConfig struct {
	Icon  string `mapstructure:"icon"`
	Label string `mapstructure:"label"`
	Path  string `mapstructure:"path"`
}

// FormatConfig overrides the display rule of one metric unit. Only the keys
// present in the table are changed; the rest keep the unit's default.
type FormatConfig struct {
	Prefix   *string  `mapstructure:"prefix"`
	Suffix   *string  `mapstructure:"suffix"`
	Decimals *int     `mapstructure:"decimals"`
	Divisor  *float64 `mapstructure:"divisor"`
	Grouping *bool    `mapstructure:"grouping"`
}

// Apply overlays the set fields of f on base.
func (f FormatConfig) Apply(base compose.UnitFormat) compose.UnitFormat {
	if f.Prefix != nil {
		base.Prefix = *f.Prefix
	}
	if f.Suffix != nil {
		base.Suffix = *f.Suffix
	}
	if f.Decimals != nil {
		base.Decimals = *f.Decimals
	}
	if f.Divisor != nil {
		base.Divisor = *f.Divisor
	}
	if f.Grouping != nil {
		base.Grouping = *f.Grouping
	}
	return base
}

const (
	envPrefix     = "ADPULSE"
	envConfigPath = "ADPULSE_CONFIG"
	minSidebar    = 12
)

// DefaultPath is ~/.config/adpulse/config.toml.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "adpulse", "config.toml")
}

// LoadDotEnv exports KEY=VALUE pairs from path without overriding variables
// already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from file and env. Env var overrides use prefix ADPULSE_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.app_name", "AdPulse")
	v.SetDefault("ui.start_path", "/")
	v.SetDefault("ui.sidebar_open", true)
	v.SetDefault("ui.sidebar_width", 26)
	v.SetDefault("ui.currency_symbol", "R$")
	v.SetDefault("data.path", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv(envConfigPath)
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit path must exist; the default location is optional
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.UI.SidebarWidth < minSidebar {
		return fmt.Errorf("ui.sidebar_width must be at least %d, got %d", minSidebar, c.UI.SidebarWidth)
	}
	if !strings.HasPrefix(c.UI.StartPath, "/") {
		return fmt.Errorf("ui.start_path must start with /, got %q", c.UI.StartPath)
	}
	if _, err := c.NavMenu(); err != nil {
		return err
	}
	for name, f := range c.Formats {
		if _, ok := compose.DefaultFormats("")[compose.Unit(name)]; !ok {
			return fmt.Errorf("formats.%s: unknown unit", name)
		}
		if f.Decimals != nil && (*f.Decimals < 0 || *f.Decimals > compose.MaxDecimals) {
			return fmt.Errorf("formats.%s.decimals must be between 0 and %d, got %d", name, compose.MaxDecimals, *f.Decimals)
		}
		if f.Divisor != nil && *f.Divisor < 0 {
			return fmt.Errorf("formats.%s.divisor must not be negative", name)
		}
	}
	return nil
}

// NavMenu builds the sidebar menu, falling back to the built-in entries
// when no [[menu]] tables are configured.
func (c Config) NavMenu() (nav.Menu, error) {
	if len(c.Menu) == 0 {
		return nav.NewMenu(nav.DefaultEntries())
	}
	entries := make([]nav.MenuEntry, 0, len(c.Menu))
	for _, m := range c.Menu {
		entries = append(entries, nav.MenuEntry{Icon: m.Icon, Label: m.Label, Path: m.Path})
	}
	menu, err := nav.NewMenu(entries)
	if err != nil {
		return nav.Menu{}, fmt.Errorf("menu: %w", err)
	}
	return menu, nil
}

// FormatTable is the default unit table for the configured currency with
// [formats.<unit>] overrides applied field by field.
func (c Config) FormatTable() compose.FormatTable {
	base := compose.DefaultFormats(c.UI.CurrencySymbol)
	overrides := make(compose.FormatTable, len(c.Formats))
	for name, f := range c.Formats {
		unit := compose.Unit(name)
		overrides[unit] = f.Apply(base[unit])
	}
	return base.Merge(overrides)
}
