package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete loom configuration
type Config struct {
	TUI     TUIConfig     `mapstructure:"tui"`
	Map     MapConfig     `mapstructure:"map"`
	Feed    FeedConfig    `mapstructure:"feed"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Built-ins: "default", "dracula", "nord", "gruvbox", "tokyo-night";
	// custom themes are discovered from the themes directory at startup.
	Theme string `mapstructure:"theme"`
	// Blueprint starts in the blueprint progress visualization instead of
	// the stage overlay (default: false)
	Blueprint bool `mapstructure:"blueprint"`
	// MinCardWidth is the minimum rendered width of a dashboard card in
	// columns (default: 32, min: 20, max: 80)
	MinCardWidth int `mapstructure:"min_card_width"`
	// ApplyGeneratedTheme applies the theme the pipeline generates to the
	// dashboard once generation completes (default: true)
	ApplyGeneratedTheme bool `mapstructure:"apply_generated_theme"`
}

// MapConfig controls the map card's external provider
type MapConfig struct {
	// MapboxToken is the map provider access token. Falls back to the
	// MAPBOX_TOKEN environment variable when empty.
	MapboxToken string `mapstructure:"mapbox_token"`
	// Provider selects the map renderer (default: "ascii")
	// Options: "ascii"
	Provider string `mapstructure:"provider"`
	// MinWidth is the smallest card width (columns) the map initializes
	// into; 0 uses the built-in default
	MinWidth int `mapstructure:"min_width"`
	// MinHeight is the smallest card height (rows) the map initializes
	// into; 0 uses the built-in default
	MinHeight int `mapstructure:"min_height"`
}

// FeedConfig controls where generation progress comes from
type FeedConfig struct {
	// SnapshotPath is the progress snapshot file the backend writes
	// (default: ".loom/progress.json")
	SnapshotPath string `mapstructure:"snapshot_path"`
	// Follow watches the snapshot file for changes instead of reading it
	// once (default: false)
	Follow bool `mapstructure:"follow"`
	// TickMs is the pause between simulated events in demo mode, in
	// milliseconds (default: 350)
	TickMs int `mapstructure:"tick_ms"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir is the log directory; empty uses the user cache directory
	Dir string `mapstructure:"dir"`
}

// Tick returns the simulator tick as a time.Duration
func (f *FeedConfig) Tick() time.Duration {
	return time.Duration(f.TickMs) * time.Millisecond
}

// LogDir resolves the log directory, falling back to the user cache
// directory when unset
func (l *LoggingConfig) LogDir() string {
	if l.Dir != "" {
		return l.Dir
	}
	cache, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(ConfigDir(), "logs")
	}
	return filepath.Join(cache, "loom")
}

// Token resolves the map token, falling back to the MAPBOX_TOKEN
// environment variable. An empty result is not an error here; the map
// card degrades to an inline error at render time.
func (m *MapConfig) Token() string {
	if m.MapboxToken != "" {
		return m.MapboxToken
	}
	return os.Getenv("MAPBOX_TOKEN")
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			Theme:               "default",
			Blueprint:           false,
			MinCardWidth:        32,
			ApplyGeneratedTheme: true,
		},
		Map: MapConfig{
			MapboxToken: "",
			Provider:    "ascii",
			MinWidth:    0, // use mapview defaults
			MinHeight:   0,
		},
		Feed: FeedConfig{
			SnapshotPath: filepath.Join(".loom", "progress.json"),
			Follow:       false,
			TickMs:       350,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.blueprint", defaults.TUI.Blueprint)
	viper.SetDefault("tui.min_card_width", defaults.TUI.MinCardWidth)
	viper.SetDefault("tui.apply_generated_theme", defaults.TUI.ApplyGeneratedTheme)

	// Map defaults
	viper.SetDefault("map.mapbox_token", defaults.Map.MapboxToken)
	viper.SetDefault("map.provider", defaults.Map.Provider)
	viper.SetDefault("map.min_width", defaults.Map.MinWidth)
	viper.SetDefault("map.min_height", defaults.Map.MinHeight)

	// Feed defaults
	viper.SetDefault("feed.snapshot_path", defaults.Feed.SnapshotPath)
	viper.SetDefault("feed.follow", defaults.Feed.Follow)
	viper.SetDefault("feed.tick_ms", defaults.Feed.TickMs)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "loom")
	}
	// Fall back to ~/.config/loom
	home, err := os.UserHomeDir()
	if err != nil {
		return ".loom"
	}
	return filepath.Join(home, ".config", "loom")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidMapProviders returns the list of valid map provider values
func ValidMapProviders() []string {
	return []string{"ascii"}
}

// IsValidMapProvider checks if the given provider is valid
func IsValidMapProvider(provider string) bool {
	for _, valid := range ValidMapProviders() {
		if provider == valid {
			return true
		}
	}
	return false
}
