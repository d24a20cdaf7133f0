package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mglynnhenley/loom/internal/config"
	"github.com/mglynnhenley/loom/internal/errors"
	"github.com/mglynnhenley/loom/internal/tui/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify loom configuration",
	Long: `View or modify loom configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  loom config set tui.theme dracula
  loom config set feed.snapshot_path ~/.loom/progress.json
  loom config set map.mapbox_token pk.xxxx

Valid keys:
  tui.theme                  - Color theme (built-in or custom)
  tui.blueprint              - Start in the blueprint visualization (true/false)
  tui.min_card_width         - Minimum dashboard card width in columns
  tui.apply_generated_theme  - Apply the pipeline's generated theme (true/false)
  map.mapbox_token           - Map provider access token
  map.provider               - Map renderer (ascii)
  feed.snapshot_path         - Progress snapshot file path
  feed.follow                - Watch the snapshot for changes (true/false)
  feed.tick_ms               - Pause between simulated events in demo mode
  logging.enabled            - Enable debug logging (true/false)
  logging.level              - Log level: debug, info, warn, error`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/loom/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	fmt.Println("Current configuration:")
	fmt.Println()

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Printf("Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Printf("Config file: (none - using defaults)\n")
	}
	fmt.Println()

	fmt.Println("tui:")
	fmt.Printf("  theme: %s\n", cfg.TUI.Theme)
	fmt.Printf("  blueprint: %v\n", cfg.TUI.Blueprint)
	fmt.Printf("  min_card_width: %d\n", cfg.TUI.MinCardWidth)
	fmt.Printf("  apply_generated_theme: %v\n", cfg.TUI.ApplyGeneratedTheme)

	fmt.Println("map:")
	token := "(not set)"
	if cfg.Map.Token() != "" {
		token = "(set)"
	}
	fmt.Printf("  mapbox_token: %s\n", token)
	fmt.Printf("  provider: %s\n", cfg.Map.Provider)

	fmt.Println("feed:")
	fmt.Printf("  snapshot_path: %s\n", cfg.Feed.SnapshotPath)
	fmt.Printf("  follow: %v\n", cfg.Feed.Follow)
	fmt.Printf("  tick_ms: %d\n", cfg.Feed.TickMs)

	fmt.Println("logging:")
	fmt.Printf("  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Printf("  level: %s\n", cfg.Logging.Level)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	// Validate the key exists
	validKeys := map[string]string{
		"tui.theme":                 "string",
		"tui.blueprint":             "bool",
		"tui.min_card_width":        "int",
		"tui.apply_generated_theme": "bool",
		"map.mapbox_token":          "string",
		"map.provider":              "string",
		"feed.snapshot_path":        "string",
		"feed.follow":               "bool",
		"feed.tick_ms":              "int",
		"logging.enabled":           "bool",
		"logging.level":             "string",
	}

	keyType, ok := validKeys[key]
	if !ok {
		return errors.NewConfigError("unknown key, run 'loom config set --help' to see valid keys", nil).WithKey(key)
	}

	// Validate the value based on type
	var typedValue interface{}
	switch keyType {
	case "string":
		switch key {
		case "map.provider":
			if !config.IsValidMapProvider(value) {
				return errors.NewValidationError(key, fmt.Sprintf("%q is not a provider, valid options: %s",
					value, strings.Join(config.ValidMapProviders(), ", ")))
			}
		case "tui.theme":
			_, _ = styles.DiscoverCustomThemes()
			if !styles.IsValidTheme(value) {
				return errors.NewValidationError(key, fmt.Sprintf("%q is not a theme, valid themes: %s",
					value, strings.Join(styles.ValidThemes(), ", ")))
			}
		}
		typedValue = value
	case "bool":
		if value != "true" && value != "false" {
			return errors.NewValidationError(key, "expected true or false")
		}
		typedValue = value == "true"
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return errors.NewValidationError(key, "expected an integer")
		}
		if intVal < 0 {
			return errors.NewValidationError(key, "must be non-negative")
		}
		typedValue = intVal
	}

	// Ensure config directory exists
	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set the value in viper
	viper.Set(key, typedValue)

	// Write to config file
	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Set %s = %v\n", key, typedValue)
	fmt.Printf("Config saved to %s\n", configFile)

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'loom config set' to modify values", configFile)
	}

	// Create config directory
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Generate a commented config file
	configContent := `# Loom configuration

# TUI (terminal user interface) settings
tui:
  # Color theme: default, dracula, nord, gruvbox, tokyo-night,
  # or a custom theme from the themes directory
  theme: default
  # Start in the blueprint progress visualization
  blueprint: false
  # Minimum rendered width of a dashboard card in columns
  min_card_width: 32
  # Apply the theme the pipeline generates for you
  apply_generated_theme: true

# Map card settings
map:
  # Mapbox access token; MAPBOX_TOKEN env var works too
  mapbox_token: ""
  # Map renderer
  provider: ascii

# Progress feed settings
feed:
  # Snapshot file the fabric backend writes
  snapshot_path: .loom/progress.json
  # Watch the snapshot for changes by default
  follow: false
  # Milliseconds between simulated events in demo mode
  tick_ms: 350

# Debug logging
logging:
  enabled: true
  level: info
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	fmt.Println("Edit this file to customize loom's behavior.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	configFile := config.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Printf("Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Printf("Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	fmt.Println("\nSearch paths:")
	fmt.Printf("  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Printf("  2. $HOME/.config/loom/config.yaml\n")
	fmt.Printf("  3. ./config.yaml (current directory)\n")
	fmt.Println("\nEnvironment variables: LOOM_* (e.g., LOOM_TUI_THEME)")

	return nil
}
