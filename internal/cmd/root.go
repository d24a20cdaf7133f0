package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mglynnhenley/loom/internal/config"
	"github.com/mglynnhenley/loom/internal/errors"
	"github.com/mglynnhenley/loom/internal/logging"
	"github.com/mglynnhenley/loom/internal/tui/styles"
)

var rootCmd = &cobra.Command{
	Use:   "loom",
	Short: "Terminal client for fabric personalized dashboards",
	Long: `Loom renders the dashboards the fabric backend weaves for you:
it follows a generation's six-stage progress feed in the terminal and
then lays the selected widget cards out as a dashboard.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/loom/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	rootCmd.PersistentFlags().String("theme", "", "color theme (built-in or custom)")
	_ = viper.BindPFlag("tui.theme", rootCmd.PersistentFlags().Lookup("theme"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/loom")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("LOOM")
	// Replace dots with underscores for nested keys in env vars
	// e.g., LOOM_FEED_SNAPSHOT_PATH for feed.snapshot_path
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// loadConfig resolves the effective configuration and applies the theme,
// discovering custom themes first so they can be selected by name.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.NewConfigError("loading configuration", err)
	}
	_, _ = styles.DiscoverCustomThemes()
	if !styles.IsValidTheme(cfg.TUI.Theme) {
		return nil, errors.NewNotFoundError("theme", cfg.TUI.Theme)
	}
	styles.ApplyTheme(styles.ThemeName(cfg.TUI.Theme))
	return cfg, nil
}

// newLogger builds the configured logger, degrading to the no-op logger
// when logging is disabled or cannot initialize.
func newLogger(cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}
	log, err := logging.NewLogger(cfg.Logging.LogDir(), cfg.Logging.Level)
	if err != nil {
		return logging.NopLogger()
	}
	return log
}
