package cmd

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/mglynnhenley/loom/internal/config"
	"github.com/mglynnhenley/loom/internal/errors"
)

func TestConfigSetRejectsInvalid(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	viper.Reset()
	defer viper.Reset()
	config.SetDefaults()

	t.Run("unknown key", func(t *testing.T) {
		err := runConfigSet(configSetCmd, []string{"tui.sparkle", "on"})
		var cfgErr *errors.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("err = %T, want *ConfigError", err)
		}
		if cfgErr.Key != "tui.sparkle" {
			t.Errorf("Key = %q, want tui.sparkle", cfgErr.Key)
		}
	})

	t.Run("bad bool", func(t *testing.T) {
		err := runConfigSet(configSetCmd, []string{"feed.follow", "maybe"})
		var valErr *errors.ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("err = %T, want *ValidationError", err)
		}
		if valErr.Field != "feed.follow" {
			t.Errorf("Field = %q, want feed.follow", valErr.Field)
		}
	})

	t.Run("negative int", func(t *testing.T) {
		err := runConfigSet(configSetCmd, []string{"feed.tick_ms", "-5"})
		var valErr *errors.ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("err = %T, want *ValidationError", err)
		}
	})

	t.Run("bad provider", func(t *testing.T) {
		err := runConfigSet(configSetCmd, []string{"map.provider", "hologram"})
		var valErr *errors.ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("err = %T, want *ValidationError", err)
		}
	})
}

func TestLoadConfigUnknownTheme(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	viper.Reset()
	defer viper.Reset()
	config.SetDefaults()
	viper.Set("tui.theme", "no-such-theme")

	_, err := loadConfig()
	if err == nil {
		t.Fatal("loadConfig() = nil, want error for unknown theme")
	}
	if !errors.IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false, want true", err)
	}
}
