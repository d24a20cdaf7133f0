package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mglynnhenley/loom/internal/tui/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available color themes",
	Long: `List the built-in themes plus any custom themes found in the themes
directory. Custom themes are YAML files; see the themes directory path
printed below.`,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	loaded, errs := styles.DiscoverCustomThemes()

	for _, name := range styles.BuiltinThemes() {
		cmd.Printf("%s (built-in)\n", name)
	}
	for _, name := range loaded {
		cmd.Println(name)
	}

	cmd.Printf("\nCustom themes directory: %s\n", styles.ThemesDir())
	for _, err := range errs {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}
	return nil
}
