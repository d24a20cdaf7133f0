package styles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Solarized Dark")
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Description provides details about the theme (optional)
	Description string `yaml:"description,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors should be hex format (#RRGGBB or #RGB).
type ThemeColors struct {
	// Base colors
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`

	// Stage status colors (optional, default from base colors)
	Status ThemeStatusColors `yaml:"status,omitempty"`

	// Accent colors (optional, default from base colors)
	Accents ThemeAccentColors `yaml:"accents,omitempty"`
}

// ThemeStatusColors defines optional per-status colors for pipeline stages.
type ThemeStatusColors struct {
	Pending  string `yaml:"pending,omitempty"`
	Active   string `yaml:"active,omitempty"`
	Complete string `yaml:"complete,omitempty"`
}

// ThemeAccentColors defines optional accent colors.
type ThemeAccentColors struct {
	Blue   string `yaml:"blue,omitempty"`
	Yellow string `yaml:"yellow,omitempty"`
	Green  string `yaml:"green,omitempty"`
}

// LoadThemeFile loads a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}

	if t.Version == "" {
		return errors.New("theme version is required")
	}

	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version: %s (supported: 1)", t.Version)
	}

	// Validate required base colors
	requiredColors := map[string]string{
		"primary":   t.Colors.Primary,
		"secondary": t.Colors.Secondary,
		"warning":   t.Colors.Warning,
		"error":     t.Colors.Error,
		"muted":     t.Colors.Muted,
		"surface":   t.Colors.Surface,
		"text":      t.Colors.Text,
		"border":    t.Colors.Border,
	}

	for name, color := range requiredColors {
		if color == "" {
			return fmt.Errorf("color '%s' is required", name)
		}
		if _, ok := ParseHexColor(color); !ok {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", name, color)
		}
	}

	// Validate optional colors if provided
	optionalColors := map[string]string{
		"status.pending":  t.Colors.Status.Pending,
		"status.active":   t.Colors.Status.Active,
		"status.complete": t.Colors.Status.Complete,
		"accents.blue":    t.Colors.Accents.Blue,
		"accents.yellow":  t.Colors.Accents.Yellow,
		"accents.green":   t.Colors.Accents.Green,
	}

	for name, color := range optionalColors {
		if color == "" {
			continue
		}
		if _, ok := ParseHexColor(color); !ok {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", name, color)
		}
	}

	return nil
}

// ToPalette converts the theme file to a ColorPalette.
func (t *ThemeFile) ToPalette() *ColorPalette {
	p := &ColorPalette{
		Primary:   lipgloss.Color(t.Colors.Primary),
		Secondary: lipgloss.Color(t.Colors.Secondary),
		Warning:   lipgloss.Color(t.Colors.Warning),
		Error:     lipgloss.Color(t.Colors.Error),
		Muted:     lipgloss.Color(t.Colors.Muted),
		Surface:   lipgloss.Color(t.Colors.Surface),
		Text:      lipgloss.Color(t.Colors.Text),
		Border:    lipgloss.Color(t.Colors.Border),
	}

	p.StatusPending = colorOrDefault(t.Colors.Status.Pending, t.Colors.Muted)
	p.StatusActive = colorOrDefault(t.Colors.Status.Active, t.Colors.Warning)
	p.StatusComplete = colorOrDefault(t.Colors.Status.Complete, t.Colors.Secondary)

	p.Blue = colorOrDefault(t.Colors.Accents.Blue, t.Colors.Primary)
	p.Yellow = colorOrDefault(t.Colors.Accents.Yellow, t.Colors.Warning)
	p.Green = colorOrDefault(t.Colors.Accents.Green, t.Colors.Secondary)

	return p
}

// colorOrDefault returns the color if non-empty, otherwise returns the default.
func colorOrDefault(color, defaultColor string) lipgloss.Color {
	if color != "" {
		return lipgloss.Color(color)
	}
	return lipgloss.Color(defaultColor)
}

// customThemes stores loaded custom themes.
var customThemes = make(map[ThemeName]*ThemeFile)

// RegisterCustomTheme registers a custom theme by name.
func RegisterCustomTheme(name ThemeName, theme *ThemeFile) {
	customThemes[name] = theme
}

// GetCustomTheme returns a custom theme by name, or nil if not found.
func GetCustomTheme(name ThemeName) *ThemeFile {
	return customThemes[name]
}

// CustomThemeNames returns the names of all registered custom themes.
func CustomThemeNames() []string {
	names := make([]string, 0, len(customThemes))
	for name := range customThemes {
		names = append(names, string(name))
	}
	return names
}

// ClearCustomThemes removes all registered custom themes.
// Primarily used for testing.
func ClearCustomThemes() {
	customThemes = make(map[ThemeName]*ThemeFile)
}

// ValidThemes returns all valid theme names (built-in + custom).
func ValidThemes() []string {
	themes := BuiltinThemes()
	themes = append(themes, CustomThemeNames()...)
	return themes
}

// IsValidTheme checks if a theme name is valid (built-in or custom).
func IsValidTheme(name string) bool {
	if slices.Contains(BuiltinThemes(), name) {
		return true
	}
	return IsCustomTheme(name)
}

// IsCustomTheme checks if a theme name is a registered custom theme.
func IsCustomTheme(name string) bool {
	return customThemes[ThemeName(name)] != nil
}

// themesDirFn is the function that returns the themes directory.
// This can be overridden in tests.
var themesDirFn = defaultThemesDir

// defaultThemesDir returns the default themes directory path.
func defaultThemesDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "loom", "themes")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".loom", "themes")
	}
	return filepath.Join(home, ".config", "loom", "themes")
}

// ThemesDir returns the directory where custom themes are stored.
func ThemesDir() string {
	return themesDirFn()
}

// SetThemesDirFunc sets the function used to determine the themes directory.
// This is primarily useful for testing. Returns the previous function.
func SetThemesDirFunc(fn func() string) func() string {
	prev := themesDirFn
	themesDirFn = fn
	return prev
}

// DiscoverCustomThemes scans the themes directory and loads all valid themes.
// Invalid themes are skipped with their errors collected.
func DiscoverCustomThemes() ([]string, []error) {
	dir := ThemesDir()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, []error{fmt.Errorf("creating themes directory: %w", err)}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, []error{fmt.Errorf("reading themes directory: %w", err)}
	}

	var loaded []string
	var errs []error

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		path := filepath.Join(dir, name)
		theme, err := LoadThemeFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}

		themeName := strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml")

		// Custom themes may not shadow built-ins.
		if IsBuiltinTheme(themeName) {
			errs = append(errs, fmt.Errorf("%s: cannot override built-in theme '%s'", name, themeName))
			continue
		}

		RegisterCustomTheme(ThemeName(themeName), theme)
		loaded = append(loaded, themeName)
	}

	return loaded, errs
}
