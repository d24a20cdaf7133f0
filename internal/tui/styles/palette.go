package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available built-in theme names.
const (
	ThemeDefault    ThemeName = "default"     // Purple/green dark theme
	ThemeDracula    ThemeName = "dracula"     // Dracula theme colors
	ThemeNord       ThemeName = "nord"        // Nord theme - cool blue-gray
	ThemeGruvbox    ThemeName = "gruvbox"     // Gruvbox retro groove
	ThemeTokyoNight ThemeName = "tokyo-night" // Tokyo Night modern theme
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeDracula),
		string(ThemeNord),
		string(ThemeGruvbox),
		string(ThemeTokyoNight),
	}
}

// IsBuiltinTheme reports whether name is a built-in theme.
func IsBuiltinTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// ColorPalette defines the color scheme for a theme. Styles are rebuilt
// from a palette when the active theme changes, including the theme the
// backend generates mid-pipeline.
// All colors should meet WCAG AA contrast requirements (4.5:1 ratio).
type ColorPalette struct {
	// Primary accent color (used for emphasis, card titles, the overlay frame)
	Primary lipgloss.Color
	// Secondary accent color (used for secondary emphasis, success states)
	Secondary lipgloss.Color
	// Warning color (used for warnings, the active stage)
	Warning lipgloss.Color
	// Error color (used for errors, failed generations)
	Error lipgloss.Color
	// Muted color (used for de-emphasized text, pending stages)
	Muted lipgloss.Color
	// Surface color (used for card and tag backgrounds)
	Surface lipgloss.Color
	// Text color (primary text)
	Text lipgloss.Color
	// Border color (card borders, stage connectors)
	Border lipgloss.Color

	// Stage status colors
	StatusPending  lipgloss.Color
	StatusActive   lipgloss.Color
	StatusComplete lipgloss.Color

	// Additional accent colors (blueprint view, card details)
	Blue   lipgloss.Color
	Yellow lipgloss.Color
	Green  lipgloss.Color
}

// DefaultPalette returns the default purple/green dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red (red-400)
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Surface:   lipgloss.Color("#1F2937"), // Dark surface
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray-500

		StatusPending:  lipgloss.Color("#9CA3AF"), // Gray
		StatusActive:   lipgloss.Color("#F59E0B"), // Amber
		StatusComplete: lipgloss.Color("#10B981"), // Green

		Blue:   lipgloss.Color("#60A5FA"),
		Yellow: lipgloss.Color("#FBBF24"),
		Green:  lipgloss.Color("#10B981"),
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"), // Dracula purple
		Secondary: lipgloss.Color("#50FA7B"), // Dracula green
		Warning:   lipgloss.Color("#FFB86C"), // Dracula orange
		Error:     lipgloss.Color("#FF5555"), // Dracula red
		Muted:     lipgloss.Color("#6272A4"), // Dracula comment
		Surface:   lipgloss.Color("#282A36"), // Dracula background
		Text:      lipgloss.Color("#F8F8F2"), // Dracula foreground
		Border:    lipgloss.Color("#6272A4"), // Dracula comment

		StatusPending:  lipgloss.Color("#6272A4"),
		StatusActive:   lipgloss.Color("#FFB86C"),
		StatusComplete: lipgloss.Color("#50FA7B"),

		Blue:   lipgloss.Color("#8BE9FD"), // Dracula cyan
		Yellow: lipgloss.Color("#F1FA8C"),
		Green:  lipgloss.Color("#50FA7B"),
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"), // Nord frost cyan
		Secondary: lipgloss.Color("#A3BE8C"), // Nord green
		Warning:   lipgloss.Color("#EBCB8B"), // Nord yellow
		Error:     lipgloss.Color("#BF616A"), // Nord red
		Muted:     lipgloss.Color("#81A1C1"), // Nord frost blue
		Surface:   lipgloss.Color("#2E3440"), // Nord polar night
		Text:      lipgloss.Color("#ECEFF4"), // Nord snow storm
		Border:    lipgloss.Color("#4C566A"), // Nord polar night light

		StatusPending:  lipgloss.Color("#81A1C1"),
		StatusActive:   lipgloss.Color("#EBCB8B"),
		StatusComplete: lipgloss.Color("#A3BE8C"),

		Blue:   lipgloss.Color("#81A1C1"),
		Yellow: lipgloss.Color("#EBCB8B"),
		Green:  lipgloss.Color("#A3BE8C"),
	}
}

// GruvboxPalette returns the Gruvbox dark theme palette.
func GruvboxPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#D3869B"), // Gruvbox purple
		Secondary: lipgloss.Color("#B8BB26"), // Gruvbox green
		Warning:   lipgloss.Color("#FABD2F"), // Gruvbox yellow
		Error:     lipgloss.Color("#FB4934"), // Gruvbox red
		Muted:     lipgloss.Color("#928374"), // Gruvbox gray
		Surface:   lipgloss.Color("#282828"), // Gruvbox background
		Text:      lipgloss.Color("#EBDBB2"), // Gruvbox foreground
		Border:    lipgloss.Color("#665C54"), // Gruvbox bg3

		StatusPending:  lipgloss.Color("#928374"),
		StatusActive:   lipgloss.Color("#FABD2F"),
		StatusComplete: lipgloss.Color("#B8BB26"),

		Blue:   lipgloss.Color("#83A598"),
		Yellow: lipgloss.Color("#FABD2F"),
		Green:  lipgloss.Color("#B8BB26"),
	}
}

// TokyoNightPalette returns the Tokyo Night theme palette.
func TokyoNightPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BB9AF7"), // Tokyo Night purple
		Secondary: lipgloss.Color("#9ECE6A"), // Tokyo Night green
		Warning:   lipgloss.Color("#E0AF68"), // Tokyo Night orange
		Error:     lipgloss.Color("#F7768E"), // Tokyo Night red
		Muted:     lipgloss.Color("#565F89"), // Tokyo Night comment
		Surface:   lipgloss.Color("#1A1B26"), // Tokyo Night background
		Text:      lipgloss.Color("#C0CAF5"), // Tokyo Night foreground
		Border:    lipgloss.Color("#414868"), // Tokyo Night terminal black

		StatusPending:  lipgloss.Color("#565F89"),
		StatusActive:   lipgloss.Color("#E0AF68"),
		StatusComplete: lipgloss.Color("#9ECE6A"),

		Blue:   lipgloss.Color("#7AA2F7"),
		Yellow: lipgloss.Color("#E0AF68"),
		Green:  lipgloss.Color("#9ECE6A"),
	}
}

// PaletteFor returns the palette for a theme name. Unknown names fall
// back to the default palette.
func PaletteFor(name ThemeName) *ColorPalette {
	switch name {
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	case ThemeGruvbox:
		return GruvboxPalette()
	case ThemeTokyoNight:
		return TokyoNightPalette()
	default:
		return DefaultPalette()
	}
}
