package styles

import "github.com/charmbracelet/lipgloss"

// Layout constants shared by the view code when sizing content areas.
const (
	// HeaderLines is the height the Header style occupies: text,
	// bottom padding, bottom border and bottom margin.
	HeaderLines = 4

	// HelpBarLines is the height the HelpBar style occupies: top
	// margin plus text.
	HelpBarLines = 2

	// ViewNewlines is the number of explicit newlines View() adds
	// around the content area.
	ViewNewlines = 2

	// HeaderFooterReserved is the total vertical space unavailable to
	// the content area.
	HeaderFooterReserved = HeaderLines + HelpBarLines + ViewNewlines
)

var (
	// Colors - all colors meet WCAG AA contrast (4.5:1) on both black and dark surfaces
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple (violet-400)
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red (red-400)
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray (brighter for readability)
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray (gray-500)

	// Additional accents for the blueprint view
	GreenColor  = lipgloss.Color("#10B981")
	BlueColor   = lipgloss.Color("#60A5FA")
	YellowColor = lipgloss.Color("#FBBF24")

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Surface   = lipgloss.NewStyle().Background(SurfaceColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Stage status colors
	StatusPendingColor  = lipgloss.Color("#9CA3AF") // Gray
	StatusActiveColor   = lipgloss.Color("#F59E0B") // Amber
	StatusCompleteColor = lipgloss.Color("#10B981") // Green

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Header
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		MarginBottom(1).
		PaddingBottom(1)

	// Footer / status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SurfaceColor).
			Padding(0, 1)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	// Content area
	ContentBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// Card chrome
	CardTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	CardValue = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	// Highlighted list row (calendar day selection, focused entries)
	SelectedItem = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 1)

	// Task checkboxes
	CheckboxDone = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	CheckboxEmpty = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Loading overlay
	OverlayTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	OverlayBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(1, 3)

	StageTitleActive = lipgloss.NewStyle().
				Bold(true).
				Foreground(TextColor)

	StageTitleDone = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	StageTitlePending = lipgloss.NewStyle().
				Foreground(MutedColor)

	StageConnector = lipgloss.NewStyle().
			Foreground(BorderColor)

	StageConnectorLit = lipgloss.NewStyle().
				Foreground(SecondaryColor)

	StageDetail = lipgloss.NewStyle().
			Foreground(MutedColor)

	StageTag = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SurfaceColor).
			Padding(0, 1).
			MarginRight(1)

	// Blueprint view
	BlueprintLine = lipgloss.NewStyle().
			Foreground(BlueColor)

	BlueprintDone = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	BlueprintCall = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Error message
	ErrorMsg = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Success message
	SuccessMsg = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	// Warning message
	WarningMsg = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)
)

// StatusColor returns the color for a stage status.
func StatusColor(status string) lipgloss.Color {
	switch status {
	case "active":
		return StatusActiveColor
	case "complete":
		return StatusCompleteColor
	default:
		return StatusPendingColor
	}
}

// StatusIcon returns an icon for a stage status.
func StatusIcon(status string) string {
	switch status {
	case "active":
		return "●"
	case "complete":
		return "✓"
	default:
		return "○"
	}
}
