package styles

import "github.com/charmbracelet/lipgloss"

// activePalette tracks the palette the package styles were last built
// from. Styles are package-level for convenience; ApplyPalette rebuilds
// them in place when the theme changes.
var activePalette = DefaultPalette()

// ActivePalette returns the palette currently applied.
func ActivePalette() *ColorPalette {
	return activePalette
}

// ApplyTheme rebuilds all styles from a named theme. Custom themes are
// looked up before falling back to built-ins.
func ApplyTheme(name ThemeName) {
	if custom := GetCustomTheme(name); custom != nil {
		ApplyPalette(custom.ToPalette())
		return
	}
	ApplyPalette(PaletteFor(name))
}

// ApplyPalette rebuilds all package styles from the given palette. A nil
// palette resets to the default theme.
func ApplyPalette(p *ColorPalette) {
	if p == nil {
		p = DefaultPalette()
	}
	activePalette = p

	PrimaryColor = p.Primary
	SecondaryColor = p.Secondary
	WarningColor = p.Warning
	ErrorColor = p.Error
	MutedColor = p.Muted
	SurfaceColor = p.Surface
	TextColor = p.Text
	BorderColor = p.Border

	GreenColor = p.Green
	BlueColor = p.Blue
	YellowColor = p.Yellow

	StatusPendingColor = p.StatusPending
	StatusActiveColor = p.StatusActive
	StatusCompleteColor = p.StatusComplete

	Primary = lipgloss.NewStyle().Foreground(p.Primary)
	Secondary = lipgloss.NewStyle().Foreground(p.Secondary)
	Warning = lipgloss.NewStyle().Foreground(p.Warning)
	Error = lipgloss.NewStyle().Foreground(p.Error)
	Muted = lipgloss.NewStyle().Foreground(p.Muted)
	Surface = lipgloss.NewStyle().Background(p.Surface)
	Text = lipgloss.NewStyle().Foreground(p.Text)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(p.Border).
		MarginBottom(1).
		PaddingBottom(1)

	StatusBar = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Surface).
		Padding(0, 1)

	HelpBar = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	ContentBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)

	CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	CardValue = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text)

	SelectedItem = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Primary).
		Padding(0, 1)

	CheckboxDone = lipgloss.NewStyle().Foreground(p.Secondary)
	CheckboxEmpty = lipgloss.NewStyle().Foreground(p.Muted)

	OverlayTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	OverlayBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 3)

	StageTitleActive = lipgloss.NewStyle().Bold(true).Foreground(p.Text)
	StageTitleDone = lipgloss.NewStyle().Foreground(p.Secondary)
	StageTitlePending = lipgloss.NewStyle().Foreground(p.Muted)
	StageConnector = lipgloss.NewStyle().Foreground(p.Border)
	StageConnectorLit = lipgloss.NewStyle().Foreground(p.Secondary)
	StageDetail = lipgloss.NewStyle().Foreground(p.Muted)

	StageTag = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Surface).
		Padding(0, 1).
		MarginRight(1)

	BlueprintLine = lipgloss.NewStyle().Foreground(p.Blue)
	BlueprintDone = lipgloss.NewStyle().Foreground(p.Secondary)
	BlueprintCall = lipgloss.NewStyle().Foreground(p.Muted).Italic(true)

	ErrorMsg = lipgloss.NewStyle().Foreground(p.Error).Bold(true)
	SuccessMsg = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)
	WarningMsg = lipgloss.NewStyle().Foreground(p.Warning).Bold(true)
}
