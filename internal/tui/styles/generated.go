package styles

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Generated themes arrive from the pipeline's theme stage as a name and
// an ordered list of hex colors. Positions map onto the palette as:
//
//	0: primary  1: secondary  2: accent (blue)  3: surface  4: text
//
// Invalid hex values are skipped and the slot keeps its base value, so a
// partially broken generated theme still yields a usable palette.

// minContrast is the WCAG AA contrast ratio required between text and
// surface before a generated text color is accepted.
const minContrast = 4.5

// PaletteFromGenerated builds a palette for a backend-generated theme.
// The base is the built-in palette matching name when one exists,
// otherwise the default palette.
func PaletteFromGenerated(name string, colors []string) *ColorPalette {
	var p *ColorPalette
	if IsBuiltinTheme(name) {
		p = PaletteFor(ThemeName(name))
	} else {
		p = DefaultPalette()
	}

	slots := []*lipgloss.Color{&p.Primary, &p.Secondary, &p.Blue, &p.Surface, &p.Text}
	for i, hex := range colors {
		if i >= len(slots) {
			break
		}
		c, ok := ParseHexColor(hex)
		if !ok {
			continue
		}
		*slots[i] = c
	}

	// A generated text/surface pair that fails AA contrast reverts both
	// slots rather than producing an unreadable dashboard.
	if contrastRatio(p.Text, p.Surface) < minContrast {
		base := DefaultPalette()
		p.Text = base.Text
		p.Surface = base.Surface
	}

	p.StatusComplete = p.Secondary
	return p
}

// ParseHexColor validates a hex color string and returns it as a
// lipgloss color.
func ParseHexColor(hex string) (lipgloss.Color, bool) {
	if _, err := colorful.Hex(hex); err != nil {
		return "", false
	}
	return lipgloss.Color(hex), true
}

// contrastRatio computes the WCAG contrast ratio between two colors.
// Unparseable colors yield 0.
func contrastRatio(a, b lipgloss.Color) float64 {
	ca, errA := colorful.Hex(string(a))
	cb, errB := colorful.Hex(string(b))
	if errA != nil || errB != nil {
		return 0
	}
	la := relativeLuminance(ca)
	lb := relativeLuminance(cb)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

func relativeLuminance(c colorful.Color) float64 {
	r := linearize(c.R)
	g := linearize(c.G)
	b := linearize(c.B)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
