package mapview

import (
	"fmt"
	"math"
	"strings"

	"github.com/mglynnhenley/loom/internal/errors"
)

// ASCIIProvider renders maps as a character grid with plotted markers.
// It stands in for the external tile library behind the same Provider
// contract, including the token requirement, so the card's error path is
// identical whichever provider is wired in.
type ASCIIProvider struct{}

// NewASCIIProvider creates the default map provider.
func NewASCIIProvider() *ASCIIProvider {
	return &ASCIIProvider{}
}

// Name implements Provider.
func (p *ASCIIProvider) Name() string { return "ascii" }

// Acquire implements Provider.
func (p *ASCIIProvider) Acquire(vp Viewport, cfg Config) (Handle, error) {
	if cfg.Token == "" {
		return nil, errors.ErrMapTokenMissing
	}
	if vp.Width <= 0 || vp.Height <= 0 {
		return nil, errors.ErrMapViewportTooSmall
	}

	zoom := cfg.Zoom
	if zoom <= 0 {
		zoom = 10
	}

	return &asciiHandle{
		centerLat: cfg.CenterLat,
		centerLng: cfg.CenterLng,
		zoom:      zoom,
		markers:   append([]MarkerSpec(nil), cfg.Markers...),
	}, nil
}

// asciiHandle is an acquired ASCII map instance.
type asciiHandle struct {
	centerLat float64
	centerLng float64
	zoom      int
	markers   []MarkerSpec
	released  bool
}

// Render draws the map grid with markers plotted relative to the center.
// Markers that fall outside the viewport at the current zoom are listed
// below the grid instead of being dropped silently.
func (h *asciiHandle) Render(width, height int) string {
	if h.released || width <= 0 || height <= 0 {
		return ""
	}

	gridH := height
	legend := make([]string, 0, len(h.markers))
	if len(h.markers) > 0 && gridH > 2 {
		gridH = height - 1 // reserve one line for the legend
	}

	grid := make([][]rune, gridH)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = '·'
		}
	}

	// Degrees of longitude spanned by the viewport, halved per zoom step.
	span := 360.0 / math.Pow(2, float64(h.zoom))

	for i, m := range h.markers {
		dx := (m.Lng - h.centerLng) / span * float64(width)
		dy := (h.centerLat - m.Lat) / span * float64(gridH) * 2 // cells are ~2x taller than wide
		x := width/2 + int(math.Round(dx))
		y := gridH/2 + int(math.Round(dy))

		label := markerRune(i)
		if x >= 0 && x < width && y >= 0 && y < gridH {
			grid[y][x] = label
		}
		legend = append(legend, fmt.Sprintf("%c %s", label, m.Label))
	}

	var b strings.Builder
	for y := range grid {
		b.WriteString(string(grid[y]))
		if y < len(grid)-1 || len(legend) > 0 {
			b.WriteString("\n")
		}
	}
	if len(legend) > 0 {
		line := strings.Join(legend, "  ")
		if len([]rune(line)) > width {
			line = string([]rune(line)[:width])
		}
		b.WriteString(line)
	}
	return b.String()
}

// Release implements Handle. Safe to call more than once.
func (h *asciiHandle) Release() error {
	h.released = true
	return nil
}

// markerRune returns the glyph for the i-th marker: A, B, C, ...
// wrapping after Z.
func markerRune(i int) rune {
	return rune('A' + i%26)
}
