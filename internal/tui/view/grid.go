package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mglynnhenley/loom/internal/widget"
)

// GridItem is one rendered card plus its requested footprint.
type GridItem struct {
	View string
	Size widget.Size
}

// GridColumns returns how many cards fit side by side for a terminal
// width, given the configured minimum card width. Always at least one,
// capped at three; the dashboard reads better as a few wide columns than
// many cramped ones.
func GridColumns(width, minCardWidth int) int {
	if minCardWidth <= 0 {
		minCardWidth = 32
	}
	cols := width / (minCardWidth + 2)
	if cols < 1 {
		return 1
	}
	if cols > 3 {
		return 3
	}
	return cols
}

// CardWidth returns the inner content width for a card of the given size
// in a grid of the given geometry. Wide cards span the full row.
func CardWidth(size widget.Size, totalWidth, columns int) int {
	if size == widget.SizeWide || columns < 1 {
		return totalWidth - 2
	}
	return totalWidth/columns - 2
}

// RenderGrid lays rendered cards into rows. Wide cards flush the current
// row and take one of their own; everything else packs left to right,
// top-aligned, up to the column count. Order follows the manifest.
func RenderGrid(items []GridItem, columns int) string {
	if len(items) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	var rows []string
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
		current = nil
	}

	for _, item := range items {
		if item.Size == widget.SizeWide {
			flush()
			rows = append(rows, item.View)
			continue
		}
		current = append(current, item.View)
		if len(current) == columns {
			flush()
		}
	}
	flush()

	return strings.Join(rows, "\n")
}
