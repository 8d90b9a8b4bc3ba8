package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup centers popup in a rounded card over base. Rows of base
// outside the card's columns stay visible.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseCanvas := fitCanvas(base, width, height)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Padding(0, 1).
		MaxWidth(width).
		Render(popup)
	cardLines := strings.Split(card, "\n")
	if len(cardLines) > height {
		cardLines = cardLines[:height]
	}
	cardWidth := 0
	for _, l := range cardLines {
		cardWidth = max(cardWidth, ansi.StringWidth(l))
	}
	x := max(0, (width-cardWidth)/2)
	y := max(0, (height-len(cardLines))/2)

	lines := splitToLines(baseCanvas, height)
	for i, l := range cardLines {
		row := y + i
		if row >= height {
			break
		}
		target := padRight(lines[row], width)
		left := padRight(ansi.Truncate(target, x, ""), x)
		segment := padRight(l, cardWidth)
		right := dropColumns(target, x+cardWidth)
		lines[row] = padRight(left+segment+right, width)
	}
	return strings.Join(lines, "\n")
}

func fitCanvas(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	truncated := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, truncated)
}
