package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/adpulse/internal/nav"
)

// Sidebar lists menu entries and highlights the one whose path equals
// ActivePath. An empty ActivePath highlights nothing.
type Sidebar struct {
	Title      string
	Entries    []nav.MenuEntry
	ActivePath string
}

func (s Sidebar) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	itemWidth := max(1, width-4)
	active := lipgloss.NewStyle().Foreground(ColorMantle).Background(ColorAccent).Bold(true)
	idle := lipgloss.NewStyle().Foreground(ColorSubtext)
	index := lipgloss.NewStyle().Foreground(ColorOverlay)

	lines := make([]string, 0, len(s.Entries))
	for i, e := range s.Entries {
		label := Glyph(e.Icon) + " " + e.Label
		var num string
		if i < 9 {
			num = index.Render(string(rune('1' + i)))
		} else {
			num = " "
		}
		cell := padRight(" "+label, itemWidth-2)
		if s.ActivePath != "" && e.Path == s.ActivePath {
			lines = append(lines, num+" "+active.Render(cell))
		} else {
			lines = append(lines, num+" "+idle.Render(cell))
		}
	}
	return Pane{Title: s.Title, Content: strings.Join(lines, "\n")}.Render(width, height)
}
