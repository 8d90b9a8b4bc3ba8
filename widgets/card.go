package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/adpulse/internal/compose"
)

const cardHeight = 5

// Card renders one metric tile: glyph and title in the border, the
// formatted value, and the delta colored by its sign.
type Card struct {
	Metric compose.MetricCard
}

func (c Card) Render(width, height int) string {
	value := lipgloss.NewStyle().Foreground(ColorText).Bold(true).Render(c.Metric.Value)
	delta := lipgloss.NewStyle().Foreground(ColorOverlay).Render("sem comparação")
	switch c.Metric.Trend() {
	case compose.TrendPositive:
		delta = lipgloss.NewStyle().Foreground(ColorPositive).Render(Glyph("trending-up") + " " + c.Metric.DeltaText())
	case compose.TrendNegative:
		delta = lipgloss.NewStyle().Foreground(ColorNegative).Render(Glyph("trending-down") + " " + c.Metric.DeltaText())
	}
	return Pane{
		Title:   Glyph(c.Metric.Icon) + " " + c.Metric.Title,
		Height:  cardHeight,
		Content: value + "\n" + delta,
	}.Render(width, height)
}

// CardGrid lays cards out in rows, as many per row as MinWidth allows.
// A non-nil Err replaces the whole grid with an error placeholder.
type CardGrid struct {
	Cards    []compose.MetricCard
	Err      error
	MinWidth int
}

func (g CardGrid) Columns(width int) int {
	minWidth := g.MinWidth
	if minWidth <= 0 {
		minWidth = 20
	}
	return max(1, min(len(g.Cards), width/minWidth))
}

// Height is the number of lines the grid needs at width.
func (g CardGrid) Height(width int) int {
	if g.Err != nil || len(g.Cards) == 0 {
		return 3
	}
	cols := g.Columns(width)
	rows := (len(g.Cards) + cols - 1) / cols
	return rows * cardHeight
}

func (g CardGrid) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if g.Err != nil {
		return Placeholder("Métricas", g.Err.Error(), ToneError).Render(width, height)
	}
	if len(g.Cards) == 0 {
		return Placeholder("Métricas", "Sem métricas", ToneNormal).Render(width, height)
	}
	cols := g.Columns(width)
	rows := make([]Widget, 0, (len(g.Cards)+cols-1)/cols)
	for start := 0; start < len(g.Cards); start += cols {
		row := make([]Widget, 0, cols)
		for _, card := range g.Cards[start:min(start+cols, len(g.Cards))] {
			row = append(row, Card{Metric: card})
		}
		for len(row) < cols {
			row = append(row, Text(""))
		}
		rows = append(rows, HStack{Widgets: row, Gap: 1})
	}
	return VStack{Widgets: rows}.Render(width, min(height, len(rows)*cardHeight))
}
