package widgets

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Table is a framed bubbles table. Column widths are shares of the inner
// width; Cursor marks the highlighted row when Focused is set.
type Table struct {
	Title   string
	Headers []string
	Shares  []float64
	Rows    [][]string
	Cursor  int
	Focused bool
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	p := Pane{Title: t.Title}
	if len(t.Headers) == 0 || len(t.Rows) == 0 {
		p.Content = labelStyle.Render("Sem dados")
		return p.Render(width, height)
	}
	innerW, innerH := p.Inner(width, height)
	widths := splitWidths(max(len(t.Headers), innerW-2*len(t.Headers)), len(t.Headers), t.Shares)
	cols := make([]table.Column, len(t.Headers))
	for i, h := range t.Headers {
		cols[i] = table.Column{Title: h, Width: max(1, widths[i])}
	}
	rows := make([]table.Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, table.Row(r))
	}

	tbl := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(t.Focused),
		table.WithHeight(max(1, innerH-1)),
		table.WithWidth(innerW),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(ColorText)
	if t.Focused {
		styles.Selected = styles.Selected.Bold(true).Foreground(ColorMantle).Background(ColorAccent)
	} else {
		styles.Selected = lipgloss.NewStyle()
	}
	tbl.SetStyles(styles)
	tbl.SetCursor(min(max(0, t.Cursor), len(rows)-1))

	p.Content = tbl.View()
	if t.Focused {
		p.Tone = ToneAccent
	}
	return p.Render(width, height)
}
