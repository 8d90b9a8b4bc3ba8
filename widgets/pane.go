package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type Tone int

const (
	ToneNormal Tone = iota
	ToneAccent
	ToneError
)

// Pane draws rounded chrome with the title inlined in the top border.
// A zero Height fills the available area.
type Pane struct {
	Title   string
	Height  int
	Content string
	Tone    Tone
}

func (p Pane) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	h := p.Height
	if h <= 0 || h > height {
		h = height
	}
	if h < 3 {
		h = 3
	}
	if width < 4 {
		width = 4
	}

	border := ColorBorder
	titlePrefix := ""
	switch p.Tone {
	case ToneAccent:
		border = ColorAccent
		titlePrefix = "▶ "
	case ToneError:
		border = ColorNegative
		titlePrefix = "! "
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(true)

	innerWidth := width - 2
	contentWidth := max(1, innerWidth-2)

	title := strings.TrimSpace(titlePrefix + p.Title)
	titleText := ""
	if title != "" {
		titleText = " " + title + " "
		if ansi.StringWidth(titleText) > innerWidth-1 {
			titleText = " " + ansi.Truncate(title, max(1, innerWidth-3), "") + " "
		}
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭"+strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)+"╮")

	innerHeight := h - 2
	contentLines := splitLines(p.Content)
	rows := make([]string, 0, h)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

// Inner is the content area a pane of the given outer size offers.
func (Pane) Inner(width, height int) (int, int) {
	return max(1, width-4), max(1, height-2)
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Placeholder renders a pane whose body is a muted message, used for
// loading states and visualizations that could not be built.
func Placeholder(title, message string, tone Tone) Pane {
	style := lipgloss.NewStyle().Foreground(ColorOverlay)
	if tone == ToneError {
		style = lipgloss.NewStyle().Foreground(ColorNegative)
	}
	return Pane{Title: title, Content: style.Render(message), Tone: tone}
}
