package widgets

import "github.com/charmbracelet/lipgloss"

var (
	ColorText     lipgloss.Color = "#cdd6f4"
	ColorSubtext  lipgloss.Color = "#a6adc8"
	ColorOverlay  lipgloss.Color = "#7f849c"
	ColorBorder   lipgloss.Color = "#6c7086"
	ColorSurface  lipgloss.Color = "#313244"
	ColorMantle   lipgloss.Color = "#181825"
	ColorAccent   lipgloss.Color = "#89b4fa"
	ColorPositive lipgloss.Color = "#a6e3a1"
	ColorNegative lipgloss.Color = "#f38ba8"
	ColorWarning  lipgloss.Color = "#f9e2af"
)

var seriesPalette = []string{"#89b4fa", "#a6e3a1", "#f9e2af", "#f38ba8", "#cba6f7", "#94e2d5", "#fab387"}

// SeriesPalette is the ordered color cycle for chart series and pie slices.
func SeriesPalette() []string {
	out := make([]string, len(seriesPalette))
	copy(out, seriesPalette)
	return out
}

func hintStyle(hint string) lipgloss.Style {
	if hint == "" {
		return lipgloss.NewStyle().Foreground(ColorAccent)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hint))
}
