package widgets

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/adpulse/internal/compose"
)

type ChartOptions struct {
	Width  int
	Height int
}

// ChartRenderer paints declarative datasets. Datasets arrive validated.
type ChartRenderer interface {
	Line(d compose.Dataset, o ChartOptions) string
	Bar(d compose.Dataset, o ChartOptions) string
	Pie(slices []compose.PieSlice, o ChartOptions) string
}

// NTCharts renders lines and bars with ntcharts. Pies are drawn as
// proportional bars since a terminal cell grid has no good arc.
type NTCharts struct{}

var (
	axisStyle  = lipgloss.NewStyle().Foreground(ColorBorder)
	labelStyle = lipgloss.NewStyle().Foreground(ColorOverlay)
)

func (NTCharts) Line(d compose.Dataset, o ChartOptions) string {
	if len(d.Categories) == 0 || o.Width < 8 || o.Height < 4 {
		return ""
	}
	legend := renderLegend(d.Series, o.Width)
	chartH := max(3, o.Height-lipgloss.Height(legend))

	maxY := 0.0
	for _, s := range d.Series {
		for _, v := range s.Values {
			maxY = math.Max(maxY, v)
		}
	}
	_, yMax := niceScale(maxY, chartH)
	maxX := float64(len(d.Categories) - 1)
	if maxX == 0 {
		maxX = 1
	}

	chart := linechart.New(o.Width, chartH, 0, maxX, 0, yMax,
		linechart.WithXYSteps(1, 2),
	)
	chart.AxisStyle = axisStyle
	chart.LabelStyle = labelStyle
	chart.XLabelFormatter = categoryLabels(d.Categories)
	chart.YLabelFormatter = func(_ int, v float64) string { return formatAxisTick(v) }
	chart.DrawXYAxisAndLabel()

	for _, s := range d.Series {
		chart.Style = hintStyle(s.ColorHint)
		if len(s.Values) == 1 {
			p := canvas.Float64Point{X: 0, Y: s.Values[0]}
			chart.DrawBrailleLine(p, p)
			continue
		}
		for i := 1; i < len(s.Values); i++ {
			chart.DrawBrailleLine(
				canvas.Float64Point{X: float64(i - 1), Y: s.Values[i-1]},
				canvas.Float64Point{X: float64(i), Y: s.Values[i]},
			)
		}
	}
	return chart.View() + "\n" + legend
}

// Bar draws one bar per category and series, series side by side inside
// each category group, labelled once per group.
func (NTCharts) Bar(d compose.Dataset, o ChartOptions) string {
	if len(d.Categories) == 0 || o.Width < 8 || o.Height < 4 {
		return ""
	}
	legend := renderLegend(d.Series, o.Width)
	chartH := max(3, o.Height-lipgloss.Height(legend))

	bars := make([]barchart.BarData, 0, len(d.Categories)*max(1, len(d.Series)))
	for i, cat := range d.Categories {
		for j, s := range d.Series {
			label := ""
			if j == 0 {
				label = cat
			}
			bars = append(bars, barchart.BarData{
				Label: label,
				Values: []barchart.BarValue{{
					Name:  s.Label,
					Value: s.Values[i],
					Style: hintStyle(s.ColorHint),
				}},
			})
		}
	}

	chart := barchart.New(o.Width, chartH,
		barchart.WithStyles(axisStyle, labelStyle),
		barchart.WithBarGap(1),
	)
	chart.PushAll(bars)
	chart.Draw()
	return chart.View() + "\n" + legend
}

// Pie lists each slice with a bar proportional to its share of the total.
// Zero-valued slices keep their row.
func (NTCharts) Pie(slices []compose.PieSlice, o ChartOptions) string {
	if o.Width <= 0 || o.Height <= 0 {
		return ""
	}
	if len(slices) == 0 {
		return labelStyle.Render("Sem dados")
	}
	total := 0.0
	labelW := 0
	for _, s := range slices {
		total += s.Value
		labelW = max(labelW, ansi.StringWidth(s.Label))
	}
	labelW = min(labelW, max(4, o.Width/3))
	barW := max(1, o.Width-labelW-12)

	lines := make([]string, 0, len(slices))
	for _, s := range slices {
		share := 0.0
		if total > 0 {
			share = s.Value / total
		}
		filled := int(math.Round(share * float64(barW)))
		style := hintStyle(s.ColorHint)
		bar := style.Render(strings.Repeat("█", filled)) + axisStyle.Render(strings.Repeat("░", barW-filled))
		label := padRight(ansi.Truncate(s.Label, labelW, "…"), labelW)
		lines = append(lines, fmt.Sprintf("%s %s %s %5.1f%%", style.Render("●"), label, bar, share*100))
		if len(lines) >= o.Height {
			break
		}
	}
	return strings.Join(lines, "\n")
}

func renderLegend(series []compose.Series, width int) string {
	parts := make([]string, 0, len(series))
	for _, s := range series {
		parts = append(parts, hintStyle(s.ColorHint).Render("●")+" "+labelStyle.Render(s.Label))
	}
	return ansi.Truncate(strings.Join(parts, "  "), width, "")
}

func categoryLabels(cats []string) linechart.LabelFormatter {
	return func(_ int, v float64) string {
		i := int(math.Round(v))
		if i < 0 || i >= len(cats) || math.Abs(v-float64(i)) > 0.2 {
			return ""
		}
		return cats[i]
	}
}

// niceScale picks a round step so roughly one tick fits every two rows,
// and the axis maximum as a whole number of steps covering maxVal.
func niceScale(maxVal float64, rows int) (step, top float64) {
	if maxVal <= 0 {
		return 1, 1
	}
	ticks := max(1, rows/2)
	step = niceCeil(maxVal / float64(ticks))
	top = math.Ceil(maxVal/step) * step
	if top < maxVal {
		top += step
	}
	return step, top
}

func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	pow := math.Pow(10, math.Floor(math.Log10(v)))
	f := v / pow
	switch {
	case f <= 1:
		return pow
	case f <= 2:
		return 2 * pow
	case f <= 5:
		return 5 * pow
	default:
		return 10 * pow
	}
}

func formatAxisTick(v float64) string {
	if v < 0 {
		return ""
	}
	switch {
	case v >= 1_000_000:
		return trimDecimal(fmt.Sprintf("%.1fm", v/1_000_000))
	case v >= 1_000:
		return trimDecimal(fmt.Sprintf("%.1fk", v/1_000))
	default:
		return trimDecimal(fmt.Sprintf("%.1f", v))
	}
}

func trimDecimal(s string) string {
	return strings.Replace(s, ".0", "", 1)
}

// ChartPane frames a chart, or the error that kept it from being built.
type ChartPane struct {
	Title string
	Err   error
	Draw  func(o ChartOptions) string
}

func (c ChartPane) Render(width, height int) string {
	if c.Err != nil {
		return Placeholder(c.Title, "Não foi possível montar o gráfico:\n"+c.Err.Error(), ToneError).Render(width, height)
	}
	p := Pane{Title: c.Title}
	w, h := p.Inner(width, height)
	if c.Draw != nil {
		p.Content = c.Draw(ChartOptions{Width: w, Height: h})
	}
	return p.Render(width, height)
}
