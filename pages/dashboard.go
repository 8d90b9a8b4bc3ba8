package pages

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/adpulse/core"
	"github.com/jask/adpulse/internal/compose"
	"github.com/jask/adpulse/widgets"
)

// minChartRows is the height below which charts are dropped and only the
// cards render.
const minChartRows = 8

// Dashboard is the landing page: headline cards, the impressions trend,
// investment per channel and the campaign distribution.
type Dashboard struct {
	path string
}

func NewDashboard(path string) *Dashboard {
	return &Dashboard{path: path}
}

func (d *Dashboard) Path() string                              { return d.path }
func (d *Dashboard) Title() string                             { return "Dashboard" }
func (d *Dashboard) Scope() string                             { return "page:dashboard" }
func (d *Dashboard) Update(m *core.Model, msg tea.Msg) tea.Cmd { return nil }

func (d *Dashboard) Build(m *core.Model) widgets.Widget {
	if m.Loading() {
		return widgets.Placeholder(d.Title(), "Carregando dados…", widgets.ToneNormal)
	}
	dash := m.Composer().Compose(m.Snapshot().DashboardInput(widgets.SeriesPalette()))
	return dashboardView{dash: dash, charts: m.Charts()}
}

type dashboardView struct {
	dash   compose.Dashboard
	charts widgets.ChartRenderer
}

func (v dashboardView) Render(width, height int) string {
	grid := widgets.CardGrid{Cards: v.dash.Cards, Err: v.dash.CardsErr, MinWidth: 22}
	gridH := grid.Height(width)
	if height-gridH < minChartRows {
		return grid.Render(width, height)
	}
	trend, bars, pie := v.dash.Trend, v.dash.Bars, v.dash.Pie
	charts := widgets.HStack{
		Widgets: []widgets.Widget{
			widgets.ChartPane{Title: trend.Title, Err: trend.Err, Draw: func(o widgets.ChartOptions) string {
				return v.charts.Line(trend.Dataset, o)
			}},
			widgets.ChartPane{Title: bars.Title, Err: bars.Err, Draw: func(o widgets.ChartOptions) string {
				return v.charts.Bar(bars.Dataset, o)
			}},
		},
		Ratios: []float64{0.6, 0.4},
		Gap:    1,
	}
	pieH := min(len(pie.Slices)+2, 8)
	if pie.Err != nil {
		pieH = 5
	}
	return widgets.VStack{
		Widgets: []widgets.Widget{
			grid,
			charts,
			widgets.ChartPane{Title: pie.Title, Err: pie.Err, Draw: func(o widgets.ChartOptions) string {
				return v.charts.Pie(pie.Slices, o)
			}},
		},
		Heights: []int{gridH, 0, max(3, pieH)},
	}.Render(width, height)
}
