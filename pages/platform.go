package pages

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/adpulse/core"
	"github.com/jask/adpulse/internal/campaign"
	"github.com/jask/adpulse/internal/compose"
	"github.com/jask/adpulse/widgets"
)

const (
	actionRowDown     = "row-down"
	actionRowUp       = "row-up"
	actionCycleMetric = "cycle-metric"
)

// Platform shows one ad platform: KPI cards against the previous period,
// a per-campaign share of the selected metric, and a campaign table with a
// movable cursor.
type Platform struct {
	path     string
	title    string
	platform string
	cursor   int
	metric   int
}

func NewPlatform(path, title, platform string) *Platform {
	return &Platform{path: path, title: title, platform: platform}
}

func (p *Platform) Path() string  { return p.path }
func (p *Platform) Title() string { return p.title }
func (p *Platform) Scope() string { return "page:platform" }

func (p *Platform) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	rows := len(campaign.FilterPlatform(m.Snapshot().Current, p.platform))
	switch {
	case m.IsAction(km, actionRowDown):
		p.cursor = min(p.cursor+1, max(0, rows-1))
	case m.IsAction(km, actionRowUp):
		p.cursor = max(p.cursor-1, 0)
	case m.IsAction(km, actionCycleMetric):
		opts := campaign.ChartMetrics()
		p.metric = (p.metric + 1) % len(opts)
		return core.StatusCmd("Métrica: " + opts[p.metric].Label)
	}
	return nil
}

func (p *Platform) Build(m *core.Model) widgets.Widget {
	if m.Loading() {
		return widgets.Placeholder(p.title, "Carregando dados…", widgets.ToneNormal)
	}
	snap := m.Snapshot()
	cur := campaign.FilterPlatform(snap.Current, p.platform)
	prev := campaign.FilterPlatform(snap.Previous, p.platform)
	if len(cur) == 0 {
		return widgets.Placeholder(p.title, "Nenhuma campanha de "+p.platform+" no período.", widgets.ToneNormal)
	}

	composer := m.Composer()
	cards, cardsErr := composer.BuildMetricCards(campaign.KPICards(campaign.Calculate(cur), campaign.Calculate(prev)))
	metric := p.Metric()
	slices, pieErr := compose.BuildPieDataset(campaign.GroupBy(cur, campaign.ByCampaign, metric.Of))
	slices = compose.ApplySlicePalette(slices, widgets.SeriesPalette())
	charts := m.Charts()

	return splitView{
		grid: widgets.CardGrid{Cards: cards, Err: cardsErr, MinWidth: 22},
		left: widgets.ChartPane{Title: metric.Label + " por Campanha", Err: pieErr, Draw: func(o widgets.ChartOptions) string {
			return charts.Pie(slices, o)
		}},
		right: campaignTable(cur, composer.Formats(), p.cursor),
	}
}

// Metric is the measure the campaign chart currently shows.
func (p *Platform) Metric() campaign.MetricOption {
	return campaign.ChartMetrics()[p.metric]
}

func campaignTable(rows []campaign.Row, formats compose.FormatTable, cursor int) widgets.Table {
	money := formats[compose.UnitCurrency]
	count := formats[compose.UnitCount]
	pct := formats[compose.UnitPercent]
	t := widgets.Table{
		Title:   "Campanhas",
		Headers: []string{"Campanha", "Gasto", "Cliques", "Conv.", "CTR"},
		Shares:  []float64{0.34, 0.2, 0.16, 0.12, 0.18},
		Cursor:  min(cursor, max(0, len(rows)-1)),
		Focused: true,
	}
	for _, r := range rows {
		k := campaign.Calculate([]campaign.Row{r})
		t.Rows = append(t.Rows, []string{
			r.Campaign,
			money.Format(r.Spend),
			count.Format(float64(r.Clicks)),
			strconv.FormatInt(r.Conversions, 10),
			pct.Format(k.CTR),
		})
	}
	return t
}

// splitView is cards on top and two panes side by side below.
type splitView struct {
	grid        widgets.CardGrid
	left, right widgets.Widget
}

func (v splitView) Render(width, height int) string {
	gridH := v.grid.Height(width)
	if height-gridH < minChartRows {
		return v.grid.Render(width, height)
	}
	return widgets.VStack{
		Widgets: []widgets.Widget{
			v.grid,
			widgets.HStack{Widgets: []widgets.Widget{v.left, v.right}, Ratios: []float64{0.45, 0.55}, Gap: 1},
		},
		Heights: []int{gridH, 0},
	}.Render(width, height)
}
