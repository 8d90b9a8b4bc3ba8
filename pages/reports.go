package pages

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/adpulse/core"
	"github.com/jask/adpulse/internal/campaign"
	"github.com/jask/adpulse/internal/compose"
	"github.com/jask/adpulse/widgets"
)

// Reports compares platforms over all campaigns of the current period.
type Reports struct {
	path string
}

func NewReports(path string) *Reports {
	return &Reports{path: path}
}

func (r *Reports) Path() string                              { return r.path }
func (r *Reports) Title() string                             { return "Relatórios" }
func (r *Reports) Scope() string                             { return "page:reports" }
func (r *Reports) Update(m *core.Model, msg tea.Msg) tea.Cmd { return nil }

func (r *Reports) Build(m *core.Model) widgets.Widget {
	if m.Loading() {
		return widgets.Placeholder(r.Title(), "Carregando dados…", widgets.ToneNormal)
	}
	snap := m.Snapshot()
	composer := m.Composer()
	cards, cardsErr := composer.BuildMetricCards(campaign.KPICards(campaign.Calculate(snap.Current), campaign.Calculate(snap.Previous)))
	comparison, cmpErr := PlatformComparison(snap.Current)
	if cmpErr == nil {
		comparison = compose.ApplyPalette(comparison, widgets.SeriesPalette())
	}
	charts := m.Charts()

	return splitView{
		grid: widgets.CardGrid{Cards: cards, Err: cardsErr, MinWidth: 22},
		left: widgets.ChartPane{Title: "Comparação por Plataforma", Err: cmpErr, Draw: func(o widgets.ChartOptions) string {
			return charts.Bar(comparison, o)
		}},
		right: platformTable(snap.Current, composer.Formats()),
	}
}

// PlatformComparison is a grouped bar dataset with clicks and conversions
// per platform, platforms in first-seen order.
func PlatformComparison(rows []campaign.Row) (compose.Dataset, error) {
	clicks, err := compose.BuildGroupedBarDataset(campaign.GroupBy(rows, campaign.ByPlatform, campaign.ClicksOf), "Cliques")
	if err != nil {
		return compose.Dataset{}, err
	}
	conversions := campaign.GroupBy(rows, campaign.ByPlatform, campaign.ConversionsOf)
	values := make([]float64, len(conversions))
	for i, g := range conversions {
		values[i] = g.Value
	}
	return clicks.WithSeries(compose.Series{Label: "Conversões", Values: values})
}

func platformTable(rows []campaign.Row, formats compose.FormatTable) widgets.Table {
	money := formats[compose.UnitCurrency]
	ratio := formats[compose.UnitMultiplier]
	t := widgets.Table{
		Title:   "Resumo por Plataforma",
		Headers: []string{"Plataforma", "Gasto", "CPC", "CPA", "ROAS"},
		Shares:  []float64{0.24, 0.24, 0.18, 0.18, 0.16},
	}
	for _, g := range campaign.GroupBy(rows, campaign.ByPlatform, campaign.SpendOf) {
		k := campaign.Calculate(campaign.FilterPlatform(rows, g.Label))
		t.Rows = append(t.Rows, []string{g.Label, money.Format(k.Spend), money.Format(k.CPC), money.Format(k.CPA), ratio.Format(k.ROAS)})
	}
	return t
}
