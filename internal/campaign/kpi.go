// Package campaign aggregates ad-campaign rows into KPIs and chart inputs,
// and loads the sample snapshot the dashboard renders.
package campaign

import (
	"math"

	"github.com/jask/adpulse/internal/compose"
)

const (
	PlatformGoogle   = "Google"
	PlatformFacebook = "Facebook"
)

// Row is one campaign line for a reporting period.
type Row struct {
	Platform    string
	Campaign    string
	Spend       float64
	Impressions int64
	Clicks      int64
	Conversions int64
	Reach       int64
	Revenue     float64
}

// KPIs are period totals and the ratios derived from them. A ratio whose
// denominator is zero is reported as zero.
type KPIs struct {
	Spend          float64 `json:"spend"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	Reach          int64   `json:"reach"`
	Revenue        float64 `json:"revenue"`
	CTR            float64 `json:"ctr"`
	CPC            float64 `json:"cpc"`
	CPM            float64 `json:"cpm"`
	ConversionRate float64 `json:"conversion_rate"`
	CPA            float64 `json:"cpa"`
	ROAS           float64 `json:"roas"`
}

func Calculate(rows []Row) KPIs {
	var k KPIs
	for _, r := range rows {
		k.Spend += r.Spend
		k.Impressions += r.Impressions
		k.Clicks += r.Clicks
		k.Conversions += r.Conversions
		k.Reach += r.Reach
		k.Revenue += r.Revenue
	}
	impressions := float64(k.Impressions)
	clicks := float64(k.Clicks)
	conversions := float64(k.Conversions)
	k.CTR = ratio(clicks, impressions) * 100
	k.CPC = ratio(k.Spend, clicks)
	k.CPM = ratio(k.Spend, impressions/1000)
	k.ConversionRate = ratio(conversions, clicks) * 100
	k.CPA = ratio(k.Spend, conversions)
	k.ROAS = ratio(k.Revenue, k.Spend)
	return k
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func FilterPlatform(rows []Row, platform string) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.Platform == platform {
			out = append(out, r)
		}
	}
	return out
}

type (
	Key    func(Row) string
	Metric func(Row) float64
)

var (
	ByPlatform Key = func(r Row) string { return r.Platform }
	ByCampaign Key = func(r Row) string { return r.Campaign }

	SpendOf       Metric = func(r Row) float64 { return r.Spend }
	ClicksOf      Metric = func(r Row) float64 { return float64(r.Clicks) }
	ConversionsOf Metric = func(r Row) float64 { return float64(r.Conversions) }
	ImpressionsOf Metric = func(r Row) float64 { return float64(r.Impressions) }
)

// MetricOption is a measure a chart can be switched to.
type MetricOption struct {
	Label string
	Unit  compose.Unit
	Of    Metric
}

// ChartMetrics lists the selectable chart measures, spend first.
func ChartMetrics() []MetricOption {
	return []MetricOption{
		{Label: "Investimento", Unit: compose.UnitCurrency, Of: SpendOf},
		{Label: "Impressões", Unit: compose.UnitThousands, Of: ImpressionsOf},
		{Label: "Cliques", Unit: compose.UnitCount, Of: ClicksOf},
		{Label: "Conversões", Unit: compose.UnitCount, Of: ConversionsOf},
	}
}

// GroupBy sums metric per key in first-seen order.
func GroupBy(rows []Row, key Key, metric Metric) []compose.Group {
	index := make(map[string]int)
	var out []compose.Group
	for _, r := range rows {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, compose.Group{Label: k})
		}
		out[i].Value += metric(r)
	}
	return out
}

// PercentChange returns the change from prev to cur in percentage points,
// rounded to one decimal, or nil when there is no baseline.
func PercentChange(prev, cur float64) *float64 {
	if prev == 0 {
		return nil
	}
	v := math.Round((cur-prev)/math.Abs(prev)*1000) / 10
	return &v
}

// KPICards lists the six headline metrics of cur with deltas against prev.
func KPICards(cur, prev KPIs) []compose.RawMetric {
	return []compose.RawMetric{
		{Title: "Impressões", RawValue: float64(cur.Impressions), Unit: compose.UnitThousands, Change: PercentChange(float64(prev.Impressions), float64(cur.Impressions)), Icon: "eye"},
		{Title: "Cliques", RawValue: float64(cur.Clicks), Unit: compose.UnitThousands, Change: PercentChange(float64(prev.Clicks), float64(cur.Clicks)), Icon: "mouse-pointer"},
		{Title: "CTR", RawValue: cur.CTR, Unit: compose.UnitPercent, Change: PercentChange(prev.CTR, cur.CTR), Icon: "bar-chart"},
		{Title: "CPC Médio", RawValue: cur.CPC, Unit: compose.UnitCurrency, Change: PercentChange(prev.CPC, cur.CPC), Icon: "coins"},
		{Title: "Conversões", RawValue: float64(cur.Conversions), Unit: compose.UnitCount, Change: PercentChange(float64(prev.Conversions), float64(cur.Conversions)), Icon: "target"},
		{Title: "ROAS", RawValue: cur.ROAS, Unit: compose.UnitMultiplier, Change: PercentChange(prev.ROAS, cur.ROAS), Icon: "trending-up"},
	}
}
