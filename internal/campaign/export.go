package campaign

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Report is the tabular export of one period: totals, one line per
// platform and one per campaign, in first-seen order.
type Report struct {
	Total     KPIs           `json:"total"`
	Platforms []PlatformLine `json:"platforms"`
	Campaigns []CampaignLine `json:"campaigns"`
}

type PlatformLine struct {
	Platform string `json:"platform"`
	KPIs
}

type CampaignLine struct {
	Platform string `json:"platform"`
	Campaign string `json:"campaign"`
	KPIs
}

// BuildReport aggregates rows, keeping only the given platforms when any
// are named.
func BuildReport(rows []Row, platforms ...string) Report {
	if len(platforms) > 0 {
		keep := make(map[string]bool, len(platforms))
		for _, p := range platforms {
			keep[p] = true
		}
		var filtered []Row
		for _, r := range rows {
			if keep[r.Platform] {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	rep := Report{Total: Calculate(rows)}
	for _, g := range GroupBy(rows, ByPlatform, SpendOf) {
		rep.Platforms = append(rep.Platforms, PlatformLine{Platform: g.Label, KPIs: Calculate(FilterPlatform(rows, g.Label))})
	}
	for _, r := range rows {
		rep.Campaigns = append(rep.Campaigns, CampaignLine{Platform: r.Platform, Campaign: r.Campaign, KPIs: Calculate([]Row{r})})
	}
	return rep
}

var csvHeader = []string{
	"level", "platform", "campaign",
	"spend", "impressions", "clicks", "conversions", "reach", "revenue",
	"ctr", "cpc", "cpm", "conversion_rate", "cpa", "roas",
}

// WriteCSV writes one table with a level column: total, platform, campaign.
func (r Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	records := [][]string{csvRecord("total", "", "", r.Total)}
	for _, p := range r.Platforms {
		records = append(records, csvRecord("platform", p.Platform, "", p.KPIs))
	}
	for _, c := range r.Campaigns {
		records = append(records, csvRecord("campaign", c.Platform, c.Campaign, c.KPIs))
	}
	if err := cw.WriteAll(records); err != nil {
		return errors.Wrap(err, "write csv")
	}
	return nil
}

func csvRecord(level, platform, name string, k KPIs) []string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	i := func(v int64) string { return strconv.FormatInt(v, 10) }
	return []string{
		level, platform, name,
		f(k.Spend), i(k.Impressions), i(k.Clicks), i(k.Conversions), i(k.Reach), f(k.Revenue),
		f(k.CTR), f(k.CPC), f(k.CPM), f(k.ConversionRate), f(k.CPA), f(k.ROAS),
	}
}

func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(r), "write json")
}
