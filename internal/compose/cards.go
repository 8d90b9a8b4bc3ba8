package compose

import "math"

// RawMetric is one headline quantity before formatting.
type RawMetric struct {
	Title    string
	RawValue float64
	Unit     Unit
	Change   *float64
	Icon     string
}

type Trend int

const (
	TrendNone Trend = iota
	TrendPositive
	TrendNegative
)

// MetricCard is the view-model of one summary tile.
type MetricCard struct {
	Title  string
	Value  string
	Change *float64
	Icon   string
}

func (c MetricCard) Trend() Trend {
	switch {
	case c.Change == nil:
		return TrendNone
	case *c.Change >= 0:
		return TrendPositive
	default:
		return TrendNegative
	}
}

// DeltaText is empty when the card has no change.
func (c MetricCard) DeltaText() string {
	if c.Change == nil {
		return ""
	}
	return FormatDelta(*c.Change)
}

// Composer turns raw dashboard inputs into render-ready view-models.
type Composer struct {
	formats FormatTable
}

func NewComposer(formats FormatTable) Composer {
	if formats == nil {
		formats = DefaultFormats("")
	}
	return Composer{formats: formats}
}

func (c Composer) Formats() FormatTable { return c.formats.Merge(nil) }

// BuildMetricCards formats each metric with its unit rule, keeping input
// order. Change is passed through as given.
func (c Composer) BuildMetricCards(raw []RawMetric) ([]MetricCard, error) {
	const op = "build metric cards"
	cards := make([]MetricCard, 0, len(raw))
	for i, r := range raw {
		f, ok := c.formats[r.Unit]
		if !ok {
			return nil, shapeErr(op, "metric %d (%q): unknown unit %q", i, r.Title, r.Unit)
		}
		if !isFinite(r.RawValue) {
			return nil, shapeErr(op, "metric %d (%q): value is not finite", i, r.Title)
		}
		if f.Grouping && !Groupable(f.Scale(r.RawValue)) {
			return nil, shapeErr(op, "metric %d (%q): value %g is out of range", i, r.Title, r.RawValue)
		}
		var change *float64
		if r.Change != nil {
			if !isFinite(*r.Change) {
				return nil, shapeErr(op, "metric %d (%q): change is not finite", i, r.Title)
			}
			v := *r.Change
			change = &v
		}
		cards = append(cards, MetricCard{
			Title:  r.Title,
			Value:  f.Format(r.RawValue),
			Change: change,
			Icon:   r.Icon,
		})
	}
	return cards, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Float returns a pointer to v, for optional change values.
func Float(v float64) *float64 { return &v }
