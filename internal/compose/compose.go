package compose

// TrendInput feeds the line chart.
type TrendInput struct {
	Title       string
	SeriesLabel string
	Points      []Point
}

// GroupInput feeds the grouped bar chart.
type GroupInput struct {
	Title       string
	SeriesLabel string
	Groups      []Group
}

type PieInput struct {
	Title  string
	Slices []Group
}

// Input is everything the dashboard composes in one render pass. Inputs are
// resolved values; nothing here is loaded lazily.
type Input struct {
	Metrics []RawMetric
	Trend   TrendInput
	Bars    GroupInput
	Pie     PieInput
	Palette []string
}

// DatasetChart is a composed line or bar chart, or the error that
// prevented it.
type DatasetChart struct {
	Title   string
	Dataset Dataset
	Err     error
}

type PieChart struct {
	Title  string
	Slices []PieSlice
	Err    error
}

// Dashboard holds one result slot per visualization so a failure in one
// slot leaves the others renderable.
type Dashboard struct {
	Cards    []MetricCard
	CardsErr error
	Trend    DatasetChart
	Bars     DatasetChart
	Pie      PieChart
}

// Compose runs every builder independently.
func (c Composer) Compose(in Input) Dashboard {
	var out Dashboard
	out.Cards, out.CardsErr = c.BuildMetricCards(in.Metrics)

	out.Trend.Title = in.Trend.Title
	if d, err := BuildLineDataset(in.Trend.Points, in.Trend.SeriesLabel); err != nil {
		out.Trend.Err = err
	} else {
		out.Trend.Dataset = ApplyPalette(d, in.Palette)
	}

	out.Bars.Title = in.Bars.Title
	if d, err := BuildGroupedBarDataset(in.Bars.Groups, in.Bars.SeriesLabel); err != nil {
		out.Bars.Err = err
	} else {
		out.Bars.Dataset = ApplyPalette(d, in.Palette)
	}

	out.Pie.Title = in.Pie.Title
	if s, err := BuildPieDataset(in.Pie.Slices); err != nil {
		out.Pie.Err = err
	} else {
		out.Pie.Slices = ApplySlicePalette(s, in.Palette)
	}
	return out
}
