package compose

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func sampleMetrics() []RawMetric {
	return []RawMetric{
		{Title: "Impressões", RawValue: 125300, Unit: UnitThousands, Change: Float(12.5), Icon: "eye"},
		{Title: "Cliques", RawValue: 3200, Unit: UnitThousands, Change: Float(-2.3), Icon: "pointer"},
		{Title: "CTR", RawValue: 2.56, Unit: UnitPercent, Change: Float(0.8), Icon: "bar-chart"},
		{Title: "CPC Médio", RawValue: 1.23, Unit: UnitCurrency, Change: Float(-5.2), Icon: "coins"},
		{Title: "Conversões", RawValue: 156, Unit: UnitCount, Change: Float(15.7), Icon: "crosshair"},
		{Title: "ROAS", RawValue: 3.2, Unit: UnitMultiplier, Change: Float(8.4), Icon: "trending-up"},
	}
}

func TestBuildMetricCardsPreservesOrderAndFormats(t *testing.T) {
	c := NewComposer(DefaultFormats("R$"))
	cards, err := c.BuildMetricCards(sampleMetrics())
	require.NoError(t, err)
	require.Len(t, cards, 6)

	wantTitles := []string{"Impressões", "Cliques", "CTR", "CPC Médio", "Conversões", "ROAS"}
	wantValues := []string{"125.3k", "3.2k", "2.56%", "R$ 1.23", "156", "3.2x"}
	for i, card := range cards {
		if card.Title != wantTitles[i] {
			t.Fatalf("card[%d].Title = %q, want %q", i, card.Title, wantTitles[i])
		}
		if card.Value != wantValues[i] {
			t.Fatalf("card[%d].Value = %q, want %q", i, card.Value, wantValues[i])
		}
	}
}

func TestMetricCardDeltaSigns(t *testing.T) {
	c := NewComposer(DefaultFormats("R$"))
	cards, err := c.BuildMetricCards(sampleMetrics())
	require.NoError(t, err)

	neg := cards[1]
	require.Equal(t, -2.3, *neg.Change)
	require.Equal(t, "-2.3%", neg.DeltaText())
	require.Equal(t, TrendNegative, neg.Trend())

	pos := cards[0]
	require.Equal(t, "+12.5%", pos.DeltaText())
	require.Equal(t, TrendPositive, pos.Trend())
}

func TestMetricCardWithoutChangeShowsNoTrend(t *testing.T) {
	c := NewComposer(nil)
	cards, err := c.BuildMetricCards([]RawMetric{{Title: "Reach", RawValue: 10, Unit: UnitCount}})
	require.NoError(t, err)
	require.Nil(t, cards[0].Change)
	require.Equal(t, TrendNone, cards[0].Trend())
	require.Empty(t, cards[0].DeltaText())
}

func TestMetricCardChangeIsCopied(t *testing.T) {
	change := 4.0
	cards, err := NewComposer(nil).BuildMetricCards([]RawMetric{{Title: "x", Unit: UnitCount, Change: &change}})
	require.NoError(t, err)
	change = -1
	require.Equal(t, 4.0, *cards[0].Change)
}

func TestBuildMetricCardsRejectsUnknownUnitAndNonFinite(t *testing.T) {
	c := NewComposer(DefaultFormats(""))
	_, err := c.BuildMetricCards([]RawMetric{{Title: "x", RawValue: 1, Unit: "furlongs"}})
	require.ErrorIs(t, err, ErrDataShape)

	_, err = c.BuildMetricCards([]RawMetric{{Title: "x", RawValue: math.NaN(), Unit: UnitCount}})
	require.ErrorIs(t, err, ErrDataShape)

	_, err = c.BuildMetricCards([]RawMetric{{Title: "x", RawValue: 1, Unit: UnitCount, Change: Float(math.Inf(1))}})
	require.ErrorIs(t, err, ErrDataShape)
}

func TestFormatDelta(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12.5, "+12.5%"},
		{-2.3, "-2.3%"},
		{0, "+0%"},
		{math.Copysign(0, -1), "+0%"},
		{0.8, "+0.8%"},
	}
	for _, tt := range tests {
		if got := FormatDelta(tt.in); got != tt.want {
			t.Fatalf("FormatDelta(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnitFormatGrouping(t *testing.T) {
	f := DefaultFormats("R$")[UnitCurrency]
	require.Equal(t, "R$ 12,000.00", f.Format(12000))
	require.Equal(t, "R$ 1.20", f.Format(1.2))
	require.Equal(t, "1,234,567", DefaultFormats("")[UnitCount].Format(1234567))
	require.Equal(t, "1.50", UnitFormat{Decimals: 2}.Format(1.5))
}

func TestUnitFormatClampsGroupedDecimals(t *testing.T) {
	f := UnitFormat{Prefix: "R$ ", Decimals: 10, Grouping: true}
	var got string
	require.NotPanics(t, func() { got = f.Format(1.5) })
	require.Equal(t, "R$ 1.500000000", got)
	require.Equal(t, "1.5000000000", UnitFormat{Decimals: 10}.Format(1.5))
}

func TestUnitFormatFallsBackBeyondInt64(t *testing.T) {
	got := DefaultFormats("R$")[UnitCurrency].Format(1e19)
	require.Equal(t, "R$ 10000000000000000000.00", got)
}

func TestBuildMetricCardsRejectsValuesTooLargeToGroup(t *testing.T) {
	c := NewComposer(DefaultFormats("R$"))
	_, err := c.BuildMetricCards([]RawMetric{{Title: "Gasto", RawValue: 1e19, Unit: UnitCurrency}})
	require.ErrorIs(t, err, ErrDataShape)

	_, err = c.BuildMetricCards([]RawMetric{{Title: "Gasto", RawValue: -1e19, Unit: UnitCount}})
	require.ErrorIs(t, err, ErrDataShape)

	// thousands divides first and does not group
	cards, err := c.BuildMetricCards([]RawMetric{{Title: "Impressões", RawValue: 1e19, Unit: UnitThousands}})
	require.NoError(t, err)
	require.Equal(t, "10000000000000000.0k", cards[0].Value)
}

func TestFormatTableMergeDoesNotMutate(t *testing.T) {
	base := DefaultFormats("$")
	merged := base.Merge(FormatTable{UnitPercent: {Suffix: " pct", Decimals: 1}})
	require.Equal(t, "2.6 pct", merged[UnitPercent].Format(2.56))
	require.Equal(t, "2.56%", base[UnitPercent].Format(2.56))
}

func TestBuildLineDatasetRoundTripsOrder(t *testing.T) {
	points := []Point{{"Jan", 1200}, {"Fev", 1900}, {"Mar", 3000}}
	d, err := BuildLineDataset(points, "Impressões")
	require.NoError(t, err)
	require.Equal(t, []string{"Jan", "Fev", "Mar"}, d.Categories)
	require.Len(t, d.Series, 1)
	require.Equal(t, "Impressões", d.Series[0].Label)
	require.Equal(t, []float64{1200, 1900, 3000}, d.Series[0].Values)
}

func TestBuildLineDatasetEmptyFails(t *testing.T) {
	_, err := BuildLineDataset(nil, "x")
	var shape *DataShapeError
	if !errors.As(err, &shape) {
		t.Fatalf("err = %v, want *DataShapeError", err)
	}
	if shape.Op != "build line dataset" {
		t.Fatalf("op = %q", shape.Op)
	}
}

func TestBuildGroupedBarDatasetDoesNotReorder(t *testing.T) {
	groups := []Group{{"Google Ads", 12000}, {"Facebook Ads", 8000}, {"TikTok", 20000}}
	d, err := BuildGroupedBarDataset(groups, "Investimento")
	require.NoError(t, err)
	require.Equal(t, []string{"Google Ads", "Facebook Ads", "TikTok"}, d.Categories)
	require.Equal(t, []float64{12000, 8000, 20000}, d.Series[0].Values)

	_, err = BuildGroupedBarDataset([]Group{}, "x")
	require.ErrorIs(t, err, ErrDataShape)
}

func TestBuildPieDataset(t *testing.T) {
	_, err := BuildPieDataset([]Group{{"A", -1}})
	require.ErrorIs(t, err, ErrDataShape)

	slices, err := BuildPieDataset([]Group{{"A", 0}, {"B", 5}})
	require.NoError(t, err)
	require.Equal(t, []PieSlice{{Label: "A", Value: 0}, {Label: "B", Value: 5}}, slices)
}

func TestDatasetValidateRejectsMismatchedSeries(t *testing.T) {
	d, err := BuildGroupedBarDataset([]Group{{"Google", 10}, {"Facebook", 20}}, "Cliques")
	require.NoError(t, err)

	_, err = d.WithSeries(Series{Label: "Conversões", Values: []float64{1}})
	require.ErrorIs(t, err, ErrDataShape)

	two, err := d.WithSeries(Series{Label: "Conversões", Values: []float64{1, 2}})
	require.NoError(t, err)
	require.Len(t, two.Series, 2)
	require.Len(t, d.Series, 1, "WithSeries must not mutate the receiver")
}

func TestComposeIsolatesFailures(t *testing.T) {
	in := Input{
		Metrics: sampleMetrics(),
		Trend:   TrendInput{Title: "Evolução", SeriesLabel: "Impressões", Points: []Point{{"Jan", 1}}},
		Bars:    GroupInput{Title: "Investimento", SeriesLabel: "Investimento", Groups: []Group{{"Google", 1}}},
		Pie:     PieInput{Title: "Distribuição", Slices: []Group{{"Campanha 1", -5}}},
		Palette: []string{"#89b4fa", "#a6e3a1"},
	}
	dash := NewComposer(DefaultFormats("R$")).Compose(in)
	require.NoError(t, dash.CardsErr)
	require.Len(t, dash.Cards, 6)
	require.NoError(t, dash.Trend.Err)
	require.NoError(t, dash.Bars.Err)
	require.ErrorIs(t, dash.Pie.Err, ErrDataShape)
	require.Nil(t, dash.Pie.Slices)
	require.Equal(t, "#89b4fa", dash.Trend.Dataset.Series[0].ColorHint)
	require.Equal(t, "Distribuição", dash.Pie.Title)

	in.Trend.Points = nil
	dash = NewComposer(DefaultFormats("R$")).Compose(in)
	require.ErrorIs(t, dash.Trend.Err, ErrDataShape)
	require.NoError(t, dash.Bars.Err)
}

func TestComposeIsDeterministic(t *testing.T) {
	in := Input{
		Metrics: sampleMetrics(),
		Trend:   TrendInput{SeriesLabel: "Impressões", Points: []Point{{"Jan", 1200}, {"Fev", 1900}}},
		Bars:    GroupInput{SeriesLabel: "Investimento", Groups: []Group{{"Google Ads", 12000}, {"Facebook Ads", 8000}}},
		Pie:     PieInput{Slices: []Group{{"Campanha 1", 300}, {"Campanha 2", 200}}},
		Palette: []string{"#f38ba8", "#89b4fa", "#94e2d5"},
	}
	c := NewComposer(DefaultFormats("R$"))
	a, b := c.Compose(in), c.Compose(in)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("compose not deterministic (-a +b):\n%s", diff)
	}
}

func TestApplySlicePaletteCyclesAndCopies(t *testing.T) {
	in := []PieSlice{{Label: "a"}, {Label: "b"}, {Label: "c"}}
	out := ApplySlicePalette(in, []string{"red", "blue"})
	require.Equal(t, []string{"red", "blue", "red"}, []string{out[0].ColorHint, out[1].ColorHint, out[2].ColorHint})
	require.Empty(t, in[0].ColorHint)
}
