package compose

import "slices"

// Point is one period of a time series.
type Point struct {
	Period string
	Value  float64
}

// Group is one labelled magnitude (bar group or pie slice input).
type Group struct {
	Label string
	Value float64
}

type Series struct {
	Label     string
	Values    []float64
	ColorHint string
}

// Dataset feeds a line or bar chart. Every series has len(Categories) values.
type Dataset struct {
	Categories []string
	Series     []Series
}

func (d Dataset) Validate() error {
	const op = "validate dataset"
	if len(d.Categories) == 0 {
		return shapeErr(op, "no categories")
	}
	for i, s := range d.Series {
		if len(s.Values) != len(d.Categories) {
			return shapeErr(op, "series %d (%q) has %d values for %d categories", i, s.Label, len(s.Values), len(d.Categories))
		}
		for j, v := range s.Values {
			if !isFinite(v) {
				return shapeErr(op, "series %d (%q) value %d is not finite", i, s.Label, j)
			}
		}
	}
	return nil
}

// WithSeries returns a copy of d with s appended, validated as a whole.
func (d Dataset) WithSeries(s Series) (Dataset, error) {
	out := Dataset{
		Categories: slices.Clone(d.Categories),
		Series:     append(slices.Clone(d.Series), Series{Label: s.Label, Values: slices.Clone(s.Values), ColorHint: s.ColorHint}),
	}
	if err := out.Validate(); err != nil {
		return Dataset{}, err
	}
	return out, nil
}

type PieSlice struct {
	Label     string
	Value     float64
	ColorHint string
}

// BuildLineDataset keeps the periods in input order as categories.
func BuildLineDataset(points []Point, seriesLabel string) (Dataset, error) {
	const op = "build line dataset"
	if len(points) == 0 {
		return Dataset{}, shapeErr(op, "no points")
	}
	cats := make([]string, len(points))
	values := make([]float64, len(points))
	for i, p := range points {
		cats[i] = p.Period
		values[i] = p.Value
	}
	return singleSeries(op, cats, values, seriesLabel)
}

func BuildGroupedBarDataset(groups []Group, seriesLabel string) (Dataset, error) {
	const op = "build grouped bar dataset"
	if len(groups) == 0 {
		return Dataset{}, shapeErr(op, "no groups")
	}
	cats := make([]string, len(groups))
	values := make([]float64, len(groups))
	for i, g := range groups {
		cats[i] = g.Label
		values[i] = g.Value
	}
	return singleSeries(op, cats, values, seriesLabel)
}

func singleSeries(op string, cats []string, values []float64, label string) (Dataset, error) {
	d := Dataset{Categories: cats, Series: []Series{{Label: label, Values: values}}}
	for i, v := range values {
		if !isFinite(v) {
			return Dataset{}, shapeErr(op, "%q value is not finite", cats[i])
		}
	}
	return d, nil
}

// BuildPieDataset rejects negative magnitudes. Values are not normalised.
func BuildPieDataset(groups []Group) ([]PieSlice, error) {
	const op = "build pie dataset"
	out := make([]PieSlice, 0, len(groups))
	for i, s := range groups {
		if !isFinite(s.Value) {
			return nil, shapeErr(op, "slice %d (%q) is not finite", i, s.Label)
		}
		if s.Value < 0 {
			return nil, shapeErr(op, "slice %d (%q) is negative: %g", i, s.Label, s.Value)
		}
		out = append(out, PieSlice{Label: s.Label, Value: s.Value})
	}
	return out, nil
}

// ApplyPalette assigns color hints by position: series i of a dataset,
// slice i of a pie. An empty palette leaves hints untouched.
func ApplyPalette(d Dataset, palette []string) Dataset {
	if len(palette) == 0 {
		return d
	}
	out := Dataset{Categories: slices.Clone(d.Categories), Series: slices.Clone(d.Series)}
	for i := range out.Series {
		out.Series[i].ColorHint = palette[i%len(palette)]
	}
	return out
}

func ApplySlicePalette(s []PieSlice, palette []string) []PieSlice {
	out := slices.Clone(s)
	if len(palette) == 0 {
		return out
	}
	for i := range out {
		out[i].ColorHint = palette[i%len(palette)]
	}
	return out
}
