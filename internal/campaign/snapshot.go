package campaign

import (
	"bytes"
	"context"
	_ "embed"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/jask/adpulse/internal/compose"
)

//go:embed sample.toml
var sampleTOML []byte

// Snapshot is the resolved input for one dashboard session.
type Snapshot struct {
	Headline     []compose.RawMetric
	Trend        compose.TrendInput
	Investment   compose.GroupInput
	Distribution compose.PieInput
	Previous     []Row
	Current      []Row
}

// DashboardInput is the composer input for the landing page.
func (s Snapshot) DashboardInput(palette []string) compose.Input {
	return compose.Input{
		Metrics: s.Headline,
		Trend:   s.Trend,
		Bars:    s.Investment,
		Pie:     s.Distribution,
		Palette: palette,
	}
}

// Source yields a snapshot. Implementations must return fully resolved data.
type Source interface {
	Load(ctx context.Context) (Snapshot, error)
}

// EmbeddedSource serves the sample snapshot compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	snap, err := Decode(bytes.NewReader(sampleTOML))
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "embedded sample")
	}
	return snap, nil
}

// FileSource reads a snapshot in the sample TOML layout from Path.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return Snapshot{}, errors.Wrapf(err, "open snapshot %s", s.Path)
	}
	defer f.Close()
	snap, err := Decode(f)
	if err != nil {
		return Snapshot{}, errors.Wrapf(err, "snapshot %s", s.Path)
	}
	return snap, nil
}

// NewSource picks FileSource when path is set.
func NewSource(path string) Source {
	if strings.TrimSpace(path) == "" {
		return EmbeddedSource{}
	}
	return FileSource{Path: path}
}

type rawSnapshot struct {
	Metric       []rawMetric `toml:"metric"`
	Trend        rawTrend    `toml:"trend"`
	Investment   rawGroups   `toml:"investment"`
	Distribution rawGroups   `toml:"distribution"`
	Previous     []rawRow    `toml:"previous"`
	Current      []rawRow    `toml:"current"`
}

type rawMetric struct {
	Title  string   `toml:"title"`
	Value  float64  `toml:"value"`
	Unit   string   `toml:"unit"`
	Change *float64 `toml:"change"`
	Icon   string   `toml:"icon"`
}

type rawTrend struct {
	Title  string     `toml:"title"`
	Series string     `toml:"series"`
	Point  []rawPoint `toml:"point"`
}

type rawPoint struct {
	Period string  `toml:"period"`
	Value  float64 `toml:"value"`
}

type rawGroups struct {
	Title  string     `toml:"title"`
	Series string     `toml:"series"`
	Group  []rawGroup `toml:"group"`
}

type rawGroup struct {
	Label string  `toml:"label"`
	Value float64 `toml:"value"`
}

type rawRow struct {
	Platform    string  `toml:"platform"`
	Campaign    string  `toml:"campaign"`
	Spend       float64 `toml:"spend"`
	Impressions int64   `toml:"impressions"`
	Clicks      int64   `toml:"clicks"`
	Conversions int64   `toml:"conversions"`
	Reach       int64   `toml:"reach"`
	Revenue     float64 `toml:"revenue"`
}

// Decode parses the snapshot TOML layout. Unknown keys are rejected so a
// typo does not silently drop data. Shape checks are left to the composer.
func Decode(r io.Reader) (Snapshot, error) {
	var raw rawSnapshot
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "decode snapshot")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Snapshot{}, errors.Errorf("decode snapshot: unknown keys %s", strings.Join(keys, ", "))
	}

	snap := Snapshot{
		Trend:        compose.TrendInput{Title: raw.Trend.Title, SeriesLabel: raw.Trend.Series},
		Investment:   compose.GroupInput{Title: raw.Investment.Title, SeriesLabel: raw.Investment.Series},
		Distribution: compose.PieInput{Title: raw.Distribution.Title},
		Previous:     convertRows(raw.Previous),
		Current:      convertRows(raw.Current),
	}
	for _, m := range raw.Metric {
		snap.Headline = append(snap.Headline, compose.RawMetric{
			Title:    m.Title,
			RawValue: m.Value,
			Unit:     compose.Unit(strings.ToLower(strings.TrimSpace(m.Unit))),
			Change:   m.Change,
			Icon:     m.Icon,
		})
	}
	for _, p := range raw.Trend.Point {
		snap.Trend.Points = append(snap.Trend.Points, compose.Point{Period: p.Period, Value: p.Value})
	}
	for _, g := range raw.Investment.Group {
		snap.Investment.Groups = append(snap.Investment.Groups, compose.Group{Label: g.Label, Value: g.Value})
	}
	for _, g := range raw.Distribution.Group {
		snap.Distribution.Slices = append(snap.Distribution.Slices, compose.Group{Label: g.Label, Value: g.Value})
	}
	return snap, nil
}

func convertRows(raw []rawRow) []Row {
	out := make([]Row, 0, len(raw))
	for _, r := range raw {
		out = append(out, Row(r))
	}
	return out
}
