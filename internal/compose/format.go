package compose

import (
	"maps"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

type Unit string

const (
	UnitCurrency   Unit = "currency"
	UnitPercent    Unit = "percent"
	UnitThousands  Unit = "thousands"
	UnitCount      Unit = "count"
	UnitMultiplier Unit = "multiplier"
)

// UnitFormat renders prefix + (value / divisor) + suffix. A zero divisor
// means 1. Grouping inserts thousands separators.
type UnitFormat struct {
	Prefix   string
	Suffix   string
	Decimals int
	Divisor  float64
	Grouping bool
}

// MaxDecimals is the widest precision go-humanize can group.
const MaxDecimals = 9

func (f UnitFormat) Format(v float64) string {
	v = f.Scale(v)
	decimals := max(0, f.Decimals)
	var num string
	if f.Grouping && Groupable(v) {
		num = humanize.FormatFloat(groupingPattern(min(decimals, MaxDecimals)), v)
	} else {
		num = strconv.FormatFloat(v, 'f', decimals, 64)
	}
	return f.Prefix + num + f.Suffix
}

// Scale divides v by the divisor, treating zero as 1.
func (f UnitFormat) Scale(v float64) float64 {
	if f.Divisor != 0 {
		return v / f.Divisor
	}
	return v
}

// Groupable reports whether v fits the int64 conversion grouping relies on.
func Groupable(v float64) bool {
	return math.Abs(v) < math.MaxInt64
}

// groupingPattern builds a go-humanize pattern such as "#,###.##".
func groupingPattern(decimals int) string {
	return "#,###." + strings.Repeat("#", decimals)
}

// FormatTable maps a unit to its display rule.
type FormatTable map[Unit]UnitFormat

func DefaultFormats(currencySymbol string) FormatTable {
	prefix := ""
	if s := strings.TrimSpace(currencySymbol); s != "" {
		prefix = s + " "
	}
	return FormatTable{
		UnitCurrency:   {Prefix: prefix, Decimals: 2, Grouping: true},
		UnitPercent:    {Suffix: "%", Decimals: 2},
		UnitThousands:  {Suffix: "k", Decimals: 1, Divisor: 1000},
		UnitCount:      {Decimals: 0, Grouping: true},
		UnitMultiplier: {Suffix: "x", Decimals: 1},
	}
}

// Merge returns a copy of t with overrides applied on top.
func (t FormatTable) Merge(overrides FormatTable) FormatTable {
	out := maps.Clone(t)
	if out == nil {
		out = FormatTable{}
	}
	maps.Copy(out, overrides)
	return out
}

// FormatDelta renders a change in percentage points with an explicit sign
// for non-negative values: 12.5 -> "+12.5%", -2.3 -> "-2.3%".
func FormatDelta(change float64) string {
	if change == 0 {
		change = 0 // drop negative zero
	}
	s := strconv.FormatFloat(change, 'f', -1, 64) + "%"
	if change >= 0 {
		return "+" + s
	}
	return s
}
