package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func TestHStackRespectsRatios(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Ratios: []float64{0.75, 0.25}, Gap: 1}
	out := h.Render(21, 1)
	if got := strings.Index(out, "B"); got != 16 {
		t.Fatalf("B at column %d, want 16 in %q", got, out)
	}
}

func TestVStackSpacing(t *testing.T) {
	v := VStack{Widgets: []Widget{fixedWidget{"top"}, fixedWidget{"bottom"}}, Spacing: 1}
	out := v.Render(20, 6)
	if !strings.Contains(out, "top") || !strings.Contains(out, "bottom") {
		t.Fatalf("expected both widgets in output")
	}
	if lines := strings.Split(out, "\n"); len(lines) != 6 {
		t.Fatalf("line count = %d, want 6", len(lines))
	}
}

func TestSplitFixedLeftWidth(t *testing.T) {
	s := Split{Left: fixedWidget{"L"}, LeftWidth: 10, Right: fixedWidget{"R"}, Gap: 1}
	out := s.Render(30, 1)
	if got := strings.Index(out, "R"); got != 11 {
		t.Fatalf("R at column %d, want 11", got)
	}
	if w := ansi.StringWidth(out); w != 30 {
		t.Fatalf("width = %d, want 30", w)
	}
}

func TestSplitWithoutLeftGivesRightFullWidth(t *testing.T) {
	out := Split{LeftWidth: 10, Right: Text("only")}.Render(20, 1)
	if out != "only" {
		t.Fatalf("got %q", out)
	}
}

func TestSplitWidthsIgnoresNonPositiveRatios(t *testing.T) {
	got := splitWidths(10, 2, []float64{0, 1})
	if got[0]+got[1] != 10 || got[0] != 5 {
		t.Fatalf("splitWidths = %v, want [5 5]", got)
	}
}

func TestClip(t *testing.T) {
	if got := Clip("abcdef\nxyz\nqqq", 3, 2); got != "abc\nxyz" {
		t.Fatalf("Clip = %q", got)
	}
	if Clip("x", 0, 1) != "" {
		t.Fatalf("zero width should render nothing")
	}
}

func TestVStackFixedHeights(t *testing.T) {
	v := VStack{Widgets: []Widget{fixedWidget{"a"}, fixedWidget{"b"}, fixedWidget{"c"}}, Heights: []int{2, 0, 0}, Ratios: []float64{0, 3, 1}}
	got := v.heights(10)
	if got[0] != 2 || got[1] != 6 || got[2] != 2 {
		t.Fatalf("heights = %v, want [2 6 2]", got)
	}
	out := strings.Split(v.Render(5, 10), "\n")
	if len(out) != 10 || out[2] != "b" {
		t.Fatalf("rows = %q", out)
	}
}
