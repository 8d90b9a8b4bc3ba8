package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Widget renders itself into a width x height cell area.
type Widget interface {
	Render(width, height int) string
}

// Text renders a literal string, clipped to the area.
type Text string

func (t Text) Render(width, height int) string {
	return Clip(string(t), width, height)
}

// VStack stacks widgets vertically. Heights, when set, pins rows to fixed
// line counts; zero entries share what is left according to Ratios.
type VStack struct {
	Widgets []Widget
	Spacing int
	Ratios  []float64
	Heights []int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	spacingTotal := max(0, v.Spacing*(len(v.Widgets)-1))
	usable := max(1, height-spacingTotal)
	heights := v.heights(usable)
	lines := make([]string, 0, height)
	for i, w := range v.Widgets {
		h := heights[i]
		if h <= 0 {
			continue
		}
		lines = append(lines, splitToLines(w.Render(width, h), h)...)
		if i < len(v.Widgets)-1 {
			for s := 0; s < v.Spacing; s++ {
				lines = append(lines, "")
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (v VStack) heights(usable int) []int {
	n := len(v.Widgets)
	if len(v.Heights) != n {
		return splitWidths(usable, n, v.Ratios)
	}
	out := make([]int, n)
	var flex []int
	left := usable
	for i, h := range v.Heights {
		if h > 0 {
			out[i] = min(h, max(0, left))
			left -= out[i]
			continue
		}
		flex = append(flex, i)
	}
	if len(flex) == 0 {
		return out
	}
	var ratios []float64
	if len(v.Ratios) == n {
		for _, i := range flex {
			ratios = append(ratios, v.Ratios[i])
		}
	}
	for j, h := range splitWidths(max(0, left), len(flex), ratios) {
		out[flex[j]] = h
	}
	return out
}

type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	usable := max(1, width-gapTotal)
	return joinColumns(h.Widgets, splitWidths(usable, len(h.Widgets), h.Ratios), h.Gap, height)
}

// Split places Left at a fixed width and gives the rest to Right.
type Split struct {
	Left      Widget
	LeftWidth int
	Right     Widget
	Gap       int
}

func (s Split) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	left := min(s.LeftWidth, width-s.Gap-1)
	if s.Left == nil || left <= 0 {
		if s.Right == nil {
			return ""
		}
		return s.Right.Render(width, height)
	}
	right := width - left - s.Gap
	return joinColumns([]Widget{s.Left, s.Right}, []int{left, right}, s.Gap, height)
}

func joinColumns(ws []Widget, widths []int, gap, height int) string {
	rendered := make([][]string, len(ws))
	maxLines := 0
	for i, w := range ws {
		var part []string
		if w != nil {
			part = strings.Split(w.Render(max(1, widths[i]), height), "\n")
		}
		rendered[i] = part
		maxLines = max(maxLines, len(part))
	}
	maxLines = min(maxLines, height)
	sep := strings.Repeat(" ", max(0, gap))
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		cols := make([]string, len(rendered))
		for i := range rendered {
			if line < len(rendered[i]) {
				cols[i] = padRight(rendered[i][line], widths[i])
			} else {
				cols[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cols, sep))
	}
	return strings.Join(out, "\n")
}

func splitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	if len(ratios) != n {
		width := total / n
		out := make([]int, n)
		for i := range out {
			out[i] = width
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	weights := make([]float64, n)
	sum := 0.0
	for i, r := range ratios {
		if r <= 0 {
			r = 1
		}
		weights[i] = r
		sum += r
	}
	out := make([]int, n)
	used := 0
	for i := range out {
		w := int(math.Floor((weights[i] / sum) * float64(total)))
		out[i] = w
		used += w
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

// Clip truncates every line to width and keeps at most height lines.
func Clip(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], width, "")
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
