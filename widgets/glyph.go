package widgets

var glyphs = map[string]string{
	"layout-dashboard": "▦",
	"target":           "◎",
	"facebook":         "ƒ",
	"file-text":        "▤",
	"settings":         "⚙",
	"eye":              "◉",
	"mouse-pointer":    "➚",
	"bar-chart":        "▥",
	"coins":            "¤",
	"trending-up":      "↗",
	"trending-down":    "↘",
	"alert":            "⚠",
}

const fallbackGlyph = "•"

// Glyph maps an icon identifier to a single-cell terminal symbol. Unknown
// identifiers get a bullet.
func Glyph(icon string) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return fallbackGlyph
}
