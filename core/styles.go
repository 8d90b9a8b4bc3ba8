package core

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/adpulse/widgets"
)

var (
	appStyle = lipgloss.NewStyle().Foreground(widgets.ColorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(widgets.ColorAccent).Bold(true).Background(widgets.ColorMantle)
	headerBarStyle = lipgloss.NewStyle().
			Background(widgets.ColorMantle).
			Foreground(widgets.ColorText)
	crumbSepStyle = lipgloss.NewStyle().
			Foreground(widgets.ColorBorder).
			Background(widgets.ColorMantle)
	crumbStyle = lipgloss.NewStyle().
			Foreground(widgets.ColorText).
			Background(widgets.ColorMantle).
			Bold(true)
	pathStyle = lipgloss.NewStyle().
			Foreground(widgets.ColorOverlay).
			Background(widgets.ColorMantle)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(widgets.ColorPositive).
			Background(widgets.ColorSurface)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(widgets.ColorNegative).
				Background(widgets.ColorSurface)
	footerStyle = lipgloss.NewStyle().
			Background(widgets.ColorMantle)
)
