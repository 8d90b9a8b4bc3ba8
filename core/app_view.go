package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/adpulse/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Até logo\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))

	var body string
	if bodyHeight > 0 {
		body = m.Body().Render(max(1, m.width), bodyHeight)
		if top := m.screens.Top(); top != nil {
			body = widgets.RenderPopup(body, top.View(max(20, m.width-12), max(6, bodyHeight-4)), max(1, m.width), bodyHeight)
		}
	}
	body = fitHeight(body, bodyHeight)
	view := strings.Join([]string{header, status, body, footer}, "\n")
	if bodyHeight == 0 {
		view = strings.Join([]string{header, status, footer}, "\n")
	}
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

// Body is the sidebar (when open) beside the routed page.
func (m Model) Body() widgets.Widget {
	var page widgets.Widget
	if p, ok := m.ActivePage(); ok {
		page = p.Build(&m)
	} else {
		page = notFound(m.currentPath)
	}
	if !m.panel.IsOpen {
		return page
	}
	active := ""
	if e, ok := m.ActiveEntry(); ok {
		active = e.Path
	}
	sidebar := widgets.Sidebar{Title: m.appName, Entries: m.menu.Entries(), ActivePath: active}
	return widgets.Split{Left: sidebar, LeftWidth: m.sidebarWidth, Right: page, Gap: 1}
}

func notFound(path string) widgets.Widget {
	msg := fmt.Sprintf("Nenhuma página em %q.\n\nUse tab ou 1-9 para escolher uma seção do menu.", path)
	return widgets.Placeholder("Página não encontrada", msg, widgets.ToneError)
}

func renderHeader(m Model) string {
	title := "Página não encontrada"
	if p, ok := m.ActivePage(); ok {
		title = p.Title()
	}
	left := headerAppStyle.Render(" "+m.appName) + crumbSepStyle.Render(" › ") + crumbStyle.Render(title)
	right := pathStyle.Render(m.currentPath + " ")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right, widgets.ColorMantle)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
