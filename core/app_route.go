package core

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case ToggleSidebarMsg:
		m.toggleSidebar()
		return m, nil
	case NavigateMsg:
		m.navigate(msg.Path)
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case DataLoadedMsg:
		if msg.Gen != m.loadGen {
			m.log.Debug("drop stale snapshot", zap.Uint64("gen", msg.Gen), zap.Uint64("current", m.loadGen))
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.log.Error("load snapshot", zap.Error(msg.Err))
			m.SetError(msg.Err)
			return m, nil
		}
		m.snapshot = msg.Snapshot
		m.log.Info("snapshot loaded", zap.Int("rows", len(msg.Snapshot.Current)))
		m.SetStatus("Dados carregados")
		return m, nil
	case ReloadMsg:
		cmd := m.Reload()
		return m, cmd
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		cmd := m.commands.Execute(msg.CommandID, &m)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.screens.Top() != nil {
			return m.updateScreen(msg)
		}
		return m.handleKey(msg)
	}

	if m.screens.Top() != nil {
		return m.updateScreen(msg)
	}
	if p, ok := m.ActivePage(); ok {
		cmd := p.Update(&m, msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd, pop := m.screens.Top().Update(msg)
	if pop {
		m.screens.Pop()
		return m, cmd
	}
	m.screens.ReplaceTop(next)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := m.ActiveScope()
	action, ok := m.keys.ActionFor(msg, scope)
	if !ok {
		if p, found := m.ActivePage(); found {
			cmd := p.Update(&m, msg)
			return m, cmd
		}
		return m, nil
	}

	switch action {
	case ActionQuit:
		m.quitting = true
		m.log.Info("session end")
		return m, tea.Quit
	case ActionToggleSidebar:
		m.toggleSidebar()
		return m, nil
	case ActionNextPage, ActionPrevPage:
		delta := 1
		if action == ActionPrevPage {
			delta = -1
		}
		if e, ok := m.menu.Next(m.currentPath, delta); ok {
			m.navigate(e.Path)
		}
		return m, nil
	case ActionCommandPalette:
		if m.OpenCommandModal != nil {
			m.screens.Push(m.OpenCommandModal(&m, scope))
		}
		return m, nil
	case ActionReload:
		cmd := m.Reload()
		return m, cmd
	}

	if i, ok := gotoIndex(action); ok {
		if e, found := m.menu.At(i); found {
			m.navigate(e.Path)
		}
		return m, nil
	}
	// page-specific actions
	if p, found := m.ActivePage(); found {
		cmd := p.Update(&m, msg)
		return m, cmd
	}
	return m, nil
}
