package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/adpulse/core"
	"github.com/jask/adpulse/internal/config"
	"github.com/jask/adpulse/screens"
)

func testConfig() config.Config {
	return config.Config{
		UI: config.UIConfig{
			AppName:        "AdPulse",
			StartPath:      "/",
			SidebarOpen:    true,
			SidebarWidth:   26,
			CurrencySymbol: "R$",
		},
		Log: config.LogConfig{Level: "info"},
	}
}

func TestNewRegistersNavigationCommands(t *testing.T) {
	m, err := New(testConfig(), nil)
	require.NoError(t, err)

	reg := m.CommandRegistry()
	for _, e := range m.Menu().Entries() {
		got := reg.Search("Ir para "+e.Label, "page:dashboard", &m)
		require.NotEmpty(t, got, e.Label)
		require.Equal(t, "go:"+e.Path, got[0].CommandID)
	}

	cmd := reg.Execute("go:/reports", &m)
	require.NotNil(t, cmd)
	require.Equal(t, core.NavigateMsg{Path: "/reports"}, cmd())

	next, _ := m.Update(cmd())
	require.Equal(t, "/reports", next.(core.Model).CurrentPath())
}

func TestToggleCommandClosesSidebar(t *testing.T) {
	m, err := New(testConfig(), nil)
	require.NoError(t, err)
	require.True(t, m.Panel().IsOpen)

	next, cmd := m.Update(core.CommandExecuteMsg{CommandID: "toggle-sidebar"})
	require.NotNil(t, cmd)
	next, _ = next.(core.Model).Update(cmd())
	require.False(t, next.(core.Model).Panel().IsOpen)
}

func TestEveryDefaultMenuEntryHasAPage(t *testing.T) {
	cfg := testConfig()
	menu, err := cfg.NavMenu()
	require.NoError(t, err)

	paths := map[string]bool{}
	for _, p := range Pages(cfg) {
		paths[p.Path()] = true
	}
	for _, e := range menu.Entries() {
		require.True(t, paths[e.Path], e.Path)
	}
}

func TestCommandPaletteOpens(t *testing.T) {
	m, err := New(testConfig(), nil)
	require.NoError(t, err)
	require.NotNil(t, m.OpenCommandModal)

	s := m.OpenCommandModal(&m, m.ActiveScope())
	require.IsType(t, &screens.CommandScreen{}, s)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	view := next.(core.Model).View()
	require.Contains(t, view, "Ir para")
}

func TestSettingsRowsAreStable(t *testing.T) {
	cfg := testConfig()
	suffix, prefix, one := " pct", "US$ ", 1
	cfg.Formats = map[string]config.FormatConfig{
		"percent":  {Suffix: &suffix, Decimals: &one},
		"currency": {Prefix: &prefix},
	}
	rows := SettingsRows(cfg)

	var keys []string
	for _, r := range rows {
		keys = append(keys, r.Key)
	}
	joined := strings.Join(keys, ",")
	require.Contains(t, joined, "formats.currency,formats.percent")
	require.Equal(t, `prefixo "US$ " sufixo "" casas 2`, rows[len(rows)-2].Value)
	require.Equal(t, "(amostra embutida)", rows[5].Value)
	require.Equal(t, "(desativado)", rows[6].Value)
}
