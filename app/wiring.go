package app

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/adpulse/core"
	"github.com/jask/adpulse/internal/campaign"
	"github.com/jask/adpulse/internal/compose"
	"github.com/jask/adpulse/internal/config"
	"github.com/jask/adpulse/internal/nav"
	"github.com/jask/adpulse/pages"
	"github.com/jask/adpulse/screens"
	"github.com/jask/adpulse/widgets"
)

// Pages returns the page for every path the application knows. Menu
// entries pointing elsewhere render as not found.
func Pages(cfg config.Config) []core.Page {
	return []core.Page{
		pages.NewDashboard("/"),
		pages.NewPlatform("/google-ads", "Google Ads", campaign.PlatformGoogle),
		pages.NewPlatform("/facebook-ads", "Facebook Ads", campaign.PlatformFacebook),
		pages.NewReports("/reports"),
		pages.NewSettings("/settings", SettingsRows(cfg)),
	}
}

// New builds the shell model from configuration. A nil logger is a no-op.
func New(cfg config.Config, log *zap.Logger) (core.Model, error) {
	menu, err := cfg.NavMenu()
	if err != nil {
		return core.Model{}, err
	}
	m := core.NewModel(core.Options{
		AppName:       cfg.UI.AppName,
		Menu:          menu,
		Pages:         Pages(cfg),
		StartPath:     cfg.UI.StartPath,
		SidebarClosed: !cfg.UI.SidebarOpen,
		SidebarWidth:  cfg.UI.SidebarWidth,
		Keys:          core.NewKeyRegistry(core.DefaultKeyBindings(menu.Len())),
		Commands:      core.NewCommandRegistry(nil),
		Composer:      compose.NewComposer(cfg.FormatTable()),
		Charts:        widgets.NTCharts{},
		Source:        campaign.NewSource(cfg.Data.Path),
		Logger:        log,
	})
	ConfigureModel(&m)
	return m, nil
}

func ConfigureModel(m *core.Model) {
	if m == nil {
		return
	}
	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		return screens.NewCommandScreen(
			screens.FromRegistry(model.CommandRegistry(), scope, model),
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}
	RegisterCommands(m.CommandRegistry(), m.Menu())
}

func RegisterCommands(reg *core.CommandRegistry, menu nav.Menu) {
	for _, e := range menu.Entries() {
		path := e.Path
		reg.Register(core.Command{
			ID:          "go:" + path,
			Name:        "Ir para " + e.Label,
			Description: path,
			Scopes:      []string{"*"},
			Execute: func(*core.Model) tea.Cmd {
				return core.NavigateCmd(path)
			},
		})
	}
	reg.Register(core.Command{
		ID:          "toggle-sidebar",
		Name:        "Alternar menu lateral",
		Description: "Mostra ou esconde a navegação",
		Scopes:      []string{"*"},
		Execute: func(*core.Model) tea.Cmd {
			return core.ToggleSidebarCmd
		},
	})
	reg.Register(core.Command{
		ID:          "reload-data",
		Name:        "Recarregar dados",
		Description: "Lê o snapshot de campanhas novamente",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return m.Reload()
		},
		Disabled: func(m *core.Model) (bool, string) {
			if !m.HasSource() {
				return true, "sem fonte de dados"
			}
			return false, ""
		},
	})
	reg.Register(core.Command{
		ID:          "quit",
		Name:        "Sair",
		Description: "Encerra a sessão",
		Scopes:      []string{"*"},
		Execute: func(*core.Model) tea.Cmd {
			return tea.Quit
		},
	})
}

// SettingsRows flattens the effective configuration for the settings page.
func SettingsRows(cfg config.Config) []pages.Setting {
	dataPath := cfg.Data.Path
	if dataPath == "" {
		dataPath = "(amostra embutida)"
	}
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = "(desativado)"
	}
	rows := []pages.Setting{
		{Key: "ui.app_name", Value: cfg.UI.AppName},
		{Key: "ui.start_path", Value: cfg.UI.StartPath},
		{Key: "ui.sidebar_open", Value: strconv.FormatBool(cfg.UI.SidebarOpen)},
		{Key: "ui.sidebar_width", Value: strconv.Itoa(cfg.UI.SidebarWidth)},
		{Key: "ui.currency_symbol", Value: cfg.UI.CurrencySymbol},
		{Key: "data.path", Value: dataPath},
		{Key: "log.file", Value: logFile},
		{Key: "log.level", Value: cfg.Log.Level},
		{Key: "menu", Value: fmt.Sprintf("%d entradas", len(cfg.Menu))},
	}
	table := cfg.FormatTable()
	for _, name := range slices.Sorted(maps.Keys(cfg.Formats)) {
		f := table[compose.Unit(name)]
		rows = append(rows, pages.Setting{
			Key:   "formats." + name,
			Value: fmt.Sprintf("prefixo %q sufixo %q casas %d", f.Prefix, f.Suffix, f.Decimals),
		})
	}
	return rows
}
