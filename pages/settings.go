package pages

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/adpulse/core"
	"github.com/jask/adpulse/widgets"
)

type Setting struct {
	Key   string
	Value string
}

// Settings is a read-only view of the effective configuration.
type Settings struct {
	path     string
	settings []Setting
}

func NewSettings(path string, settings []Setting) *Settings {
	return &Settings{path: path, settings: settings}
}

func (s *Settings) Path() string                              { return s.path }
func (s *Settings) Title() string                             { return "Configurações" }
func (s *Settings) Scope() string                             { return "page:settings" }
func (s *Settings) Update(m *core.Model, msg tea.Msg) tea.Cmd { return nil }

func (s *Settings) Build(m *core.Model) widgets.Widget {
	rows := make([][]string, 0, len(s.settings)+1)
	for _, st := range s.settings {
		rows = append(rows, []string{st.Key, st.Value})
	}
	rows = append(rows, []string{"session", m.Session()})
	return widgets.Table{
		Title:   s.Title(),
		Headers: []string{"Chave", "Valor"},
		Shares:  []float64{0.35, 0.65},
		Rows:    rows,
	}
}
