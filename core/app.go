package core

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/adpulse/internal/campaign"
	"github.com/jask/adpulse/internal/compose"
	"github.com/jask/adpulse/internal/nav"
	"github.com/jask/adpulse/widgets"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Page is the content routed beside the sidebar. Pages never touch the
// panel state; they return NavigateMsg or ToggleSidebarMsg commands.
type Page interface {
	Path() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

type Options struct {
	AppName       string
	Menu          nav.Menu
	Pages         []Page
	StartPath     string
	// SidebarClosed starts the session with the panel hidden.
	SidebarClosed bool
	SidebarWidth  int
	Keys          *KeyRegistry
	Commands      *CommandRegistry
	Composer      compose.Composer
	Charts        widgets.ChartRenderer
	Source        campaign.Source
	Logger        *zap.Logger
	LoadTimeout   time.Duration
}

type Model struct {
	width        int
	height       int
	appName      string
	menu         nav.Menu
	pages        map[string]Page
	currentPath  string
	panel        nav.PanelState
	sidebarWidth int
	screens      ScreenStack
	keys         *KeyRegistry
	commands     *CommandRegistry
	status       string
	statusErr    bool
	quitting     bool
	loading      bool
	loadGen      uint64
	snapshot     campaign.Snapshot
	composer     compose.Composer
	charts       widgets.ChartRenderer
	source       campaign.Source
	loadTimeout  time.Duration
	session      string
	log          *zap.Logger

	OpenCommandModal func(m *Model, scope string) Screen
}

const (
	defaultSidebarWidth = 26
	defaultLoadTimeout  = 5 * time.Second
)

func NewModel(opts Options) Model {
	pages := make(map[string]Page, len(opts.Pages))
	for _, p := range opts.Pages {
		pages[p.Path()] = p
	}
	keys := opts.Keys
	if keys == nil {
		keys = NewKeyRegistry(DefaultKeyBindings(opts.Menu.Len()))
	}
	commands := opts.Commands
	if commands == nil {
		commands = NewCommandRegistry(nil)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	charts := opts.Charts
	if charts == nil {
		charts = widgets.NTCharts{}
	}
	session := uuid.NewString()

	m := Model{
		width:        100,
		height:       32,
		appName:      opts.AppName,
		menu:         opts.Menu,
		pages:        pages,
		currentPath:  opts.StartPath,
		panel:        nav.NewPanelState(),
		sidebarWidth: opts.SidebarWidth,
		keys:         keys,
		commands:     commands,
		status:       "Pronto",
		composer:     opts.Composer,
		charts:       charts,
		source:       opts.Source,
		loadTimeout:  opts.LoadTimeout,
		session:      session,
		log:          log.With(zap.String("session", session)),
	}
	if opts.SidebarClosed {
		m.panel = nav.Toggle(m.panel)
	}
	if m.sidebarWidth <= 0 {
		m.sidebarWidth = defaultSidebarWidth
	}
	if m.loadTimeout <= 0 {
		m.loadTimeout = defaultLoadTimeout
	}
	if m.currentPath == "" {
		if first, ok := m.menu.At(0); ok {
			m.currentPath = first.Path
		} else {
			m.currentPath = "/"
		}
	}
	if m.source != nil {
		m.loading = true
	}
	return m
}

func (m Model) Init() tea.Cmd {
	m.log.Info("session start", zap.String("path", m.currentPath), zap.Bool("sidebar_open", m.panel.IsOpen))
	return m.loadCmd()
}

// loadCmd resolves the snapshot off the update loop.
func (m Model) loadCmd() tea.Cmd {
	if m.source == nil {
		return nil
	}
	source, timeout, gen := m.source, m.loadTimeout, m.loadGen
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		snap, err := source.Load(ctx)
		return DataLoadedMsg{Snapshot: snap, Err: err, Gen: gen}
	}
}

// Reload starts a fresh snapshot load and supersedes any load still in
// flight. Pages render the loading state until the reply arrives.
func (m *Model) Reload() tea.Cmd {
	if m.source == nil {
		return nil
	}
	m.loadGen++
	m.loading = true
	m.SetStatus("Recarregando dados…")
	return m.loadCmd()
}

// HasSource reports whether snapshots can be (re)loaded.
func (m Model) HasSource() bool { return m.source != nil }

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

// ActiveEntry is the menu entry matching the current path, if any.
func (m Model) ActiveEntry() (nav.MenuEntry, bool) {
	return m.menu.Resolve(m.currentPath)
}

func (m Model) ActivePage() (Page, bool) {
	p, ok := m.pages[m.currentPath]
	return p, ok
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if p, ok := m.ActivePage(); ok {
		return p.Scope()
	}
	return "page:not-found"
}

func (m Model) CurrentPath() string                { return m.currentPath }
func (m Model) Panel() nav.PanelState              { return m.panel }
func (m Model) Menu() nav.Menu                     { return m.menu }
func (m Model) Loading() bool                      { return m.loading }
func (m Model) Snapshot() campaign.Snapshot        { return m.snapshot }
func (m Model) Composer() compose.Composer         { return m.composer }
func (m Model) Charts() widgets.ChartRenderer      { return m.charts }
func (m Model) Session() string                    { return m.session }
func (m Model) Size() (int, int)                   { return m.width, m.height }
func (m *Model) CommandRegistry() *CommandRegistry { return m.commands }

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m *Model) toggleSidebar() {
	m.panel = nav.Toggle(m.panel)
	m.log.Info("toggle sidebar", zap.Bool("open", m.panel.IsOpen))
}

func (m *Model) navigate(path string) {
	from := m.currentPath
	m.currentPath = path
	_, resolved := m.ActiveEntry()
	page, ok := m.ActivePage()
	m.log.Info("navigate", zap.String("from", from), zap.String("to", path), zap.Bool("resolved", resolved))
	if !ok {
		m.SetStatus("Página não encontrada: " + path)
		return
	}
	m.SetStatus(page.Title())
}

// IsAction reports whether msg triggers action in the active scope.
func (m Model) IsAction(msg tea.KeyMsg, action string) bool {
	return m.keys.IsAction(msg, action, m.ActiveScope())
}
