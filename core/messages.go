package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/adpulse/internal/campaign"
)

// ToggleSidebarMsg asks the shell to flip the sidebar panel.
type ToggleSidebarMsg struct{}

// NavigateMsg asks the shell to make Path current. Paths need not be in the
// menu; an unknown path renders the not-found page.
type NavigateMsg struct {
	Path string
}

type StatusMsg struct {
	Text  string
	IsErr bool
}

// DataLoadedMsg answers a snapshot load. Gen identifies the load; replies
// from a superseded load are dropped.
type DataLoadedMsg struct {
	Snapshot campaign.Snapshot
	Err      error
	Gen      uint64
}

// ReloadMsg asks the shell to load the snapshot again, typically after the
// data file changed on disk.
type ReloadMsg struct{}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

func ToggleSidebarCmd() tea.Msg { return ToggleSidebarMsg{} }

func NavigateCmd(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
