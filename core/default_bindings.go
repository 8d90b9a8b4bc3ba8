package core

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ActionQuit           = "quit"
	ActionToggleSidebar  = "toggle-sidebar"
	ActionNextPage       = "next-page"
	ActionPrevPage       = "prev-page"
	ActionCommandPalette = "open-command-palette"
	ActionReload         = "reload-data"
	ActionClose          = "close"
	ActionSelect         = "select"

	gotoPrefix = "goto-"
)

// GotoAction is the action that jumps to the n-th menu entry (1-based).
func GotoAction(n int) string {
	return fmt.Sprintf("%s%d", gotoPrefix, n)
}

func gotoIndex(action string) (int, bool) {
	rest, ok := strings.CutPrefix(action, gotoPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}

// DefaultKeyBindings returns the shell bindings plus digit keys for the
// first min(entries, 9) menu entries.
func DefaultKeyBindings(entries int) []KeyBinding {
	bindings := []KeyBinding{
		{Keys: []string{"q"}, Action: ActionQuit, Description: "sair", Scopes: []string{"page:*"}},
		{Keys: []string{"b", "ctrl+b"}, Action: ActionToggleSidebar, Description: "menu", Scopes: []string{"page:*"}},
		{Keys: []string{"tab"}, Action: ActionNextPage, Description: "próxima", Scopes: []string{"page:*"}},
		{Keys: []string{"shift+tab"}, Action: ActionPrevPage, Description: "anterior", Scopes: []string{"page:*"}},
		{Keys: []string{"ctrl+k", ":"}, Action: ActionCommandPalette, Description: "comandos", Scopes: []string{"page:*"}},
		{Keys: []string{"r"}, Action: ActionReload, Description: "recarregar", Scopes: []string{"page:*"}},
		{Keys: []string{"j", "down"}, Action: "row-down", Description: "linha", Scopes: []string{"page:platform"}},
		{Keys: []string{"k", "up"}, Action: "row-up", Description: "linha", Scopes: []string{"page:platform"}, Hidden: true},
		{Keys: []string{"m"}, Action: "cycle-metric", Description: "métrica", Scopes: []string{"page:platform"}},
		{Keys: []string{"esc"}, Action: ActionClose, Description: "fechar", Scopes: []string{"screen:*"}},
		{Keys: []string{"enter"}, Action: ActionSelect, Description: "executar", Scopes: []string{"screen:*"}},
	}
	for i := 0; i < min(entries, 9); i++ {
		bindings = append(bindings, KeyBinding{
			Keys:        []string{strconv.Itoa(i + 1)},
			Action:      GotoAction(i + 1),
			Description: fmt.Sprintf("ir 1-%d", min(entries, 9)),
			Scopes:      []string{"page:*"},
			Hidden:      i > 0,
		})
	}
	return bindings
}
