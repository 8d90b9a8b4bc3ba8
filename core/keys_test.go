package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+k"}, Action: "palette", Scopes: []string{"page:a"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
		{Keys: []string{"esc"}, Action: "close", Scopes: []string{"screen:*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "page:a") {
		t.Fatalf("expected ctrl+k in page:a")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "page:b") {
		t.Fatalf("did not expect ctrl+k in page:b")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", "page:b") {
		t.Fatalf("expected q to match wildcard scope")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyEsc}, "close", "screen:command") {
		t.Fatalf("expected prefix scope screen:* to match screen:command")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyEsc}, "close", "page:a") {
		t.Fatalf("screen:* must not match page scopes")
	}
}

func TestActionForReturnsFirstBinding(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings(5))
	action, ok := reg.ActionFor(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}}, "page:dashboard")
	if !ok || action != GotoAction(3) {
		t.Fatalf("action = %q, %v; want %q", action, ok, GotoAction(3))
	}
	if _, ok := reg.ActionFor(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'6'}}, "page:dashboard"); ok {
		t.Fatalf("only five entries are bound")
	}
	if i, ok := gotoIndex(GotoAction(3)); !ok || i != 2 {
		t.Fatalf("gotoIndex = %d, %v", i, ok)
	}
	if _, ok := gotoIndex("goto-x"); ok {
		t.Fatalf("gotoIndex accepted a non-number")
	}
}
