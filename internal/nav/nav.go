// Package nav resolves the active menu entry for a path and holds the
// sidebar panel state.
package nav

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrEmptyPath     = errors.New("menu entry path is empty")
	ErrDuplicatePath = errors.New("duplicate menu entry path")
)

// MenuEntry is one sidebar item. Icon is an opaque glyph identifier.
type MenuEntry struct {
	Icon  string
	Label string
	Path  string
}

// PanelState is the sidebar visibility flag owned by the shell.
type PanelState struct {
	IsOpen bool
}

func NewPanelState() PanelState {
	return PanelState{IsOpen: true}
}

// Toggle returns s with IsOpen inverted.
func Toggle(s PanelState) PanelState {
	return PanelState{IsOpen: !s.IsOpen}
}

// ResolveActive returns the first entry whose path equals currentPath.
// Paths are opaque keys: "/" does not match "/google-ads".
func ResolveActive(entries []MenuEntry, currentPath string) (MenuEntry, bool) {
	for _, e := range entries {
		if e.Path == currentPath {
			return e, true
		}
	}
	return MenuEntry{}, false
}

func DefaultEntries() []MenuEntry {
	return []MenuEntry{
		{Icon: "layout-dashboard", Label: "Dashboard", Path: "/"},
		{Icon: "target", Label: "Google Ads", Path: "/google-ads"},
		{Icon: "facebook", Label: "Facebook Ads", Path: "/facebook-ads"},
		{Icon: "file-text", Label: "Relatórios", Path: "/reports"},
		{Icon: "settings", Label: "Configurações", Path: "/settings"},
	}
}

// Menu is a validated, immutable ordered set of entries.
type Menu struct {
	entries []MenuEntry
}

func NewMenu(entries []MenuEntry) (Menu, error) {
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.Path) == "" {
			return Menu{}, fmt.Errorf("entry %d (%q): %w", i, e.Label, ErrEmptyPath)
		}
		if prev, ok := seen[e.Path]; ok {
			return Menu{}, fmt.Errorf("%w %q at entries %d and %d", ErrDuplicatePath, e.Path, prev, i)
		}
		seen[e.Path] = i
	}
	return Menu{entries: slices.Clone(entries)}, nil
}

func (m Menu) Entries() []MenuEntry { return slices.Clone(m.entries) }
func (m Menu) Len() int             { return len(m.entries) }

func (m Menu) Resolve(path string) (MenuEntry, bool) {
	return ResolveActive(m.entries, path)
}

func (m Menu) IndexOf(path string) int {
	for i, e := range m.entries {
		if e.Path == path {
			return i
		}
	}
	return -1
}

func (m Menu) At(i int) (MenuEntry, bool) {
	if i < 0 || i >= len(m.entries) {
		return MenuEntry{}, false
	}
	return m.entries[i], true
}

// Next returns the entry delta steps away from path, wrapping at both ends.
// From an unresolved path a forward step lands on the first entry and a
// backward step on the last.
func (m Menu) Next(path string, delta int) (MenuEntry, bool) {
	n := len(m.entries)
	if n == 0 {
		return MenuEntry{}, false
	}
	idx := m.IndexOf(path)
	if idx < 0 {
		if delta >= 0 {
			return m.entries[0], true
		}
		return m.entries[n-1], true
	}
	idx = ((idx+delta)%n + n) % n
	return m.entries[idx], true
}
