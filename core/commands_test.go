package core

import (
	"testing"
)

func TestSearchFiltersByScopeAndDisabled(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Alpha", Scopes: []string{"page:a"}},
		{ID: "b", Name: "Beta", Scopes: []string{"page:b"}, Disabled: func(m *Model) (bool, string) { return true, "blocked" }},
	})
	m := NewModel(Options{Commands: reg})
	resA := reg.Search("", "page:a", &m)
	if len(resA) != 1 || resA[0].CommandID != "a" {
		t.Fatalf("expected only command a in page:a, got %+v", resA)
	}
	resB := reg.Search("", "page:b", &m)
	if len(resB) != 1 || !resB[0].Disabled || resB[0].Reason != "blocked" {
		t.Fatalf("expected disabled command in page:b, got %+v", resB)
	}
}

func TestSearchToleratesTypos(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "go:/reports", Name: "Ir para Relatórios"},
		{ID: "toggle-sidebar", Name: "Alternar menu lateral"},
	})
	m := NewModel(Options{Commands: reg})

	res := reg.Search("relatorios", "page:dashboard", &m)
	if len(res) != 1 || res[0].CommandID != "go:/reports" {
		t.Fatalf("expected typo match on reports, got %+v", res)
	}
	if res := reg.Search("zzzz", "page:dashboard", &m); len(res) != 0 {
		t.Fatalf("expected no match, got %+v", res)
	}
}

func TestSearchRanksSubstringHitsFirst(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Menu lateral"},
		{ID: "b", Name: "Mena"},
	})
	m := NewModel(Options{Commands: reg})
	res := reg.Search("menu", "page:x", &m)
	if len(res) != 2 || res[0].CommandID != "a" {
		t.Fatalf("expected exact hit first, got %+v", res)
	}
}

func TestExecuteUnknownAndDisabled(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "off", Name: "Off", Disabled: func(*Model) (bool, string) { return true, "" }},
	})
	m := NewModel(Options{Commands: reg})
	msg := reg.Execute("missing", &m)().(StatusMsg)
	if msg.Text != "Comando desconhecido: missing" {
		t.Fatalf("status = %q", msg.Text)
	}
	msg = reg.Execute("off", &m)().(StatusMsg)
	if msg.Text != "comando desativado" {
		t.Fatalf("status = %q", msg.Text)
	}
}
