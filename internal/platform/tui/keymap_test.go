package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/almegatsro/filedeck/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		key  string
		want MenuAction
	}{
		{"q", MenuActionQuit},
		{"ctrl+c", MenuActionQuit},
		{"k", MenuActionUp},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{"b", MenuActionBack},
		{"esc", MenuActionBack},
		{"tab", MenuActionScoreboard},
		{"x", MenuActionNone},
	}

	for _, tc := range cases {
		if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestMenuScoreboardRequest(t *testing.T) {
	model := NewMenuModel(core.DefaultConfig())

	updated, cmd := model.Update(keyMsg("tab"))
	m, ok := updated.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, want MenuModel", updated)
	}

	if !m.WantsScoreboard() {
		t.Error("expected WantsScoreboard after Tab")
	}
	if m.IsQuitting() {
		t.Error("Tab should not mark the menu as quitting")
	}
	if cmd == nil {
		t.Error("expected a quit command to leave the menu for the scoreboard")
	}
}

func TestMenuQuitDoesNotOpenScoreboard(t *testing.T) {
	model := NewMenuModel(core.DefaultConfig())

	updated, _ := model.Update(keyMsg("q"))
	m := updated.(MenuModel)

	if m.WantsScoreboard() {
		t.Error("quit should not request the scoreboard")
	}
	if !m.IsQuitting() {
		t.Error("expected quitting after q")
	}
}
