package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{name: "up arrow", msg: tea.KeyMsg{Type: tea.KeyUp}, binding: km.Up},
		{name: "k", msg: runeKey('k'), binding: km.Up},
		{name: "j", msg: runeKey('j'), binding: km.Down},
		{name: "g", msg: runeKey('g'), binding: km.Home},
		{name: "G", msg: runeKey('G'), binding: km.End},
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, binding: km.Enter},
		{name: "esc", msg: tea.KeyMsg{Type: tea.KeyEsc}, binding: km.Escape},
		{name: "ctrl+r", msg: tea.KeyMsg{Type: tea.KeyCtrlR}, binding: km.Reset},
		{name: "t", msg: runeKey('t'), binding: km.Theme},
		{name: "p", msg: runeKey('p'), binding: km.Platform},
		{name: "/", msg: runeKey('/'), binding: km.Picker},
		{name: "v", msg: runeKey('v'), binding: km.Preview},
		{name: "c", msg: runeKey('c'), binding: km.Copy},
		{name: "s", msg: runeKey('s'), binding: km.Save},
		{name: "?", msg: runeKey('?'), binding: km.Help},
		{name: "q", msg: runeKey('q'), binding: km.Quit},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, binding: km.Quit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Fatalf("%s did not match %v", tt.name, tt.binding.Keys())
			}
		})
	}
}

func TestKeyMapHelpGroups(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Fatal("expected short help bindings")
	}
	total := 0
	for _, group := range km.FullHelp() {
		for _, b := range group {
			if b.Help().Key == "" || b.Help().Desc == "" {
				t.Fatalf("binding %v has no help text", b.Keys())
			}
			total++
		}
	}
	if total < 12 {
		t.Fatalf("full help lists %d bindings", total)
	}
}
