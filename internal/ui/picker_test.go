package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func typeText(p SheetPicker, s string) SheetPicker {
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return p
}

func TestSheetPickerHighlightsCurrent(t *testing.T) {
	p := NewSheetPicker([]string{"Button", "Checkbox", "Modal"}, "Modal")
	if got := p.Highlighted(); got != "Modal" {
		t.Fatalf("Highlighted = %q", got)
	}
}

func TestSheetPickerFiltersAndSelects(t *testing.T) {
	p := NewSheetPicker([]string{"Button", "Checkbox", "Modal", "Radio"}, "Button")
	p = typeText(p, "mod")

	if got := p.Filtered(); len(got) != 1 || got[0] != "Modal" {
		t.Fatalf("Filtered = %v", got)
	}
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected selection command")
	}
	msg, ok := cmd().(PickerSelectedMsg)
	if !ok || msg.Value != "Modal" {
		t.Fatalf("got %#v", cmd())
	}
}

func TestSheetPickerNavigation(t *testing.T) {
	p := NewSheetPicker([]string{"A", "B", "C"}, "A")
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := p.Highlighted(); got != "C" {
		t.Fatalf("after 3 downs Highlighted = %q, want C", got)
	}
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := p.Highlighted(); got != "B" {
		t.Fatalf("after up Highlighted = %q, want B", got)
	}
}

func TestSheetPickerScrollsWithHighlight(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E"}
	p := NewSheetPicker(names, "A")
	p.MaxVisible = 2
	for i := 0; i < 4; i++ {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if p.scrollOffset != 3 {
		t.Fatalf("scrollOffset = %d, want 3", p.scrollOffset)
	}
	view := ansi.Strip(p.View())
	if strings.Contains(view, "  A") || !strings.Contains(view, "> E") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}

func TestSheetPickerNoMatch(t *testing.T) {
	p := typeText(NewSheetPicker([]string{"Button"}, ""), "zzz")
	if p.Highlighted() != "" {
		t.Fatalf("Highlighted = %q", p.Highlighted())
	}
	if _, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatal("enter with no match should not select")
	}
	if !strings.Contains(ansi.Strip(p.View()), "No matching sheets") {
		t.Fatal("expected empty-state text")
	}
}

func TestSheetPickerEscapeCancels(t *testing.T) {
	p := NewSheetPicker([]string{"Button"}, "")
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected cancel command")
	}
	if _, ok := cmd().(PickerCancelledMsg); !ok {
		t.Fatalf("got %#v", cmd())
	}
}
