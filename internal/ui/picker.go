package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PickerSelectedMsg is sent when enter confirms a sheet.
type PickerSelectedMsg struct {
	Value string
}

// PickerCancelledMsg is sent when esc closes the picker.
type PickerCancelledMsg struct{}

// SheetPicker is a fuzzy-filtered list of style sheet names.
type SheetPicker struct {
	Options    []string
	Width      int
	MaxVisible int

	textInput      textinput.Model
	filtered       []string
	highlightIndex int
	scrollOffset   int
}

// NewSheetPicker creates a focused picker with current highlighted.
func NewSheetPicker(options []string, current string) SheetPicker {
	ti := textinput.New()
	ti.Placeholder = "Filter sheets..."
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Focus()

	p := SheetPicker{
		Options:    options,
		Width:      36,
		MaxVisible: 8,
		textInput:  ti,
		filtered:   options,
	}
	for i, name := range options {
		if name == current {
			p.highlightIndex = i
		}
	}
	p.adjustScrollOffset()
	return p
}

// Filtered returns the names matching the current query.
func (p SheetPicker) Filtered() []string { return p.filtered }

// Highlighted returns the highlighted name, or "" when nothing matches.
func (p SheetPicker) Highlighted() string {
	if p.highlightIndex < 0 || p.highlightIndex >= len(p.filtered) {
		return ""
	}
	return p.filtered[p.highlightIndex]
}

// Update implements the picker's key handling.
func (p SheetPicker) Update(msg tea.Msg) (SheetPicker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch keyMsg.Type {
	case tea.KeyUp:
		if p.highlightIndex > 0 {
			p.highlightIndex--
		}
		p.adjustScrollOffset()
		return p, nil
	case tea.KeyDown:
		if p.highlightIndex < len(p.filtered)-1 {
			p.highlightIndex++
		}
		p.adjustScrollOffset()
		return p, nil
	case tea.KeyEnter:
		value := p.Highlighted()
		if value == "" {
			return p, nil
		}
		return p, func() tea.Msg { return PickerSelectedMsg{Value: value} }
	case tea.KeyEsc:
		return p, func() tea.Msg { return PickerCancelledMsg{} }
	}

	before := p.textInput.Value()
	var cmd tea.Cmd
	p.textInput, cmd = p.textInput.Update(msg)
	if p.textInput.Value() != before {
		p.filtered = rankNames(p.Options, p.textInput.Value())
		p.highlightIndex = 0
		p.scrollOffset = 0
	}
	return p, cmd
}

func (p *SheetPicker) adjustScrollOffset() {
	if p.MaxVisible <= 0 {
		return
	}
	if p.highlightIndex < p.scrollOffset {
		p.scrollOffset = p.highlightIndex
	}
	if p.highlightIndex >= p.scrollOffset+p.MaxVisible {
		p.scrollOffset = p.highlightIndex - p.MaxVisible + 1
	}
}

// View renders the picker as a bordered box.
func (p SheetPicker) View() string {
	var b strings.Builder
	b.WriteString(styleHelpTitle.Render("Style sheets"))
	b.WriteString("\n")
	b.WriteString(p.textInput.View())
	b.WriteString("\n")

	if len(p.filtered) == 0 {
		b.WriteString(styleStatus.Render("No matching sheets"))
	}
	end := p.scrollOffset + p.MaxVisible
	if end > len(p.filtered) {
		end = len(p.filtered)
	}
	for i := p.scrollOffset; i < end; i++ {
		line := "  " + p.filtered[i]
		if i == p.highlightIndex {
			line = styleSelected.Render("> " + p.filtered[i])
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if more := len(p.filtered) - end; more > 0 {
		b.WriteString("\n" + styleStatus.Render(fmt.Sprintf("  +%d more", more)))
	}
	return styleHelpBox.Width(p.Width).Padding(0, 1).Render(b.String())
}
