package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"swatch/internal/cssgen"
	"swatch/internal/debug"
	"swatch/internal/style"
)

const saveTimeout = 5 * time.Second

// handleKeyMsg routes keys to the focused surface: help, picker, editor, then
// the attribute list.
func (m *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help),
			key.Matches(msg, m.keys.Escape),
			key.Matches(msg, m.keys.Quit):
			m.showHelp = false
		}
		return m, nil
	}

	if m.showPicker {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	if m.editing {
		return m.handleEditKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.clampScroll()
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		m.clampScroll()
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
		m.clampScroll()
	case key.Matches(msg, m.keys.End):
		m.cursor = len(m.rows) - 1
		m.clampScroll()
	case key.Matches(msg, m.keys.Enter):
		m.startEditing()
	case key.Matches(msg, m.keys.Reset):
		return m, m.handleResetKey()
	case key.Matches(msg, m.keys.Theme):
		return m, m.handleThemeKey()
	case key.Matches(msg, m.keys.Platform):
		return m, m.handlePlatformKey()
	case key.Matches(msg, m.keys.Picker):
		m.picker = NewSheetPicker(style.Sheets(), m.sheet.Name)
		m.showPicker = true
	case key.Matches(msg, m.keys.Preview):
		m.showPreview = !m.showPreview
	case key.Matches(msg, m.keys.Copy):
		return m, m.handleCopyKey()
	case key.Matches(msg, m.keys.Save):
		return m, m.handleSaveKey()
	}
	return m, nil
}

func (m *App) startEditing() {
	entry, ok := m.selected()
	if !ok {
		return
	}
	m.input.SetValue(m.overrides[entry.Name])
	m.input.Placeholder = entry.Value
	m.input.CursorEnd()
	m.input.Focus()
	m.editing = true
	m.clampScroll()
}

// handleEditKey commits on enter, where an empty value clears the override,
// and cancels on esc.
func (m *App) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if entry, ok := m.selected(); ok {
			m.setOverride(entry.Name, m.input.Value())
		}
		m.stopEditing()
		return m, nil
	case tea.KeyEsc:
		m.stopEditing()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *App) stopEditing() {
	m.editing = false
	m.input.Blur()
	m.input.SetValue("")
}

func (m *App) handleResetKey() tea.Cmd {
	if !style.HasOverrides(m.overrides) {
		return nil
	}
	m.overrides = style.Reset(m.sheet.Descriptors)
	m.dirty = true
	m.resolve()
	return m.showToast("Overrides cleared")
}

func (m *App) handleThemeKey() tea.Cmd {
	next := m.themes.Next(m.themeName)
	detail, err := m.themes.Lookup(next)
	if err != nil {
		return m.showToast(err.Error())
	}
	m.themeName = next
	m.theme = detail
	if m.saveTheme != nil {
		if err := m.saveTheme(next); err != nil {
			debug.Logf("save theme %s: %v", next, err)
		}
	}
	m.resolve()
	return m.showToast("Theme: " + next)
}

func (m *App) handlePlatformKey() tea.Cmd {
	if m.platform == style.PlatformMobile {
		m.platform = style.PlatformPC
	} else {
		m.platform = style.PlatformMobile
	}
	if m.savePlatform != nil {
		if err := m.savePlatform(string(m.platform)); err != nil {
			debug.Logf("save platform %s: %v", m.platform, err)
		}
	}
	m.resolve()
	return m.showToast("Platform: " + string(m.platform))
}

func (m *App) handleCopyKey() tea.Cmd {
	css := cssgen.Rules(m.sheet.Name, "", m.resolved)
	if err := m.copyText(css); err != nil {
		return m.showToast("Copy failed: " + err.Error())
	}
	return m.showToast("Copied CSS for " + m.sheet.Name)
}

func (m *App) handleSaveKey() tea.Cmd {
	if m.store == nil || m.widgetID == "" {
		return m.showToast("No widget id; start with -widget to save")
	}
	store, widget, sheet := m.store, m.widgetID, m.sheet.Name
	overrides := cloneOverrides(m.overrides)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		return savedMsg{widget: widget, err: store.Save(ctx, widget, sheet, overrides)}
	}
}
