package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"swatch/internal/report"
)

const (
	minPreviewWidth = 24
	nameColumnWidth = 26
)

// View implements tea.Model.
func (m *App) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := "SWATCH"
	if m.version != "" {
		title = "SWATCH v" + m.version
	}
	header := styleAppHeader.Render(title) + " " + styleStatus.Render(m.statusLine())

	bodyHeight := m.height - 4
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	listWidth := m.width - 2
	var body string
	if m.showPreview && m.width >= 2*minPreviewWidth {
		previewWidth := m.width / 2
		listWidth = m.width - previewWidth - 4
		left := stylePane.Width(listWidth).Height(bodyHeight).Render(m.renderList(listWidth))
		right := stylePane.Width(previewWidth).Height(bodyHeight).
			Render(renderPreview(m.sheet.Name, m.resolved, m.theme, m.ambient, previewWidth, bodyHeight))
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	} else {
		if listWidth < 1 {
			listWidth = 1
		}
		body = stylePane.Width(listWidth).Height(bodyHeight).Render(m.renderList(listWidth))
	}

	footer := m.help.View(m.keys)
	view := header + "\n" + body + "\n" + footer

	overlay := ""
	switch {
	case m.showHelp:
		overlay = renderHelpOverlay(m.keys)
	case m.showPicker:
		overlay = m.picker.View()
	}
	if overlay == "" && m.toast == "" {
		return view
	}

	canvas := NewCanvas(m.width, m.height)
	canvas.DrawStringAt(0, 0, view)
	if overlay != "" {
		canvas.Center(overlay, 1)
	}
	if m.toast != "" {
		canvas.BottomRight(styleToast.Render(m.toast), 1)
	}
	return canvas.Render()
}

func (m *App) statusLine() string {
	parts := []string{m.sheet.Name, m.themeName, string(m.platform)}
	if m.ambient != "" {
		parts = append(parts, "on "+m.ambient)
	}
	if m.widgetID != "" {
		widget := "widget " + m.widgetID
		if m.dirty {
			widget += "*"
		}
		parts = append(parts, widget)
	}
	return strings.Join(parts, " · ")
}

func (m *App) renderList(width int) string {
	if len(m.rows) == 0 {
		return styleStatus.Render("No attributes on this platform")
	}
	end := m.top + m.listHeight()
	if end > len(m.rows) {
		end = len(m.rows)
	}

	lines := make([]string, 0, end-m.top+1)
	for i := m.top; i < end; i++ {
		lines = append(lines, m.renderRow(m.rows[i], i == m.cursor, width))
	}
	if m.editing {
		if entry, ok := m.selected(); ok {
			lines = append(lines, styleOverride.Render(entry.Label+": ")+m.input.View())
		}
	}
	return strings.Join(lines, "\n")
}

func (m *App) renderRow(e report.Entry, selected bool, width int) string {
	marker := "  "
	if selected {
		marker = "> "
	}
	name := fmt.Sprintf("%s%-*s", marker, nameColumnWidth, ansi.Truncate(e.Name, nameColumnWidth, "…"))
	if selected {
		name = styleSelected.Render(name)
	} else {
		name = styleName.Render(name)
	}

	swatch := report.Swatch(e.Value)
	if swatch == "" {
		swatch = "    "
	}

	value := e.Value
	if value == "" {
		value = styleSource.Render("(empty)")
	}
	source := styleSource.Render(e.Source)
	if e.Source == report.SourceOverride {
		value = styleOverride.Render(value)
	}

	line := name + " " + swatch + " " + value + "  " + source
	return ansi.Truncate(line, width, "…")
}
