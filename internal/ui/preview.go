package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"swatch/internal/style"
)

// renderPreview draws a terminal mock of the sheet's widget on a canvas
// painted with the ambient background, or the theme canvas without one.
func renderPreview(sheetName string, r style.Resolved, th style.ThemeDetail, ambient string, width, height int) string {
	canvas := NewCanvas(width, height)
	canvas.Fill(termColor(firstSet(ambient, th.Canvas)))

	var block string
	switch strings.ToLower(sheetName) {
	case "checkbox":
		block = previewToggle(r, "✓", " ")
	case "radio":
		block = previewToggle(r, "●", "○")
	case "modal":
		block = previewModal(r, th, width)
	default:
		block = previewSwatches(r, height-2)
	}
	canvas.Center(block, 1)
	return canvas.Render()
}

func previewToggle(r style.Resolved, on, off string) string {
	label := lipgloss.NewStyle().Foreground(termColor(r["label"]))
	checked := lipgloss.NewStyle().
		Foreground(termColor(r["checked"])).
		Background(termColor(r["checkedBackground"])).
		Render(" " + on + " ")
	unchecked := lipgloss.NewStyle().
		Foreground(termColor(firstSet(r["uncheckedBorder"], r["unchecked"]))).
		Background(termColor(r["uncheckedBackground"])).
		Render(" " + off + " ")
	return lipgloss.JoinVertical(lipgloss.Left,
		checked+" "+label.Render("Selected"),
		"",
		unchecked+" "+label.Render("Not selected"),
	)
}

func previewModal(r style.Resolved, th style.ThemeDetail, width int) string {
	w := width / 2
	if w < 20 {
		w = 20
	}
	bg := termColor(r["background"])
	text := termColor(style.ContrastText(r["background"], th.TextDark, th.TextLight))
	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Foreground(text).Background(bg).Render("Dialog title"),
		"",
		lipgloss.NewStyle().Foreground(text).Background(bg).Render("Body copy sits on the modal surface."),
	)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(termColor(r["border"])).
		BorderBackground(bg).
		Background(bg).
		Padding(1, 2).
		Width(w).
		Render(body)
}

// previewSwatches lists the sheet's color attributes for widgets without a
// dedicated mock.
func previewSwatches(r style.Resolved, maxRows int) string {
	names := make([]string, 0, len(r))
	for name, v := range r {
		if style.ParseColor(v) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if maxRows > 0 && len(names) > maxRows {
		names = names[:maxRows]
	}
	if len(names) == 0 {
		return styleStatus.Render("no colors")
	}
	lines := make([]string, 0, len(names))
	for _, name := range names {
		block := lipgloss.NewStyle().Background(termColor(r[name])).Render("    ")
		lines = append(lines, block+" "+name)
	}
	return strings.Join(lines, "\n")
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
