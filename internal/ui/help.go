package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type helpSection struct {
	title string
	rows  [][]string
}

func helpRow(b key.Binding) []string {
	return []string{b.Help().Key, b.Help().Desc}
}

// getHelpSections groups the bindings for the help overlay. Text comes from
// binding.Help() so the footer and overlay agree.
func getHelpSections(keys KeyMap) []helpSection {
	return []helpSection{
		{
			title: "ATTRIBUTES",
			rows: [][]string{
				helpRow(keys.Up),
				helpRow(keys.Home),
				helpRow(keys.End),
				helpRow(keys.Enter),
				helpRow(keys.Escape),
				helpRow(keys.Reset),
			},
		},
		{
			title: "VIEW",
			rows: [][]string{
				helpRow(keys.Theme),
				helpRow(keys.Platform),
				helpRow(keys.Picker),
				helpRow(keys.Preview),
			},
		},
		{
			title: "OUTPUT",
			rows: [][]string{
				helpRow(keys.Copy),
				helpRow(keys.Save),
				helpRow(keys.Quit),
			},
		},
	}
}

// renderHelpOverlay renders the help box; the caller centers it.
func renderHelpOverlay(keys KeyMap) string {
	sections := getHelpSections(keys)
	left := renderHelpSectionTable(sections[0])
	right := lipgloss.JoinVertical(lipgloss.Left,
		renderHelpSectionTable(sections[1]),
		"",
		renderHelpSectionTable(sections[2]),
	)
	columns := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)

	dividerWidth := lipgloss.Width(columns)
	if dividerWidth < 40 {
		dividerWidth = 40
	}
	content := lipgloss.JoinVertical(lipgloss.Center,
		styleHelpTitle.Render("SWATCH HELP"),
		styleHelpDivider.Render(strings.Repeat("─", dividerWidth)),
		"",
		columns,
		"",
		styleHelpDesc.Render("Press ? or Esc to close"),
	)
	return styleHelpBox.Render(content)
}

func renderHelpSectionTable(section helpSection) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return styleHelpKey.Width(10)
			}
			return styleHelpDesc
		}).
		Rows(section.rows...)

	return lipgloss.JoinVertical(lipgloss.Left,
		styleHelpSection.Render(section.title),
		styleHelpDivider.Render(strings.Repeat("─", len(section.title))),
		strings.TrimPrefix(t.String(), "\n"),
	)
}
