package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"swatch/internal/style"
)

var (
	cGray  = lipgloss.Color("240")
	cField = lipgloss.Color("63")
	cWhite = lipgloss.Color("255")

	styleHeader   = lipgloss.NewStyle().Foreground(cField).Bold(true).Padding(0, 1)
	styleCell     = lipgloss.NewStyle().Foreground(cWhite).Padding(0, 1)
	styleDimCell  = lipgloss.NewStyle().Foreground(cGray).Padding(0, 1)
	styleOverride = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Padding(0, 1)
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(cField)
)

const swatchWidth = 4

// Swatch renders a colored block for color values and "" for anything else.
func Swatch(value string) string {
	if !style.ParseColor(value) {
		return ""
	}
	hex := style.ToHex(value)
	if len(hex) > 7 {
		hex = hex[:7]
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", swatchWidth))
}

// Table renders the report as a bordered lipgloss table.
func Table(r Report) string {
	rows := make([][]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		rows = append(rows, []string{e.Name, e.Kind, Swatch(e.Value), e.Value, e.Source})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(cGray)).
		Headers("ATTRIBUTE", "KIND", "", "VALUE", "SOURCE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 1 {
				return styleDimCell
			}
			if col == 4 && row >= 0 && row < len(r.Entries) && r.Entries[row].Source == SourceOverride {
				return styleOverride
			}
			return styleCell
		}).
		Rows(rows...)

	title := styleTitle.Render(r.Sheet + " · " + r.Theme)
	if r.Ambient != "" {
		title += styleDimCell.Render("on " + r.Ambient)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, t.String())
}
