package ui

import (
	"github.com/charmbracelet/lipgloss"

	"swatch/internal/style"
)

var (
	cGray   = lipgloss.Color("240")
	cAccent = lipgloss.Color("63")
	cWhite  = lipgloss.Color("255")
	cGold   = lipgloss.Color("220")
	cRed    = lipgloss.Color("203")

	styleAppHeader = lipgloss.NewStyle().Foreground(cWhite).Background(cAccent).Bold(true).Padding(0, 1)
	styleStatus    = lipgloss.NewStyle().Foreground(cGray)
	styleName      = lipgloss.NewStyle().Foreground(cWhite)
	styleSelected  = lipgloss.NewStyle().Foreground(cWhite).Background(lipgloss.Color("237")).Bold(true)
	styleOverride  = lipgloss.NewStyle().Foreground(cGold)
	styleSource    = lipgloss.NewStyle().Foreground(cGray).Italic(true)
	styleError     = lipgloss.NewStyle().Foreground(cRed)
	stylePane      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(cGray)
	styleToast     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(cAccent).Padding(0, 1)

	styleHelpTitle   = lipgloss.NewStyle().Foreground(cAccent).Bold(true)
	styleHelpSection = lipgloss.NewStyle().Foreground(cGold).Bold(true)
	styleHelpKey     = lipgloss.NewStyle().Foreground(cWhite).Bold(true)
	styleHelpDesc    = lipgloss.NewStyle().Foreground(cGray)
	styleHelpDivider = lipgloss.NewStyle().Foreground(cGray)
	styleHelpBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(cAccent).Padding(1, 2)
)

// termColor converts a resolved CSS color to a terminal color. Alpha is
// dropped; values that are not colors map to NoColor.
func termColor(value string) lipgloss.TerminalColor {
	if !style.ParseColor(value) {
		return lipgloss.NoColor{}
	}
	hex := style.ToHex(value)
	if len(hex) > 7 {
		hex = hex[:7]
	}
	return lipgloss.Color(hex)
}

func maxLineWidth(lines []string) int {
	max := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > max {
			max = w
		}
	}
	return max
}
