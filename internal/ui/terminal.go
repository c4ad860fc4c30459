package ui

import (
	"github.com/muesli/termenv"

	"swatch/internal/style"
)

// TerminalBackground returns the terminal's background color as hex, or ""
// when the output is not a terminal or does not report one.
func TerminalBackground(out *termenv.Output) string {
	if out == nil {
		return ""
	}
	c := out.BackgroundColor()
	if c == nil {
		return ""
	}
	if _, ok := c.(termenv.NoColor); ok {
		return ""
	}
	return style.ToHex(termenv.ConvertToRGB(c).Hex())
}
