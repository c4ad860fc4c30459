package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// Canvas composes lipgloss-rendered blocks into a cellbuf screen so the
// preview can layer a widget mock over a painted ambient background.
type Canvas struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int
}

func NewCanvas(width, height int) *Canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{})
	return &Canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// Fill paints the whole canvas with bg.
func (c *Canvas) Fill(bg lipgloss.TerminalColor) {
	if c == nil {
		return
	}
	c.DrawStringAt(0, 0, lipgloss.NewStyle().Background(bg).Width(c.width).Height(c.height).Render(""))
}

// DrawStringAt writes content with its top-left corner at x,y.
func (c *Canvas) DrawStringAt(x, y int, content string) {
	if content == "" || c == nil || c.writer == nil {
		return
	}
	c.drawBlockAt(x, y, splitLines(content))
}

// Center draws block in the middle of the canvas, keeping margin rows free at
// the top and bottom.
func (c *Canvas) Center(block string, margin int) {
	lines := splitLines(block)
	if len(lines) == 0 || c == nil {
		return
	}
	if margin < 0 {
		margin = 0
	}
	h := len(lines)
	w := maxLineWidth(lines)
	if w > c.width {
		w = c.width
	}

	startY := margin
	if usable := c.height - 2*margin; usable > h {
		startY += (usable - h) / 2
	}
	if startY+h > c.height {
		startY = c.height - h
	}
	c.drawBlockAt((c.width-w)/2, startY, lines)
}

// BottomRight anchors block to the bottom-right corner, padding cells in.
func (c *Canvas) BottomRight(block string, padding int) {
	lines := splitLines(block)
	if len(lines) == 0 || c == nil {
		return
	}
	if padding < 0 {
		padding = 0
	}
	c.drawBlockAt(c.width-maxLineWidth(lines)-padding, c.height-len(lines)-padding, lines)
}

func (c *Canvas) drawBlockAt(x, y int, lines []string) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	for i, line := range lines {
		row := y + i
		if row >= c.height {
			break
		}
		if line == "" {
			continue
		}
		c.writer.PrintCropAt(x, row, line, "")
	}
}

// Render returns the composed frame with "\n" line endings.
func (c *Canvas) Render() string {
	if c == nil || c.screen == nil {
		return ""
	}
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}
