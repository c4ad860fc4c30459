package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"swatch/internal/style"
)

func TestRenderPreviewMocksWidgets(t *testing.T) {
	th := style.DefaultTheme()
	tests := []struct {
		sheet string
		want  []string
	}{
		{sheet: "Checkbox", want: []string{"✓", "Selected", "Not selected"}},
		{sheet: "Radio", want: []string{"●", "○", "Not selected"}},
		{sheet: "Modal", want: []string{"Dialog title"}},
		{sheet: "Button", want: []string{"background"}},
	}
	for _, tt := range tests {
		t.Run(tt.sheet, func(t *testing.T) {
			sheet, ok := style.LookupSheet(tt.sheet)
			if !ok {
				t.Fatalf("sheet %q missing", tt.sheet)
			}
			resolved := style.ResolveSheet(sheet, nil, &th, "")
			out := renderPreview(sheet.Name, resolved, th, "", 60, 16)

			lines := strings.Split(out, "\n")
			if len(lines) < 16 {
				t.Fatalf("preview has %d lines, want 16", len(lines))
			}
			plain := ansi.Strip(out)
			for _, w := range tt.want {
				if !strings.Contains(plain, w) {
					t.Errorf("preview missing %q:\n%s", w, plain)
				}
			}
		})
	}
}

func TestPreviewSwatchesSkipsNonColors(t *testing.T) {
	out := ansi.Strip(previewSwatches(style.Resolved{
		"background": "#FFFFFF",
		"padding":    "8px",
	}, 10))
	if !strings.Contains(out, "background") || strings.Contains(out, "padding") {
		t.Fatalf("unexpected swatches:\n%s", out)
	}
	if got := ansi.Strip(previewSwatches(style.Resolved{"padding": "8px"}, 10)); got != "no colors" {
		t.Fatalf("empty swatches = %q", got)
	}
}

func TestTermColor(t *testing.T) {
	if got := termColor("#3377FF80"); got != lipgloss.Color("#3377FF") {
		t.Fatalf("termColor dropped wrong part: %v", got)
	}
	if got := termColor("navy"); got != lipgloss.Color("#000080") {
		t.Fatalf("termColor(navy) = %v", got)
	}
	if _, ok := termColor("12px").(lipgloss.NoColor); !ok {
		t.Fatal("non-color should map to NoColor")
	}
}
