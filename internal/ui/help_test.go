package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestHelpOverlayListsEverySection(t *testing.T) {
	keys := DefaultKeyMap()
	out := ansi.Strip(renderHelpOverlay(keys))

	for _, section := range getHelpSections(keys) {
		if !strings.Contains(out, section.title) {
			t.Errorf("help missing section %q", section.title)
		}
		for _, row := range section.rows {
			if !strings.Contains(out, row[1]) {
				t.Errorf("help missing %q", row[1])
			}
		}
	}
	if !strings.Contains(out, "SWATCH HELP") {
		t.Fatal("help missing title")
	}
}
