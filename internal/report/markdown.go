package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

// Markdown renders the report as a Markdown document.
func Markdown(r Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Sheet)
	fmt.Fprintf(&b, "Theme: **%s**", r.Theme)
	if r.Ambient != "" {
		fmt.Fprintf(&b, ", ambient background `%s`", r.Ambient)
	}
	b.WriteString("\n\n")
	b.WriteString("| Attribute | Label | Kind | Value | Source |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, e := range r.Entries {
		value := "_(empty)_"
		if e.Value != "" {
			value = "`" + e.Value + "`"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", e.Name, escape(e.Label), e.Kind, value, escape(e.Source))
	}
	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// BuildMarkdownRenderer returns a function that renders Markdown for the
// terminal with the named glamour style. "plain", or a renderer that fails to
// build, falls back to word wrapping.
func BuildMarkdownRenderer(format string, width int) func(string) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	if style == "plain" {
		return fallback
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}
