// Package report renders resolved style sheets for humans and tools.
package report

import (
	"encoding/json"
	"io"

	"swatch/internal/style"
)

// Entry is one resolved attribute with where its value came from.
type Entry struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Kind     string `json:"kind"`
	Platform string `json:"platform,omitempty"`
	Value    string `json:"value"`
	Source   string `json:"source"`
}

// Report is a resolved sheet ready for output.
type Report struct {
	Sheet   string  `json:"sheet"`
	Theme   string  `json:"theme"`
	Ambient string  `json:"ambient,omitempty"`
	Entries []Entry `json:"entries"`
}

// Source labels.
const (
	SourceOverride      = "override"
	SourceWidgetDefault = "widget default"
	SourceDefault       = "default"
)

// Build pairs each visible descriptor with its resolved value.
func Build(sheet style.Sheet, user style.Overrides, resolved style.Resolved, platform style.Platform, themeName, ambient string) Report {
	visible := style.VisibleFor(sheet.Descriptors, platform)
	r := Report{
		Sheet:   sheet.Name,
		Theme:   themeName,
		Ambient: ambient,
		Entries: make([]Entry, 0, len(visible)),
	}
	for _, d := range visible {
		r.Entries = append(r.Entries, Entry{
			Name:     d.Name,
			Label:    d.Label,
			Kind:     d.Kind.String(),
			Platform: string(d.Platform),
			Value:    resolved[d.Name],
			Source:   source(d, user, sheet.Defaults),
		})
	}
	return r
}

func source(d style.Descriptor, user, defaults style.Overrides) string {
	switch {
	case user[d.Name] != "":
		return SourceOverride
	case defaults[d.Name] != "":
		return SourceWidgetDefault
	}
	if msg := style.DependencyMessage(d); msg != "" {
		return msg
	}
	return SourceDefault
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
