package ui

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// rankNames returns the names matching query, best match first. An empty
// query keeps every name in its original order.
func rankNames(names []string, query string) []string {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return append([]string(nil), names...)
	}
	targets := make([]string, len(names))
	for i, name := range names {
		targets[i] = strings.ToLower(name)
	}
	matches := fuzzy.Find(query, targets)
	ranked := make([]string, 0, len(matches))
	for _, match := range matches {
		if match.Index >= 0 && match.Index < len(names) {
			ranked = append(ranked, names[match.Index])
		}
	}
	return ranked
}
