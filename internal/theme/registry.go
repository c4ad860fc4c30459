// Package theme holds the named palettes the resolver can run against.
package theme

import (
	"sort"
	"strings"
	"sync"

	appErrors "swatch/internal/errors"
	"swatch/internal/style"
)

// DefaultName is the palette used when nothing else is configured.
const DefaultName = "default"

// Registry maps theme names to palettes. The zero value is not usable; call
// NewRegistry or Builtin.
type Registry struct {
	mu     sync.RWMutex
	themes map[string]style.ThemeDetail
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{themes: make(map[string]style.ThemeDetail)}
}

// Builtin returns a fresh registry holding every bundled palette.
func Builtin() *Registry {
	r := NewRegistry()
	for name, p := range palettes {
		r.Register(name, p.detail())
	}
	return r
}

// Register adds or replaces a theme. Names are case-insensitive.
func (r *Registry) Register(name string, detail style.ThemeDetail) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.themes[normalize(name)] = detail
}

// Lookup returns the named theme.
func (r *Registry) Lookup(name string) (style.ThemeDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if d, ok := r.themes[normalize(name)]; ok {
		return d, nil
	}
	return style.ThemeDetail{}, appErrors.New(appErrors.CodeUnknownTheme, "unknown theme: "+name, nil)
}

// Available returns all registered theme names in sorted order.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Next returns the theme after current in sorted order, wrapping around.
// An unknown current name yields the first theme.
func (r *Registry) Next(current string) string {
	names := r.Available()
	if len(names) == 0 {
		return ""
	}
	current = normalize(current)
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
