package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	appErrors "swatch/internal/errors"
	"swatch/internal/style"
)

// setFlag collects repeated -set name=value pairs. Later pairs win.
type setFlag struct {
	values style.Overrides
}

func (s *setFlag) String() string {
	if s == nil || len(s.values) == 0 {
		return ""
	}
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + s.values[name]
	}
	return strings.Join(parts, ",")
}

func (s *setFlag) Set(v string) error {
	name, value, ok := strings.Cut(v, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("expected name=value, got %q", v)
	}
	if s.values == nil {
		s.values = style.Overrides{}
	}
	s.values[name] = strings.TrimSpace(value)
	return nil
}

// overridesFile is the YAML form accepted by -overrides:
//
//	sheet: Checkbox
//	overrides:
//	  checkedBackground: "#1A237E"
type overridesFile struct {
	Sheet     string            `yaml:"sheet,omitempty"`
	Overrides map[string]string `yaml:"overrides"`
}

func loadOverridesFile(path string) (overridesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return overridesFile{}, appErrors.New(appErrors.CodeInvalidOverride,
			fmt.Sprintf("read overrides %s", path), err)
	}
	var f overridesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return overridesFile{}, appErrors.New(appErrors.CodeInvalidOverride,
			fmt.Sprintf("parse overrides %s: %v", path, err), err)
	}
	return f, nil
}

// mergeOverrides layers each map over the previous ones and rejects names
// the sheet does not declare.
func mergeOverrides(sheet style.Sheet, layers ...map[string]string) (style.Overrides, error) {
	out := style.Overrides{}
	var unknown []string
	for _, layer := range layers {
		for name, value := range layer {
			if _, ok := sheet.Lookup(name); !ok {
				unknown = append(unknown, name)
				continue
			}
			out[name] = value
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, appErrors.New(appErrors.CodeInvalidOverride,
			fmt.Sprintf("style sheet %q has no attribute %s", sheet.Name, strings.Join(unknown, ", ")), nil)
	}
	return out, nil
}
