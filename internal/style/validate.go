package style

import (
	"fmt"
	"strings"

	appErrors "swatch/internal/errors"
)

// ValidateSheet checks a sheet for authoring defects: duplicate or empty
// names, unknown kinds, dependents without a source, dependencies on unknown
// attributes and dependents that read a dependent declared later in the list.
// Resolution never fails; this is a development-time check.
func ValidateSheet(sheet Sheet) error {
	var problems []string
	index := make(map[string]int, len(sheet.Descriptors))
	for i, d := range sheet.Descriptors {
		if strings.TrimSpace(d.Name) == "" {
			problems = append(problems, fmt.Sprintf("descriptor %d has no name", i))
			continue
		}
		if _, dup := index[d.Name]; dup {
			problems = append(problems, fmt.Sprintf("duplicate descriptor %q", d.Name))
			continue
		}
		index[d.Name] = i
	}

	for i, d := range sheet.Descriptors {
		if !d.Kind.Valid() {
			problems = append(problems, fmt.Sprintf("%s: unknown kind %d", d.Name, int(d.Kind)))
			continue
		}
		if !d.IsDependent() {
			continue
		}
		if d.DependsOnAttribute == "" && d.DependsOnThemeKey == "" {
			problems = append(problems, fmt.Sprintf("%s: dependent without attribute or theme key", d.Name))
		}
		if d.Transform == nil && d.DepKind != DepSelf {
			problems = append(problems, fmt.Sprintf("%s: dependent without transform", d.Name))
		}
		if d.DependsOnAttribute == "" {
			continue
		}
		j, ok := index[d.DependsOnAttribute]
		switch {
		case !ok:
			problems = append(problems, fmt.Sprintf("%s: depends on unknown attribute %q", d.Name, d.DependsOnAttribute))
		case j == i:
			problems = append(problems, fmt.Sprintf("%s: depends on itself", d.Name))
		case j > i && sheet.Descriptors[j].IsDependent():
			problems = append(problems, fmt.Sprintf("%s: depends on %q, a dependent declared later", d.Name, d.DependsOnAttribute))
		}
	}

	for name := range sheet.Defaults {
		if _, ok := index[name]; !ok {
			problems = append(problems, fmt.Sprintf("default for unknown attribute %q", name))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return appErrors.New(appErrors.CodeInvalidDescriptor,
		fmt.Sprintf("style sheet %q: %s", sheet.Name, strings.Join(problems, "; ")), nil)
}

// ValidateCatalog validates every catalog sheet.
func ValidateCatalog() error {
	for _, name := range Sheets() {
		sheet, _ := LookupSheet(name)
		if err := ValidateSheet(sheet); err != nil {
			return err
		}
	}
	return nil
}
