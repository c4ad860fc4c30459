// Package cssgen turns resolved style maps into CSS text.
package cssgen

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"swatch/internal/style"
)

// Decl is one CSS declaration.
type Decl struct {
	Prop  string
	Value string
}

// Rule is a selector with its declarations.
type Rule struct {
	Selector string
	Decls    []Decl
}

// String renders the rule. Declarations with empty values are dropped and a
// rule left without declarations renders as "".
func (r Rule) String() string {
	var b strings.Builder
	n := 0
	for _, d := range r.Decls {
		if d.Value == "" {
			continue
		}
		if n == 0 {
			fmt.Fprintf(&b, "%s {\n", r.Selector)
		}
		fmt.Fprintf(&b, "  %s: %s;\n", d.Prop, d.Value)
		n++
	}
	if n == 0 {
		return ""
	}
	b.WriteString("}\n")
	return b.String()
}

// Render joins rules with blank lines, skipping empty ones.
func Render(rules []Rule) string {
	parts := make([]string, 0, len(rules))
	for _, r := range rules {
		if s := r.String(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

// Kebab converts an attribute name such as "checkedBackground" to
// "checked-background".
func Kebab(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CustomProperties renders resolved values as sorted custom property lines,
// e.g. "--swatch-checked-background: #3377FF;". Empty values are skipped.
func CustomProperties(prefix string, resolved style.Resolved) string {
	names := make([]string, 0, len(resolved))
	for name, v := range resolved {
		if v != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	prefix = strings.Trim(prefix, "-")
	var b strings.Builder
	for _, name := range names {
		prop := "--" + Kebab(name)
		if prefix != "" {
			prop = "--" + prefix + "-" + Kebab(name)
		}
		fmt.Fprintf(&b, "%s: %s;\n", prop, resolved[name])
	}
	return b.String()
}

// Rules renders a widget rule block for sheets with a known layout and a
// custom property block on selector for every other sheet.
func Rules(sheetName, selector string, resolved style.Resolved) string {
	if strings.TrimSpace(selector) == "" {
		selector = "." + Kebab(sheetName)
	}
	var rules []Rule
	switch strings.ToLower(sheetName) {
	case "checkbox":
		rules = checkboxRules(selector, resolved)
	case "radio":
		rules = radioRules(selector, resolved)
	case "modal":
		rules = modalRules(selector, resolved)
	case "select", "multiselect", "treeselect":
		rules = selectRules(selector, resolved)
	case "inputlike", "colorpicker":
		rules = inputRules(selector, resolved)
	default:
		return fmt.Sprintf("%s {\n%s}\n", selector, indent(CustomProperties(Kebab(sheetName), resolved)))
	}
	return Render(rules)
}

func indent(s string) string {
	if s == "" {
		return s
	}
	lines := strings.SplitAfter(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = "  " + l
		}
	}
	return strings.Join(lines, "")
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func typography(r style.Resolved) []Decl {
	return []Decl{
		{"font-family", r["fontFamily"]},
		{"font-size", r["textSize"]},
		{"font-weight", r["textWeight"]},
		{"font-style", r["fontStyle"]},
		{"text-transform", r["textTransform"]},
		{"text-decoration", r["textDecoration"]},
	}
}
