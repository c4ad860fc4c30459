package cssgen

import (
	"strings"
	"testing"

	"swatch/internal/style"
)

func resolveSheet(t *testing.T, name string, overrides style.Overrides) style.Resolved {
	t.Helper()
	sheet, ok := style.LookupSheet(name)
	if !ok {
		t.Fatalf("sheet %q not found", name)
	}
	return style.ResolveSheet(sheet, overrides, nil, "")
}

func TestKebab(t *testing.T) {
	tests := map[string]string{
		"checkedBackground":     "checked-background",
		"radius":                "radius",
		"backgroundImageOrigin": "background-image-origin",
		"headerBackgroundImage": "header-background-image",
		"":                      "",
	}
	for in, want := range tests {
		if got := Kebab(in); got != want {
			t.Errorf("Kebab(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCustomPropertiesSortedAndPrefixed(t *testing.T) {
	got := CustomProperties("sw", style.Resolved{
		"radius":            "4px",
		"checkedBackground": "#3377FF",
		"hoverBackground":   "",
	})
	want := "--sw-checked-background: #3377FF;\n--sw-radius: 4px;\n"
	if got != want {
		t.Fatalf("CustomProperties =\n%s\nwant\n%s", got, want)
	}
	if got := CustomProperties("", style.Resolved{"radius": "4px"}); got != "--radius: 4px;\n" {
		t.Fatalf("unprefixed = %q", got)
	}
}

func TestRuleDropsEmptyDeclarations(t *testing.T) {
	r := Rule{Selector: ".x", Decls: []Decl{{"color", ""}, {"margin", "0px"}}}
	if got := r.String(); got != ".x {\n  margin: 0px;\n}\n" {
		t.Fatalf("Rule.String = %q", got)
	}
	if got := (Rule{Selector: ".y", Decls: []Decl{{"color", ""}}}).String(); got != "" {
		t.Fatalf("empty rule rendered %q", got)
	}
}

func TestCheckboxRules(t *testing.T) {
	css := Rules("Checkbox", ".cb", resolveSheet(t, "Checkbox", nil))

	for _, want := range []string{
		".cb .checkbox-checked .checkbox-inner {\n  background-color: #3377FF;\n  border-color: #3377FF;\n  border-width: 0px;\n}",
		".cb .checkbox-checked .checkbox-inner::after {\n  border-color: #FFFFFF;\n}",
		"border-color: #D7D9E0;",
		// hoverBackground resolves to "" and falls back to the surface color.
		".cb:hover .checkbox-inner {\n  background-color: #FFFFFF;",
		"font-family: sans-serif;",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("checkbox css missing %q\n%s", want, css)
		}
	}
}

func TestRadioRules(t *testing.T) {
	css := Rules("radio", "", resolveSheet(t, "Radio", style.Overrides{"uncheckedBackground": "#000000"}))
	if !strings.HasPrefix(css, ".radio .radio-wrapper {") {
		t.Fatalf("default selector not derived from sheet name:\n%s", css)
	}
	if !strings.Contains(css, ".radio .radio-inner::after {\n  background-color: #000000;\n}") {
		t.Fatalf("checked dot should copy unchecked background:\n%s", css)
	}
}

func TestModalRules(t *testing.T) {
	css := Rules("Modal", ".m", resolveSheet(t, "Modal", nil))
	if strings.Contains(css, "background-image:") {
		t.Fatalf("background-image emitted without an image:\n%s", css)
	}
	for _, want := range []string{
		"padding: 20px 30px;",
		"border: 0px solid #D7D9E0;",
		"background-repeat: no-repeat;",
		"background-origin: padding-box;",
		".m .modal-body {\n  background-color: #FFFFFF;\n}",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("modal css missing %q\n%s", want, css)
		}
	}

	css = Rules("Modal", ".m", resolveSheet(t, "Modal", style.Overrides{"backgroundImage": "url(bg.png)"}))
	if !strings.Contains(css, "background-image: url(bg.png) !important;") {
		t.Fatalf("background-image missing:\n%s", css)
	}
}

func TestSelectAndInputRules(t *testing.T) {
	css := Rules("MultiSelect", ".s", resolveSheet(t, "MultiSelect", nil))
	for _, want := range []string{
		".s .select-selection-item {\n  background-color: #F5F5F6;\n  color: #222222;\n}",
		"box-shadow: 0 0 0 2px #3377FF33;",
		".s .select-item-option-selected .select-item-option-state {\n  color: #3377FF;\n}",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("select css missing %q\n%s", want, css)
		}
	}

	css = Rules("InputLike", ".i", resolveSheet(t, "InputLike", nil))
	if !strings.Contains(css, ".i .input-error {\n  color: #F5222D;\n}") {
		t.Fatalf("input css missing validation rule:\n%s", css)
	}
}

func TestRulesFallBackToCustomProperties(t *testing.T) {
	css := Rules("TableRow", ".t", resolveSheet(t, "TableRow", nil))
	want := ".t {\n" +
		"  --table-row-alternate-background: #FFFFFF;\n" +
		"  --table-row-background: #FFFFFF;\n" +
		"  --table-row-hover-row-background: #00000007;\n" +
		"  --table-row-selected-row-background: #3377FF16;\n" +
		"}\n"
	if css != want {
		t.Fatalf("fallback css =\n%s\nwant\n%s", css, want)
	}
}
