package cssgen

import "swatch/internal/style"

const defaultToggleBorderWidth = "2px"

func checkboxRules(sel string, r style.Resolved) []Rule {
	bw := or(r["borderWidth"], defaultToggleBorderWidth)
	return []Rule{
		{sel + " .checkbox-wrapper", []Decl{
			{"color", r["staticText"]},
			{"padding", r["padding"]},
			{"margin", r["margin"]},
		}},
		{sel + " .checkbox-label", append([]Decl{{"color", r["label"]}}, typography(r)...)},
		{sel + " .checkbox-inner", []Decl{
			{"border-radius", r["radius"]},
			{"background-color", r["uncheckedBackground"]},
			{"border-color", r["uncheckedBorder"]},
			{"border-width", bw},
		}},
		{sel + " .checkbox-checked .checkbox-inner", []Decl{
			{"background-color", r["checkedBackground"]},
			{"border-color", r["checkedBackground"]},
			{"border-width", bw},
		}},
		{sel + " .checkbox-checked .checkbox-inner::after", []Decl{
			{"border-color", r["checked"]},
		}},
		{sel + ":hover .checkbox-inner", []Decl{
			{"background-color", or(r["hoverBackground"], style.SurfaceColor)},
			{"border-color", r["checkedBackground"]},
		}},
	}
}

func radioRules(sel string, r style.Resolved) []Rule {
	return []Rule{
		{sel + " .radio-wrapper", []Decl{
			{"color", r["staticText"]},
			{"padding", r["padding"]},
			{"margin", r["margin"]},
		}},
		{sel + " .radio-label", append([]Decl{{"color", r["label"]}}, typography(r)...)},
		{sel + " .radio-inner", []Decl{
			{"background-color", r["uncheckedBackground"]},
			{"border-color", r["uncheckedBorder"]},
			{"border-width", r["borderWidth"]},
		}},
		{sel + " .radio-inner::after", []Decl{
			{"background-color", r["checked"]},
		}},
		{sel + " .radio-checked .radio-inner", []Decl{
			{"background-color", r["checkedBackground"]},
			{"border-color", r["checkedBackground"]},
		}},
		{sel + ":hover .radio-inner", []Decl{
			{"background-color", or(r["hoverBackground"], style.SurfaceColor)},
			{"border-color", r["checkedBackground"]},
		}},
	}
}

// modalRules only emits background-image when one is set; the other image
// axes always carry their resolved or default value.
func modalRules(sel string, r style.Resolved) []Rule {
	content := []Decl{
		{"border-radius", r["radius"]},
		{"border", joinNonEmpty(r["borderWidth"], "solid", r["border"])},
		{"overflow", "hidden"},
		{"padding", r["padding"]},
		{"background-color", r["background"]},
	}
	if img := r["backgroundImage"]; img != "" {
		content = append(content, Decl{"background-image", img + " !important"})
	}
	content = append(content,
		Decl{"background-repeat", or(r["backgroundImageRepeat"], "no-repeat")},
		Decl{"background-size", or(r["backgroundImageSize"], "cover")},
		Decl{"background-position", or(r["backgroundImagePosition"], "center")},
		Decl{"background-origin", or(r["backgroundImageOrigin"], "padding-box")},
		Decl{"margin", r["margin"]},
	)
	return []Rule{
		{sel + " .modal-content", content},
		{sel + " .modal-body", []Decl{{"background-color", r["background"]}}},
	}
}

func selectRules(sel string, r style.Resolved) []Rule {
	control := []Decl{
		{"background-color", r["background"]},
		{"border-color", r["border"]},
		{"border-radius", r["radius"]},
		{"border-width", r["borderWidth"]},
		{"border-style", "solid"},
		{"padding", r["padding"]},
		{"color", r["text"]},
	}
	rules := []Rule{
		{sel, []Decl{{"margin", r["margin"]}}},
		{sel + " .select-selector", append(control, typography(r)...)},
		{sel + ":hover .select-selector", []Decl{{"border-color", r["accent"]}}},
		{sel + " .select-focused .select-selector", []Decl{
			{"border-color", r["accent"]},
			{"box-shadow", shadow(r["accent"])},
		}},
		{sel + " .select-arrow", []Decl{{"color", r["text"]}}},
	}
	if r["tags"] != "" {
		rules = append(rules, Rule{sel + " .select-selection-item", []Decl{
			{"background-color", r["tags"]},
			{"color", r["tagsText"]},
		}})
	}
	if r["multiIcon"] != "" {
		rules = append(rules, Rule{sel + " .select-item-option-selected .select-item-option-state", []Decl{
			{"color", r["multiIcon"]},
		}})
	}
	return rules
}

func inputRules(sel string, r style.Resolved) []Rule {
	return []Rule{
		{sel, []Decl{{"margin", r["margin"]}}},
		{sel + " .input-label", []Decl{{"color", r["label"]}}},
		{sel + " .input", append([]Decl{
			{"background-color", r["background"]},
			{"border-color", r["border"]},
			{"border-radius", r["radius"]},
			{"border-width", r["borderWidth"]},
			{"border-style", "solid"},
			{"padding", r["padding"]},
			{"color", r["text"]},
		}, typography(r)...)},
		{sel + " .input:hover", []Decl{{"border-color", r["accent"]}}},
		{sel + " .input:focus", []Decl{
			{"border-color", r["accent"]},
			{"box-shadow", shadow(r["accent"])},
		}},
		{sel + " .input-error", []Decl{{"color", r["validate"]}}},
	}
}

// shadow is the focus ring: the accent at 20% opacity.
func shadow(accent string) string {
	if accent == "" {
		return ""
	}
	hex := style.ToHex(accent)
	if len(hex) > 7 {
		hex = hex[:7]
	}
	return "0 0 0 2px " + hex + "33"
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += p
	}
	return out
}
