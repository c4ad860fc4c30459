package style

// Editor is the kind of input the property panel shows for a descriptor.
type Editor int

const (
	EditorColor Editor = iota
	EditorText
)

// EditorFor picks the property-panel input for d.
func EditorFor(d Descriptor) Editor {
	if d.Kind.PassThrough() {
		return EditorText
	}
	return EditorColor
}

// VisibleFor filters descriptors to those shown on platform. Descriptors
// without a platform are shown everywhere.
func VisibleFor(descriptors []Descriptor, platform Platform) []Descriptor {
	out := make([]Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		if d.Platform == PlatformAll || d.Platform == platform {
			out = append(out, d)
		}
	}
	return out
}

// DependencyMessage describes where an unset attribute's value comes from.
func DependencyMessage(d Descriptor) string {
	if !d.IsDependent() {
		switch d.Kind {
		case KindColor:
			return d.Color
		case KindThemeColor:
			if d.ThemeKey != "" {
				return ThemeKeyDisplayName(d.ThemeKey)
			}
		}
		return ""
	}
	switch {
	case d.DepKind == DepContrastText:
		return "Contrast text"
	case d.DepKind == DepSelf && d.DependsOnThemeKey != "":
		return ThemeKeyDisplayName(d.DependsOnThemeKey)
	}
	return "Generated"
}

// HasOverrides reports whether any override is set, which is when the panel
// offers a reset.
func HasOverrides(overrides Overrides) bool {
	for _, v := range overrides {
		if v != "" {
			return true
		}
	}
	return false
}

// Reset returns an override map that clears every attribute of descriptors.
func Reset(descriptors []Descriptor) Overrides {
	out := make(Overrides, len(descriptors))
	for _, d := range descriptors {
		out[d.Name] = ""
	}
	return out
}
