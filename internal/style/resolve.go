package style

// Overrides maps attribute names to user-supplied values. An empty value
// means the attribute is unset.
type Overrides map[string]string

// Resolved maps attribute names to their final CSS-ready values.
type Resolved map[string]string

const (
	defaultBorderWidth    = "0px"
	defaultBorderStyle    = "solid"
	defaultTextSize       = "14px"
	defaultTextWeight     = "normal"
	defaultFontFamily     = "sans-serif"
	defaultFontStyle      = "normal"
	defaultTextTransform  = "none"
	defaultTextDecoration = "none"
	defaultImageRepeat    = "no-repeat"
	defaultImageSize      = "cover"
	defaultImagePosition  = "center"
	defaultImageOrigin    = "padding-box"
)

// Resolve maps descriptors to final values given user overrides, a theme and
// the ambient background of the enclosing container.
//
// A nil theme resolves against DefaultTheme. An empty ambient means no
// container background is known. The result has exactly one entry per
// descriptor name; inputs are never modified.
//
// Resolution happens in two passes over the list. The first pass applies
// overrides and kind defaults. The second pass computes dependent attributes
// in list order; a dependent attribute sees values resolved by the first pass
// and by dependent attributes earlier in the list.
func Resolve(overrides Overrides, descriptors []Descriptor, theme *ThemeDetail, ambient string) Resolved {
	th := DefaultTheme()
	if theme != nil {
		th = *theme
	}

	res := make(Resolved, len(descriptors))
	for _, d := range descriptors {
		if v := overrides[d.Name]; v != "" {
			res[d.Name] = resolveOverride(d, v, th)
			continue
		}
		if v, ok := kindDefault(d, th); ok {
			res[d.Name] = v
		}
	}

	for _, d := range descriptors {
		if overrides[d.Name] != "" || !d.IsDependent() {
			continue
		}
		res[d.Name] = resolveDependent(d, res, th, ambient)
	}
	return res
}

// ResolveSheet resolves a catalog sheet, layering the sheet's widget defaults
// under the user overrides.
func ResolveSheet(sheet Sheet, user Overrides, theme *ThemeDetail, ambient string) Resolved {
	return Resolve(sheet.Overrides(user), sheet.Descriptors, theme, ambient)
}

func resolveOverride(d Descriptor, v string, th ThemeDetail) string {
	if d.Kind.PassThrough() {
		return v
	}
	if IsThemeColorKey(v) {
		return th.Get(ThemeKey(v))
	}
	return v
}

// kindDefault returns the first-pass fallback for d. The boolean is false for
// dependent descriptors, which are left for the second pass.
func kindDefault(d Descriptor, th ThemeDetail) (string, bool) {
	switch d.Kind {
	case KindDependent:
		return "", false
	case KindColor:
		return d.Color, true
	case KindThemeColor:
		return firstNonEmpty(th.Get(d.ThemeKey), d.DefaultValue), true
	case KindRadius, KindMargin, KindPadding:
		return firstNonEmpty(th.Get(d.ThemeKey), d.DefaultValue), true
	case KindBorderWidth:
		return firstNonEmpty(d.DefaultValue, th.Get(d.ThemeKey), defaultBorderWidth), true
	case KindBorderStyle:
		return firstNonEmpty(d.DefaultValue, defaultBorderStyle), true
	case KindTextSize:
		return firstNonEmpty(th.Get(d.ThemeKey), d.DefaultValue, defaultTextSize), true
	case KindTextWeight:
		return firstNonEmpty(th.Get(d.ThemeKey), d.DefaultValue, defaultTextWeight), true
	case KindFontFamily:
		return firstNonEmpty(th.Get(d.ThemeKey), d.DefaultValue, defaultFontFamily), true
	case KindFontStyle:
		return firstNonEmpty(th.Get(d.ThemeKey), d.DefaultValue, defaultFontStyle), true
	case KindTextTransform:
		return firstNonEmpty(d.DefaultValue, defaultTextTransform), true
	case KindTextDecoration:
		return firstNonEmpty(d.DefaultValue, defaultTextDecoration), true
	case KindBackgroundImage:
		return d.DefaultValue, true
	case KindBackgroundImageRepeat:
		return firstNonEmpty(d.DefaultValue, defaultImageRepeat), true
	case KindBackgroundImageSize:
		return firstNonEmpty(d.DefaultValue, defaultImageSize), true
	case KindBackgroundImagePosition:
		return firstNonEmpty(d.DefaultValue, defaultImagePosition), true
	case KindBackgroundImageOrigin:
		return firstNonEmpty(d.DefaultValue, defaultImageOrigin), true
	}
	// Unknown kinds are rejected by ValidateSheet; keep the one-entry guarantee.
	return d.DefaultValue, true
}

func resolveDependent(d Descriptor, res Resolved, th ThemeDetail, ambient string) string {
	fn := d.Transform
	if fn == nil {
		fn = ToSelf
	}

	switch {
	case d.DepKind == DepContrastText:
		var source string
		if d.DependsOnAttribute != "" {
			source = res[d.DependsOnAttribute]
		} else {
			source = th.Get(d.DependsOnThemeKey)
		}
		// The ambient background stands in for the canvas.
		if ambient != "" && d.DependsOnThemeKey == KeyCanvas {
			source = ambient
		}
		return fn(source, th.TextDark, th.TextLight)
	case d.DepKind == DepSelf && d.DependsOnThemeKey == KeyCanvas && ambient != "":
		return ambient
	}

	args := make([]string, 0, 2)
	if d.DependsOnAttribute != "" {
		args = append(args, res[d.DependsOnAttribute])
	}
	if d.DependsOnThemeKey != "" {
		args = append(args, th.Get(d.DependsOnThemeKey))
	}
	if len(args) == 0 {
		return fn("")
	}
	return fn(args[0], args[1:]...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
