// Package style resolves declarative widget style sheets into CSS-ready values.
//
// A style sheet is a static list of Descriptors. Resolve combines a sheet with
// user overrides, a theme and the background color of the enclosing container
// into one string per descriptor.
package style

// Kind selects how a descriptor is resolved.
type Kind int

const (
	// KindColor is a literal color with a static default.
	KindColor Kind = iota
	// KindDependent derives its value from another attribute or a theme key.
	KindDependent
	// KindThemeColor is a color whose default is read from a theme key.
	KindThemeColor

	// Pass-through kinds. A non-empty override is always used verbatim.
	KindRadius
	KindBorderWidth
	KindBorderStyle
	KindMargin
	KindPadding
	KindTextSize
	KindTextWeight
	KindFontFamily
	KindFontStyle
	KindTextTransform
	KindTextDecoration
	KindBackgroundImage
	KindBackgroundImageRepeat
	KindBackgroundImageSize
	KindBackgroundImagePosition
	KindBackgroundImageOrigin

	kindCount
)

var kindNames = [...]string{
	KindColor:                   "color",
	KindDependent:               "dependent",
	KindThemeColor:              "theme-color",
	KindRadius:                  "radius",
	KindBorderWidth:             "border-width",
	KindBorderStyle:             "border-style",
	KindMargin:                  "margin",
	KindPadding:                 "padding",
	KindTextSize:                "text-size",
	KindTextWeight:              "text-weight",
	KindFontFamily:              "font-family",
	KindFontStyle:               "font-style",
	KindTextTransform:           "text-transform",
	KindTextDecoration:          "text-decoration",
	KindBackgroundImage:         "background-image",
	KindBackgroundImageRepeat:   "background-image-repeat",
	KindBackgroundImageSize:     "background-image-size",
	KindBackgroundImagePosition: "background-image-position",
	KindBackgroundImageOrigin:   "background-image-origin",
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return "unknown"
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= KindColor && k < kindCount
}

// PassThrough reports whether overrides of this kind bypass color handling.
func (k Kind) PassThrough() bool {
	return k >= KindRadius && k < kindCount
}

// Region distinguishes the body, header and footer variants of the
// background-image kinds.
type Region int

const (
	RegionBody Region = iota
	RegionHeader
	RegionFooter
)

func (r Region) String() string {
	switch r {
	case RegionHeader:
		return "header"
	case RegionFooter:
		return "footer"
	}
	return "body"
}

// Platform restricts where a descriptor is shown in the property panel.
type Platform string

const (
	PlatformAll    Platform = ""
	PlatformPC     Platform = "pc"
	PlatformMobile Platform = "mobile"
)

// DepKind selects the pass-two rule for dependent descriptors.
type DepKind int

const (
	DepNone DepKind = iota
	DepContrastText
	DepSelf
)

func (d DepKind) String() string {
	switch d {
	case DepContrastText:
		return "contrastText"
	case DepSelf:
		return "toSelf"
	}
	return "none"
}

// Transform derives a value from a primary input and optional auxiliary inputs.
type Transform func(primary string, rest ...string) string

// Descriptor specifies one style attribute of a sheet.
type Descriptor struct {
	Name         string
	Label        string
	Platform     Platform
	DefaultValue string

	Kind   Kind
	Region Region

	// Color is the static default of KindColor descriptors.
	Color string
	// ThemeKey is the theme entry consulted by pass-through and theme-color kinds.
	ThemeKey ThemeKey

	DependsOnAttribute string
	DependsOnThemeKey  ThemeKey
	DepKind            DepKind
	Transform          Transform
}

// Literal builds a color descriptor with a static default.
func Literal(name, label, color string) Descriptor {
	return Descriptor{Name: name, Label: label, Kind: KindColor, Color: color}
}

// ThemeColor builds a color descriptor that defaults to a theme entry.
func ThemeColor(name, label string, key ThemeKey) Descriptor {
	return Descriptor{Name: name, Label: label, Kind: KindThemeColor, ThemeKey: key}
}

// SelfTheme builds a dependent descriptor that copies a theme entry.
func SelfTheme(name, label string, key ThemeKey) Descriptor {
	return Descriptor{
		Name:              name,
		Label:             label,
		Kind:              KindDependent,
		DependsOnThemeKey: key,
		DepKind:           DepSelf,
		Transform:         ToSelf,
	}
}

// SelfAttribute builds a dependent descriptor that copies another attribute.
func SelfAttribute(name, label, attr string) Descriptor {
	return Descriptor{
		Name:               name,
		Label:              label,
		Kind:               KindDependent,
		DependsOnAttribute: attr,
		DepKind:            DepSelf,
		Transform:          ToSelf,
	}
}

// ContrastOn builds a text color that contrasts with another attribute.
func ContrastOn(name, label, attr string) Descriptor {
	return Descriptor{
		Name:               name,
		Label:              label,
		Kind:               KindDependent,
		DependsOnAttribute: attr,
		DepKind:            DepContrastText,
		Transform:          ContrastText,
	}
}

// ContrastOnTheme builds a text color that contrasts with a theme entry.
func ContrastOnTheme(name, label string, key ThemeKey) Descriptor {
	return Descriptor{
		Name:              name,
		Label:             label,
		Kind:              KindDependent,
		DependsOnThemeKey: key,
		DepKind:           DepContrastText,
		Transform:         ContrastText,
	}
}

// Derived builds a dependent descriptor computed from another attribute.
func Derived(name, label, attr string, fn Transform) Descriptor {
	return Descriptor{
		Name:               name,
		Label:              label,
		Kind:               KindDependent,
		DependsOnAttribute: attr,
		Transform:          fn,
	}
}

// DerivedFromTheme builds a dependent descriptor computed from a theme entry.
func DerivedFromTheme(name, label string, key ThemeKey, fn Transform) Descriptor {
	return Descriptor{
		Name:              name,
		Label:             label,
		Kind:              KindDependent,
		DependsOnThemeKey: key,
		Transform:         fn,
	}
}

// Property builds a pass-through descriptor backed by an optional theme key.
func Property(kind Kind, name, label string, key ThemeKey) Descriptor {
	return Descriptor{Name: name, Label: label, Kind: kind, ThemeKey: key}
}

// BackgroundImage builds one background-image axis for a region.
func BackgroundImage(kind Kind, region Region, name, label string) Descriptor {
	return Descriptor{Name: name, Label: label, Kind: kind, Region: region}
}

// On restricts the descriptor to a platform.
func (d Descriptor) On(p Platform) Descriptor {
	d.Platform = p
	return d
}

// WithDefault sets the fallback used when neither override nor theme applies.
func (d Descriptor) WithDefault(v string) Descriptor {
	d.DefaultValue = v
	return d
}

// Renamed returns a copy with a different name and label.
func (d Descriptor) Renamed(name, label string) Descriptor {
	d.Name = name
	if label != "" {
		d.Label = label
	}
	return d
}

// AsSelf turns a dependent descriptor into a self reference of its source.
func (d Descriptor) AsSelf() Descriptor {
	d.Kind = KindDependent
	d.DepKind = DepSelf
	d.Transform = ToSelf
	return d
}

// IsDependent reports whether the descriptor is resolved in the second pass.
func (d Descriptor) IsDependent() bool {
	return d.Kind == KindDependent
}
