package style

// ThemeKey names one entry of a ThemeDetail.
type ThemeKey string

const (
	KeyPrimary        ThemeKey = "primary"
	KeyTextDark       ThemeKey = "textDark"
	KeyTextLight      ThemeKey = "textLight"
	KeyCanvas         ThemeKey = "canvas"
	KeyPrimarySurface ThemeKey = "primarySurface"
	KeyBorderRadius   ThemeKey = "borderRadius"
	KeyMargin         ThemeKey = "margin"
	KeyPadding        ThemeKey = "padding"
	KeyGridColumns    ThemeKey = "gridColumns"
	KeyTextSize       ThemeKey = "textSize"

	// Optional keys. Resolution falls back to per-kind defaults when unset.
	KeyTextWeight  ThemeKey = "textWeight"
	KeyFontFamily  ThemeKey = "fontFamily"
	KeyFontStyle   ThemeKey = "fontStyle"
	KeyBorderWidth ThemeKey = "borderWidth"
)

// ThemeDetail is the palette and sizing source of truth for resolution.
type ThemeDetail struct {
	Primary        string `yaml:"primary" json:"primary" mapstructure:"primary" validate:"required,csscolor"`
	TextDark       string `yaml:"textDark" json:"textDark" mapstructure:"textDark" validate:"required,csscolor"`
	TextLight      string `yaml:"textLight" json:"textLight" mapstructure:"textLight" validate:"required,csscolor"`
	Canvas         string `yaml:"canvas" json:"canvas" mapstructure:"canvas" validate:"required,csscolor"`
	PrimarySurface string `yaml:"primarySurface" json:"primarySurface" mapstructure:"primarySurface" validate:"required,csscolor"`
	BorderRadius   string `yaml:"borderRadius" json:"borderRadius" mapstructure:"borderRadius" validate:"required"`
	Margin         string `yaml:"margin" json:"margin" mapstructure:"margin" validate:"required"`
	Padding        string `yaml:"padding" json:"padding" mapstructure:"padding" validate:"required"`
	GridColumns    string `yaml:"gridColumns" json:"gridColumns" mapstructure:"gridColumns" validate:"required,numeric"`
	TextSize       string `yaml:"textSize" json:"textSize" mapstructure:"textSize" validate:"required"`

	TextWeight  string `yaml:"textWeight,omitempty" json:"textWeight,omitempty" mapstructure:"textWeight"`
	FontFamily  string `yaml:"fontFamily,omitempty" json:"fontFamily,omitempty" mapstructure:"fontFamily"`
	FontStyle   string `yaml:"fontStyle,omitempty" json:"fontStyle,omitempty" mapstructure:"fontStyle"`
	BorderWidth string `yaml:"borderWidth,omitempty" json:"borderWidth,omitempty" mapstructure:"borderWidth"`
}

// DefaultTheme returns the built-in palette used when no theme is supplied.
func DefaultTheme() ThemeDetail {
	return ThemeDetail{
		Primary:        "#3377FF",
		TextDark:       "#222222",
		TextLight:      "#FFFFFF",
		Canvas:         "#F5F5F6",
		PrimarySurface: "#FFFFFF",
		BorderRadius:   "4px",
		Margin:         "0px",
		Padding:        "0px",
		GridColumns:    "24",
		TextSize:       "14px",
	}
}

// Get returns the value stored under key, or "" for unknown or unset keys.
func (t ThemeDetail) Get(key ThemeKey) string {
	switch key {
	case KeyPrimary:
		return t.Primary
	case KeyTextDark:
		return t.TextDark
	case KeyTextLight:
		return t.TextLight
	case KeyCanvas:
		return t.Canvas
	case KeyPrimarySurface:
		return t.PrimarySurface
	case KeyBorderRadius:
		return t.BorderRadius
	case KeyMargin:
		return t.Margin
	case KeyPadding:
		return t.Padding
	case KeyGridColumns:
		return t.GridColumns
	case KeyTextSize:
		return t.TextSize
	case KeyTextWeight:
		return t.TextWeight
	case KeyFontFamily:
		return t.FontFamily
	case KeyFontStyle:
		return t.FontStyle
	case KeyBorderWidth:
		return t.BorderWidth
	}
	return ""
}

// Map flattens the theme into key/value pairs, skipping unset optional keys.
func (t ThemeDetail) Map() map[ThemeKey]string {
	out := make(map[ThemeKey]string, len(allThemeKeys))
	for _, key := range allThemeKeys {
		if v := t.Get(key); v != "" {
			out[key] = v
		}
	}
	return out
}

var allThemeKeys = []ThemeKey{
	KeyPrimary, KeyTextDark, KeyTextLight, KeyCanvas, KeyPrimarySurface,
	KeyBorderRadius, KeyMargin, KeyPadding, KeyGridColumns, KeyTextSize,
	KeyTextWeight, KeyFontFamily, KeyFontStyle, KeyBorderWidth,
}

// ThemeKeys lists every key a ThemeDetail understands, in display order.
func ThemeKeys() []ThemeKey {
	out := make([]ThemeKey, len(allThemeKeys))
	copy(out, allThemeKeys)
	return out
}

var themeColorKeys = map[ThemeKey]string{
	KeyPrimary:        "Primary Color",
	KeyTextDark:       "Dark Text Color",
	KeyTextLight:      "Light Text Color",
	KeyCanvas:         "Canvas Color",
	KeyPrimarySurface: "Container Color",
}

// IsThemeColorKey reports whether value is a theme color token that an
// override may use in place of a literal color.
func IsThemeColorKey(value string) bool {
	_, ok := themeColorKeys[ThemeKey(value)]
	return ok
}

// ThemeKeyDisplayName returns the human label for key.
func ThemeKeyDisplayName(key ThemeKey) string {
	if name, ok := themeColorKeys[key]; ok {
		return name
	}
	switch key {
	case KeyBorderRadius:
		return "Border Radius"
	case KeyGridColumns:
		return "Grid Columns"
	case KeyTextSize:
		return "Text Size"
	}
	return string(key)
}
