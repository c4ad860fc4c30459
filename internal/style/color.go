package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// darkBrightnessThreshold splits dark from light on the 0-255 perceived
// brightness scale.
const darkBrightnessThreshold = 128

var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
	"navy":    "#000080",
	"orange":  "#ffa500",
	"yellow":  "#ffff00",
	"purple":  "#800080",
	"teal":    "#008080",
	"maroon":  "#800000",
	"olive":   "#808000",
	"fuchsia": "#ff00ff",
	"aqua":    "#00ffff",
}

// parsedColor is a color plus an optional two-digit hex alpha suffix.
type parsedColor struct {
	c     colorful.Color
	alpha string
}

// ParseColor reports whether s is a color this package understands: hex
// (#rgb, #rgba, #rrggbb, #rrggbbaa), rgb()/rgba(), transparent or a basic
// named color.
func ParseColor(s string) bool {
	_, ok := parseColor(s)
	return ok
}

func parseColor(s string) (parsedColor, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return parsedColor{}, false
	}
	if v == "transparent" {
		return parsedColor{c: colorful.Color{}, alpha: "00"}, true
	}
	if hex, ok := namedColors[v]; ok {
		v = hex
	}
	if strings.HasPrefix(v, "rgb") {
		return parseRGBFunc(v)
	}
	if !strings.HasPrefix(v, "#") {
		return parsedColor{}, false
	}

	digits := v[1:]
	switch len(digits) {
	case 3, 4:
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	case 6, 8:
	default:
		return parsedColor{}, false
	}

	c, err := colorful.Hex("#" + digits[:6])
	if err != nil {
		return parsedColor{}, false
	}
	out := parsedColor{c: c}
	if len(digits) == 8 {
		if _, err := strconv.ParseUint(digits[6:], 16, 8); err != nil {
			return parsedColor{}, false
		}
		out.alpha = digits[6:]
	}
	return out, true
}

func parseRGBFunc(v string) (parsedColor, bool) {
	open := strings.IndexByte(v, '(')
	if open < 0 || !strings.HasSuffix(v, ")") {
		return parsedColor{}, false
	}
	parts := strings.Split(v[open+1:len(v)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return parsedColor{}, false
	}
	var channels [3]float64
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return parsedColor{}, false
		}
		channels[i] = clamp01(n / 255)
	}
	out := parsedColor{c: colorful.Color{R: channels[0], G: channels[1], B: channels[2]}}
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return parsedColor{}, false
		}
		out.alpha = fmt.Sprintf("%02x", int(math.Round(clamp01(a)*255)))
	}
	return out, true
}

func (p parsedColor) hex() string {
	return strings.ToUpper(p.c.Clamped().Hex() + p.alpha)
}

// brightness is the perceived brightness on a 0-255 scale.
func (p parsedColor) brightness() float64 {
	r, g, b := p.c.Clamped().RGB255()
	return (299*float64(r) + 587*float64(g) + 114*float64(b)) / 1000
}

// ToHex normalizes a color to upper-case #RRGGBB (or #RRGGBBAA). Values that
// do not parse are returned unchanged.
func ToHex(color string) string {
	p, ok := parseColor(color)
	if !ok {
		return color
	}
	return p.hex()
}

// IsDarkColor reports whether color is perceived as dark. Unparseable values
// are treated as light.
func IsDarkColor(color string) bool {
	p, ok := parseColor(color)
	if !ok {
		return false
	}
	return p.brightness() < darkBrightnessThreshold
}

// LightenColor raises HSL lightness by amount (0-1).
func LightenColor(color string, amount float64) string {
	return shiftLightness(color, amount)
}

// DarkenColor lowers HSL lightness by amount (0-1).
func DarkenColor(color string, amount float64) string {
	return shiftLightness(color, -amount)
}

func shiftLightness(color string, delta float64) string {
	p, ok := parseColor(color)
	if !ok {
		return color
	}
	h, s, l := p.c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	p.c = colorful.Hsl(h, s, clamp01(l+delta))
	return p.hex()
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
