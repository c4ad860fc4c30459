package style

import "strings"

const (
	SurfaceColor       = "#FFFFFF"
	SecondSurfaceColor = "#D7D9E0"
	ErrorColor         = "#F5222D"
	SuccessColor       = "#079968"

	transparentBlack = "#00000000"
)

func arg(rest []string, i int) string {
	if i < len(rest) {
		return rest[i]
	}
	return ""
}

// ToSelf returns its input unchanged.
func ToSelf(color string, _ ...string) string {
	return color
}

// ContrastText picks the light text color (rest[1]) over dark backgrounds and
// the dark text color (rest[0]) otherwise. Transparent black counts as light.
func ContrastText(color string, rest ...string) string {
	textDark, textLight := arg(rest, 0), arg(rest, 1)
	if IsDarkColor(color) && ToHex(color) != transparentBlack {
		return textLight
	}
	return textDark
}

// ContrastBackground returns a nearby background: lighter for dark colors,
// darker for light ones.
func ContrastBackground(color string, amount float64) string {
	if IsDarkColor(color) {
		return LightenColor(color, amount)
	}
	return DarkenColor(color, amount)
}

// ContrastColor returns a clearly distinguishable variant of color.
func ContrastColor(color string, _ ...string) string {
	if IsDarkColor(color) {
		return LightenColor(color, 0.2)
	}
	return DarkenColor(color, 0.1)
}

// BackgroundToBorder derives a border from a background color.
func BackgroundToBorder(color string, _ ...string) string {
	if ToHex(color) == SurfaceColor {
		return SecondSurfaceColor
	}
	return DarkenColor(color, 0.03)
}

// CalendarBackgroundToBorder derives a calendar border from its background.
func CalendarBackgroundToBorder(color string, _ ...string) string {
	if ToHex(color) == SurfaceColor {
		return SecondSurfaceColor
	}
	return DarkenColor(color, 0.12)
}

// HandleToUnchecked derives a switch's unchecked track from its handle.
func HandleToUnchecked(color string, _ ...string) string {
	if ToHex(color) == SurfaceColor {
		return SecondSurfaceColor
	}
	return ContrastBackground(color, 0.05)
}

// HandleToSegmentBackground derives a segmented control background.
func HandleToSegmentBackground(color string, _ ...string) string {
	if ToHex(color) == SurfaceColor {
		return "#E1E3EB"
	}
	return ContrastBackground(color, 0.05)
}

// HandleToHoverRow returns a translucent row hover tint.
func HandleToHoverRow(color string, _ ...string) string {
	if IsDarkColor(color) {
		return "#FFFFFF23"
	}
	return "#00000007"
}

// HandleToHoverLink returns the translucent tint used for link hover and
// active text.
func HandleToHoverLink(color string, _ ...string) string {
	if IsDarkColor(color) {
		return "#FFFFFF23"
	}
	return "#00000007"
}

// HandleToSelectedRow returns the selected-row tint. On the plain surface the
// tint is derived from the primary color (rest[0], default theme primary).
func HandleToSelectedRow(color string, rest ...string) string {
	primary := arg(rest, 0)
	if primary == "" {
		primary = DefaultTheme().Primary
	}
	switch {
	case ToHex(color) == SurfaceColor:
		hex := ToHex(primary)
		if len(hex) > 7 {
			hex = hex[:7]
		}
		return hex + "16"
	case IsDarkColor(color):
		return "#FFFFFF33"
	}
	return "#00000011"
}

// HandleToHeadBg derives a table header background.
func HandleToHeadBg(color string, _ ...string) string {
	hex := ToHex(color)
	switch {
	case hex == SurfaceColor:
		return DarkenColor(color, 0.06)
	case hex == "#000000":
		return SecondSurfaceColor
	case IsDarkColor(color):
		return DarkenColor(color, 0.06)
	}
	return LightenColor(color, 0.015)
}

// HandleToDividerText derives divider text from the divider color.
func HandleToDividerText(color string, _ ...string) string {
	return DarkenColor(color, 0.4)
}

// HandleCalendarSelectColor returns a translucent lightened selection color.
func HandleCalendarSelectColor(color string, _ ...string) string {
	out := LightenColor(color, 0.3)
	if len(out) > 7 && strings.HasPrefix(out, "#") {
		out = out[:7]
	}
	return out + "4C"
}

// HandleLightenColor lightens by a fixed step.
func HandleLightenColor(color string, _ ...string) string {
	return LightenColor(color, 0.1)
}

// HandleToCalendarHeadSelectBg derives the calendar header button selection.
func HandleToCalendarHeadSelectBg(color string, _ ...string) string {
	if ToHex(color) == SurfaceColor {
		return "#E1E3EB"
	}
	return ContrastBackground(color, 0.15)
}

// HandleToCalendarToday returns the translucent "today" highlight.
func HandleToCalendarToday(color string, _ ...string) string {
	if IsDarkColor(color) {
		return "#FFFFFF33"
	}
	return "#0000000C"
}

// HandleCalendarText picks calendar text for a background, softening the dark
// text color on light backgrounds.
func HandleCalendarText(color string, rest ...string) string {
	textDark, textLight := arg(rest, 0), arg(rest, 1)
	if IsDarkColor(color) {
		return textLight
	}
	return LightenColor(textDark, 0.1)
}
