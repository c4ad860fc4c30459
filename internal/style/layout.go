package style

import (
	"fmt"
	"strconv"
	"strings"
)

// WidthCalculator returns a CSS calc() width that subtracts the horizontal
// part of a margin shorthand from 100%.
func WidthCalculator(margin string) string {
	parts := strings.Fields(margin)
	switch len(parts) {
	case 0:
		return "100%"
	case 1:
		return fmt.Sprintf("calc(100%% - %d%s)", leadingInt(parts[0])*2, cssUnit(parts[0]))
	case 2, 3:
		return fmt.Sprintf("calc(100%% - %d%s)", leadingInt(parts[1])*2, cssUnit(parts[1]))
	}
	return fmt.Sprintf("calc(100%% - %d%s - %d%s)",
		leadingInt(parts[1]), cssUnit(parts[1]),
		leadingInt(parts[3]), cssUnit(parts[3]))
}

// HeightCalculator returns a CSS calc() height that subtracts the vertical
// part of a margin shorthand from 100%.
func HeightCalculator(margin string) string {
	parts := strings.Fields(margin)
	switch len(parts) {
	case 0:
		return "100%"
	case 1, 2:
		return fmt.Sprintf("calc(100%% - %d%s)", leadingInt(parts[0])*2, cssUnit(parts[0]))
	}
	return fmt.Sprintf("calc(100%% - %d%s - %d%s)",
		leadingInt(parts[0]), cssUnit(parts[0]),
		leadingInt(parts[2]), cssUnit(parts[2]))
}

// MarginCalculator returns the total vertical margin in the shorthand's unit.
func MarginCalculator(margin string) int {
	parts := strings.Fields(margin)
	switch len(parts) {
	case 0:
		return 0
	case 1, 2:
		return leadingInt(parts[0]) * 2
	}
	return leadingInt(parts[0]) + leadingInt(parts[2])
}

// leadingInt keeps digits and dots, then parses the integer prefix, so
// "12.5px" yields 12 and "auto" yields 0.
func leadingInt(v string) int {
	var b strings.Builder
	for _, r := range v {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	end := 0
	for end < len(digits) && digits[end] >= '0' && digits[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(digits[:end])
	if err != nil {
		return 0
	}
	return n
}

func cssUnit(v string) string {
	unit := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return -1
		}
		return r
	}, v)
	if unit == "" {
		return "px"
	}
	return unit
}
