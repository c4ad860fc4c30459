package theme

import "swatch/internal/style"

// palette is the color half of a ThemeDetail. Sizes come from the default.
type palette struct {
	Primary   string
	TextDark  string
	TextLight string
	Canvas    string
	Surface   string
}

func (p palette) detail() style.ThemeDetail {
	d := style.DefaultTheme()
	d.Primary = p.Primary
	d.TextDark = p.TextDark
	d.TextLight = p.TextLight
	d.Canvas = p.Canvas
	d.PrimarySurface = p.Surface
	return d
}

var palettes = map[string]palette{
	DefaultName: {
		Primary: "#3377FF", TextDark: "#222222", TextLight: "#FFFFFF",
		Canvas: "#F5F5F6", Surface: "#FFFFFF",
	},
	// https://draculatheme.com/contribute
	"dracula": {
		Primary: "#BD93F9", TextDark: "#21222C", TextLight: "#F8F8F2",
		Canvas: "#282A36", Surface: "#44475A",
	},
	"nord": {
		Primary: "#5E81AC", TextDark: "#2E3440", TextLight: "#ECEFF4",
		Canvas: "#E5E9F0", Surface: "#ECEFF4",
	},
	"nord-dark": {
		Primary: "#88C0D0", TextDark: "#2E3440", TextLight: "#ECEFF4",
		Canvas: "#2E3440", Surface: "#3B4252",
	},
	"catppuccin": {
		Primary: "#89B4FA", TextDark: "#11111B", TextLight: "#CDD6F4",
		Canvas: "#1E1E2E", Surface: "#313244",
	},
	"catppuccin-latte": {
		Primary: "#1E66F5", TextDark: "#4C4F69", TextLight: "#EFF1F5",
		Canvas: "#E6E9EF", Surface: "#EFF1F5",
	},
	"gruvbox": {
		Primary: "#83A598", TextDark: "#1D2021", TextLight: "#EBDBB2",
		Canvas: "#282828", Surface: "#3C3836",
	},
	"solarized": {
		Primary: "#268BD2", TextDark: "#073642", TextLight: "#FDF6E3",
		Canvas: "#EEE8D5", Surface: "#FDF6E3",
	},
	"solarized-dark": {
		Primary: "#268BD2", TextDark: "#002B36", TextLight: "#EEE8D5",
		Canvas: "#002B36", Surface: "#073642",
	},
	"tokyonight": {
		Primary: "#82AAFF", TextDark: "#1A1B26", TextLight: "#C0CAF5",
		Canvas: "#1A1B26", Surface: "#24283B",
	},
	"onedark": {
		Primary: "#61AFEF", TextDark: "#21252B", TextLight: "#ABB2BF",
		Canvas: "#282C34", Surface: "#2C313A",
	},
	"github": {
		Primary: "#0969DA", TextDark: "#24292F", TextLight: "#FFFFFF",
		Canvas: "#F6F8FA", Surface: "#FFFFFF",
	},
	"github-dark": {
		Primary: "#58A6FF", TextDark: "#010409", TextLight: "#C9D1D9",
		Canvas: "#0D1117", Surface: "#161B22",
	},
	"rosepine": {
		Primary: "#9CCFD8", TextDark: "#191724", TextLight: "#E0DEF4",
		Canvas: "#191724", Surface: "#1F1D2E",
	},
	"rosepine-dawn": {
		Primary: "#31748F", TextDark: "#575279", TextLight: "#FFFAF3",
		Canvas: "#FAF4ED", Surface: "#FFFAF3",
	},
	"everforest": {
		Primary: "#A7C080", TextDark: "#2D353B", TextLight: "#D3C6AA",
		Canvas: "#2D353B", Surface: "#333C43",
	},
	"kanagawa": {
		Primary: "#7E9CD8", TextDark: "#1F1F28", TextLight: "#DCD7BA",
		Canvas: "#1F1F28", Surface: "#2A2A37",
	},
	"monokai": {
		Primary: "#78DCE8", TextDark: "#19181A", TextLight: "#FCFCFA",
		Canvas: "#2D2A2E", Surface: "#403E41",
	},
}
