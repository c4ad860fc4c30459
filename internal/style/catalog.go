package style

import (
	"sort"
	"strings"
)

var (
	text        = ContrastOn("text", "Text", "background")
	staticText  = ContrastOnTheme("staticText", "Static Text", KeyCanvas)
	label       = ContrastOnTheme("label", "Label", KeyCanvas)
	accent      = SelfTheme("accent", "Accent", KeyPrimary).On(PlatformPC)
	validate    = Literal("validate", "Validation Message", ErrorColor)
	border      = Derived("border", "Border Color", "background", BackgroundToBorder)
	radius      = Property(KindRadius, "radius", "Border Radius", KeyBorderRadius)
	borderWidth = Property(KindBorderWidth, "borderWidth", "Border Width", KeyBorderWidth)
	borderStyle = Property(KindBorderStyle, "borderStyle", "Border Style", "")
	margin      = Property(KindMargin, "margin", "Margin", KeyMargin)
	padding     = Property(KindPadding, "padding", "Padding", KeyPadding)
	textSize    = Property(KindTextSize, "textSize", "Text Size", KeyTextSize)
	textWeight  = Property(KindTextWeight, "textWeight", "Text Weight", KeyTextWeight)
	fontFamily  = Property(KindFontFamily, "fontFamily", "Font Family", KeyFontFamily)
	fontStyle   = Property(KindFontStyle, "fontStyle", "Font Style", KeyFontStyle)
	textXform   = Property(KindTextTransform, "textTransform", "Text Transform", "")
	textDecor   = Property(KindTextDecoration, "textDecoration", "Text Decoration", "")
	hoverBg     = ThemeColor("hoverBackground", "Hover Background", "")
	fill        = SelfTheme("fill", "Fill", KeyPrimary)
	track       = Literal("track", "Track", SecondSurfaceColor)
	success     = Literal("success", "Success", SuccessColor)

	containerHeaderPadding = Property(KindPadding, "containerHeaderPadding", "Header Padding", KeyPadding)
	containerBodyPadding   = Property(KindPadding, "containerBodyPadding", "Body Padding", KeyPadding)
	containerFooterPadding = Property(KindPadding, "containerFooterPadding", "Footer Padding", KeyPadding)
)

// stylingFields is the shared text, border and spacing block most widgets use.
func stylingFields() []Descriptor {
	return []Descriptor{
		text, textXform, textDecor, textSize, textWeight, fontFamily, fontStyle,
		border, margin, padding, radius, borderWidth,
	}
}

func accentValidate() []Descriptor {
	return []Descriptor{accent, validate}
}

func background(key ThemeKey) Descriptor {
	return SelfTheme("background", "Background", key)
}

func staticBackground(color string) Descriptor {
	return Literal("background", "Background", color)
}

func staticBorder(color string) Descriptor {
	return Literal("border", "Border Color", color)
}

func staticBgBorderRadius(bg string, p Platform) []Descriptor {
	return onPlatform(p, staticBackground(bg), border, radius)
}

// backgroundImageFields returns the five background-image axes for a region.
func backgroundImageFields(region Region) []Descriptor {
	prefix := "backgroundImage"
	switch region {
	case RegionHeader:
		prefix = "headerBackgroundImage"
	case RegionFooter:
		prefix = "footerBackgroundImage"
	}
	return []Descriptor{
		BackgroundImage(KindBackgroundImage, region, prefix, "Background Image"),
		BackgroundImage(KindBackgroundImageRepeat, region, prefix+"Repeat", "Background Image Repeat"),
		BackgroundImage(KindBackgroundImageSize, region, prefix+"Size", "Background Image Size"),
		BackgroundImage(KindBackgroundImagePosition, region, prefix+"Position", "Background Image Position"),
		BackgroundImage(KindBackgroundImageOrigin, region, prefix+"Origin", "Background Image Origin"),
	}
}

func checkAndUncheck() []Descriptor {
	return []Descriptor{
		SelfTheme("checkedBackground", "Checked Background", KeyPrimary),
		Literal("uncheckedBackground", "Unchecked Background", SurfaceColor),
		Derived("uncheckedBorder", "Unchecked Border", "uncheckedBackground", BackgroundToBorder),
	}
}

func multiSelectCommon() []Descriptor {
	return seq(
		replaceAndMerge(without(stylingFields(), "radius"), "border", staticBgBorderRadius(SurfaceColor, PlatformPC)...),
		[]Descriptor{
			Literal("tags", "Tags", "#F5F5F6").On(PlatformPC),
			ContrastOn("tagsText", "Tags Text", "tags").On(PlatformPC),
		},
	)
}

func containerStyle() []Descriptor {
	return seq(
		[]Descriptor{staticBorder(SecondSurfaceColor), background(KeyPrimarySurface), radius, borderWidth, borderStyle, margin, padding},
		backgroundImageFields(RegionBody),
	)
}

func progressStyle() []Descriptor {
	return seq(
		without(
			replaceAndMerge(stylingFields(), "text", ContrastOnTheme("text", "Text", KeyCanvas)),
			"border", "borderWidth", "textTransform", "textDecoration",
		),
		[]Descriptor{track, fill, success},
	)
}

func buildCatalog() map[string]Sheet {
	sheets := []Sheet{
		{Name: "Button", Descriptors: seq([]Descriptor{background(KeyPrimary)}, stylingFields())},
		{Name: "ToggleButton", Descriptors: seq(
			[]Descriptor{background(KeyCanvas)},
			mapNamed(stylingFields(), Descriptor.AsSelf, "border"),
		)},
		{Name: "Text", Descriptors: seq(
			[]Descriptor{background(KeyCanvas)},
			stylingFields(),
			[]Descriptor{SelfTheme("links", "Links", KeyPrimary)},
		)},
		{Name: "Margin", Descriptors: []Descriptor{margin}},
		{Name: "Container", Descriptors: containerStyle()},
		{Name: "ContainerHeader", Descriptors: seq(
			[]Descriptor{containerHeaderPadding, SelfTheme("headerBackground", "Header Background", KeyPrimarySurface)},
			backgroundImageFields(RegionHeader),
		)},
		{Name: "ContainerBody", Descriptors: seq(
			[]Descriptor{containerBodyPadding, background(KeyPrimarySurface)},
			backgroundImageFields(RegionBody),
		)},
		{Name: "ContainerFooter", Descriptors: seq(
			[]Descriptor{containerFooterPadding, SelfTheme("footerBackground", "Footer Background", KeyPrimarySurface)},
			backgroundImageFields(RegionFooter),
		)},
		{Name: "Slider", Descriptors: []Descriptor{
			label, fill,
			SelfAttribute("thumbBorder", "Thumb Border", "fill"),
			Literal("thumb", "Thumb", SurfaceColor),
			track, margin, padding,
		}},
		{Name: "InputLike", Descriptors: seq(
			[]Descriptor{label, staticBackground(SurfaceColor)},
			stylingFields(),
			accentValidate(),
		)},
		{Name: "ColorPicker", Descriptors: seq(
			[]Descriptor{label, staticBackground(SurfaceColor)},
			stylingFields(),
			accentValidate(),
		)},
		{Name: "Rating", Descriptors: []Descriptor{
			label,
			Literal("checked", "Checked", "#FFD400"),
			Literal("unchecked", "Unchecked", SecondSurfaceColor),
			margin, padding,
		}},
		{Name: "Switch", Descriptors: []Descriptor{
			label,
			Literal("handle", "Handle", SurfaceColor),
			Derived("unchecked", "Unchecked", "handle", HandleToUnchecked),
			SelfTheme("checked", "Checked", KeyPrimary),
			margin, padding,
		}},
		{Name: "Select", Descriptors: seq(
			replaceAndMerge(without(stylingFields(), "radius"), "border", staticBgBorderRadius(SurfaceColor, PlatformPC)...),
			accentValidate(),
		)},
		{Name: "MultiSelect", Descriptors: seq(
			multiSelectCommon(),
			[]Descriptor{SelfTheme("multiIcon", "Multi-select Icon", KeyPrimary).On(PlatformPC)},
			accentValidate(),
		)},
		{Name: "TreeSelect", Descriptors: seq(multiSelectCommon(), accentValidate())},
		{
			Name: "Modal",
			Descriptors: seq(
				[]Descriptor{background(KeyPrimarySurface), border, radius, padding, borderWidth, margin},
				backgroundImageFields(RegionBody),
			),
			Defaults: Overrides{"padding": "20px 30px"},
		},
		{Name: "Cascader", Descriptors: seq(
			[]Descriptor{label},
			staticBgBorderRadius(SurfaceColor, PlatformPC),
			[]Descriptor{text, accent, margin, padding},
		)},
		{Name: "Checkbox", Descriptors: seq(
			without(replaceAndMerge(stylingFields(), "text", label, staticText, validate), "border"),
			checkAndUncheck(),
			[]Descriptor{ContrastOn("checked", "Checked", "checkedBackground"), hoverBg},
		)},
		{Name: "Radio", Descriptors: seq(
			without(replaceAndMerge(stylingFields(), "text", label, staticText, validate), "border", "radius"),
			checkAndUncheck(),
			[]Descriptor{SelfAttribute("checked", "Checked", "uncheckedBackground"), hoverBg},
		)},
		{Name: "Segment", Descriptors: seq(
			[]Descriptor{label},
			without(stylingFields(), "border", "borderWidth", "text"),
			[]Descriptor{
				Literal("indicatorBackground", "Indicator Background", SurfaceColor),
				Derived("background", "Background", "indicatorBackground", HandleToSegmentBackground),
				ContrastOn("text", "Text", "indicatorBackground"),
				validate,
			},
		)},
		{Name: "Progress", Descriptors: progressStyle()},
		{Name: "CircleProgress", Descriptors: without(progressStyle(), "radius")},
		{Name: "Link", Descriptors: seq(
			[]Descriptor{background(KeyCanvas)},
			replaceAndMerge(stylingFields(), "text",
				SelfTheme("text", "Text", KeyPrimary),
				Derived("hoverText", "Hover Text", "text", HandleToHoverLink),
				Derived("activeText", "Active Text", "text", HandleToHoverLink),
			),
		)},
		{Name: "Divider", Descriptors: seq(
			[]Descriptor{Literal("color", "Color", LightenColor(SecondSurfaceColor, 0.05))},
			mapNamed(
				without(replaceAndMerge(stylingFields(), "text", Derived("text", "Text", "color", HandleToDividerText)), "border"),
				func(d Descriptor) Descriptor { return d.WithDefault("1px") },
				"borderWidth",
			),
		)},
		{Name: "Image", Descriptors: []Descriptor{staticBorder("#00000000"), radius, borderWidth, margin, padding}},
		{Name: "Iframe", Descriptors: []Descriptor{background(KeyPrimarySurface), staticBorder("#00000000"), radius, borderWidth, margin, padding}},
		{Name: "Drawer", Descriptors: []Descriptor{background(KeyPrimarySurface)}},
		{Name: "Carousel", Descriptors: []Descriptor{background(KeyCanvas)}},
		{Name: "RichTextEditor", Descriptors: []Descriptor{staticBorder(SecondSurfaceColor), background(KeyPrimarySurface), radius, borderWidth}},
		{Name: "Timer", Descriptors: []Descriptor{
			background(KeyPrimarySurface), border, radius,
			Literal("fontColor", "Font Color", "#000000"),
		}},
		{Name: "Steps", Descriptors: []Descriptor{background(KeyPrimarySurface), border, radius, padding}},
		{Name: "NavLayoutItemHover", Descriptors: []Descriptor{background(KeyCanvas), staticBorder("transparent"), text}},
		{Name: "NavLayoutItemActive", Descriptors: []Descriptor{background(KeyPrimary), staticBorder("transparent"), text}},
		{Name: "AvatarGroup", Descriptors: []Descriptor{Literal("fill", "Fill", "#FFFFFF"), background(KeyPrimary)}},
		{Name: "Calendar", Descriptors: []Descriptor{
			background(KeyPrimarySurface),
			Derived("border", "Border Color", "background", CalendarBackgroundToBorder),
			radius,
			{
				Name: "text", Label: "Text", Kind: KindDependent,
				DependsOnAttribute: "background", DepKind: DepContrastText, Transform: HandleCalendarText,
			},
			Derived("headerBtnBackground", "Header Button Background", "background", HandleLightenColor),
			ContrastOn("btnText", "Button Text", "headerBtnBackground"),
			ContrastOn("title", "Title", "background"),
			DerivedFromTheme("selectBackground", "Select Background", KeyPrimary, HandleCalendarSelectColor),
		}},
		{Name: "TableRow", Descriptors: []Descriptor{
			staticBackground(SurfaceColor),
			{
				Name: "selectedRowBackground", Label: "Selected Row Background", Kind: KindDependent,
				DependsOnAttribute: "background", DependsOnThemeKey: KeyPrimary, Transform: HandleToSelectedRow,
			},
			Derived("hoverRowBackground", "Hover Row Background", "background", HandleToHoverRow),
			SelfAttribute("alternateBackground", "Alternate Background", "background"),
		}},
		{Name: "TableHeader", Descriptors: []Descriptor{
			staticBackground(SurfaceColor),
			Derived("headerBackground", "Header Background", "background", HandleToHeadBg),
			borderWidth.WithDefault("1px"),
			ContrastOn("headerText", "Header Text", "headerBackground"),
			textSize, textWeight, fontFamily, fontStyle,
		}},
	}

	out := make(map[string]Sheet, len(sheets))
	for _, s := range sheets {
		out[strings.ToLower(s.Name)] = s
	}
	return out
}

var catalog = buildCatalog()

// Sheets lists catalog sheet names in sorted order.
func Sheets() []string {
	names := make([]string, 0, len(catalog))
	for _, s := range catalog {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names
}

// LookupSheet finds a catalog sheet by case-insensitive name. The returned
// sheet owns its descriptor slice.
func LookupSheet(name string) (Sheet, bool) {
	s, ok := catalog[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Sheet{}, false
	}
	s.Descriptors = seq(s.Descriptors)
	if s.Defaults != nil {
		defaults := make(Overrides, len(s.Defaults))
		for k, v := range s.Defaults {
			defaults[k] = v
		}
		s.Defaults = defaults
	}
	return s, true
}
