package style

import "testing"

func TestToHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "#fff", want: "#FFFFFF"},
		{in: "#3377ff", want: "#3377FF"},
		{in: "#0f08", want: "#00FF0088"},
		{in: "rgb(255, 0, 0)", want: "#FF0000"},
		{in: "rgba(0,0,0,0)", want: "#00000000"},
		{in: "transparent", want: "#00000000"},
		{in: "navy", want: "#000080"},
		{in: "not-a-color", want: "not-a-color"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		if got := ToHex(tt.in); got != tt.want {
			t.Errorf("ToHex(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsDarkColor(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "#000000", want: true},
		{in: "#3377FF", want: true},
		{in: "#808080", want: false},
		{in: "#FFFFFF", want: false},
		{in: "#F5F5F6", want: false},
		{in: "garbage", want: false},
	}
	for _, tt := range tests {
		if got := IsDarkColor(tt.in); got != tt.want {
			t.Errorf("IsDarkColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLightenDarken(t *testing.T) {
	if got := LightenColor("#000000", 0.5); got != "#808080" {
		t.Fatalf("LightenColor = %q", got)
	}
	if got := DarkenColor("#FFFFFF", 0.5); got != "#808080" {
		t.Fatalf("DarkenColor = %q", got)
	}
	if got := LightenColor("#FFFFFF", 0.3); got != "#FFFFFF" {
		t.Fatalf("lightening white should clamp, got %q", got)
	}
	if got := DarkenColor("oops", 0.1); got != "oops" {
		t.Fatalf("unparseable input should pass through, got %q", got)
	}
}

func TestParseColor(t *testing.T) {
	for _, ok := range []string{"#abc", "#AABBCC", "#AABBCC80", "rgb(1,2,3)", "rgba(1,2,3,0.5)", "white", "transparent"} {
		if !ParseColor(ok) {
			t.Errorf("ParseColor(%q) = false", ok)
		}
	}
	for _, bad := range []string{"", "#ab", "#GGGGGG", "rgb(1,2)", "primary", "10px"} {
		if ParseColor(bad) {
			t.Errorf("ParseColor(%q) = true", bad)
		}
	}
}

func TestTransforms(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "border on surface", got: BackgroundToBorder("#fff"), want: SecondSurfaceColor},
		{name: "calendar border on surface", got: CalendarBackgroundToBorder("#FFFFFF"), want: SecondSurfaceColor},
		{name: "unchecked on white handle", got: HandleToUnchecked("#FFFFFF"), want: SecondSurfaceColor},
		{name: "segment on surface", got: HandleToSegmentBackground("#FFFFFF"), want: "#E1E3EB"},
		{name: "hover row dark", got: HandleToHoverRow("#000000"), want: "#FFFFFF23"},
		{name: "hover link dark", got: HandleToHoverLink("#3377FF"), want: "#FFFFFF23"},
		{name: "hover link light", got: HandleToHoverLink("#FFFFFF"), want: "#00000007"},
		{name: "selected row dark", got: HandleToSelectedRow("#101010", "#3377FF"), want: "#FFFFFF33"},
		{name: "selected row light", got: HandleToSelectedRow("#EEEEEE", "#3377FF"), want: "#00000011"},
		{name: "selected row default primary", got: HandleToSelectedRow("#FFFFFF"), want: "#3377FF16"},
		{name: "head bg on black", got: HandleToHeadBg("#000000"), want: SecondSurfaceColor},
		{name: "calendar today light", got: HandleToCalendarToday("#FFFFFF"), want: "#0000000C"},
		{name: "calendar head select on surface", got: HandleToCalendarHeadSelectBg("#FFFFFF"), want: "#E1E3EB"},
		{name: "calendar text on dark", got: HandleCalendarText("#000000", "#222222", "#FFFFFF"), want: "#FFFFFF"},
		{name: "to self", got: ToSelf("#123456", "ignored"), want: "#123456"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestHandleCalendarSelectColorIsTranslucent(t *testing.T) {
	got := HandleCalendarSelectColor("#3377FF")
	if len(got) != 9 || got[7:] != "4C" {
		t.Fatalf("HandleCalendarSelectColor = %q, want #RRGGBB4C", got)
	}
}

func TestContrastColorMovesAwayFromInput(t *testing.T) {
	if got := ContrastColor("#000000"); got == "#000000" {
		t.Fatalf("ContrastColor(black) = %q", got)
	}
	if got := ContrastColor("#FFFFFF"); got == "#FFFFFF" {
		t.Fatalf("ContrastColor(white) = %q", got)
	}
}
