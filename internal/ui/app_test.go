package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	appErrors "swatch/internal/errors"
	"swatch/internal/style"
	"swatch/internal/theme"
)

type fakeStore struct {
	widget    string
	sheet     string
	overrides style.Overrides
	err       error
}

func (f *fakeStore) Save(_ context.Context, widget, sheet string, overrides style.Overrides) error {
	f.widget, f.sheet, f.overrides = widget, sheet, overrides
	return f.err
}

type harness struct {
	app       *App
	copied    string
	themes    []string
	platforms []string
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	if opts.Sheet == "" {
		opts.Sheet = "Checkbox"
	}
	app, err := NewApp(opts)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	h := &harness{app: app}
	app.copyText = func(s string) error {
		h.copied = s
		return nil
	}
	app.saveTheme = func(name string) error {
		h.themes = append(h.themes, name)
		return nil
	}
	app.savePlatform = func(p string) error {
		h.platforms = append(h.platforms, p)
		return nil
	}
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	_, cmd := h.app.Update(msg)
	return cmd
}

func (h *harness) typeText(s string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (h *harness) selectRow(t *testing.T, name string) {
	t.Helper()
	for i, row := range h.app.rows {
		if row.Name == name {
			h.app.cursor = i
			return
		}
	}
	t.Fatalf("row %q not visible", name)
}

func TestNewAppRejectsUnknownSheetAndTheme(t *testing.T) {
	if _, err := NewApp(Options{Sheet: "Nope"}); !appErrors.IsCode(err, appErrors.CodeUnknownSheet) {
		t.Fatalf("unknown sheet error = %v", err)
	}
	if _, err := NewApp(Options{Sheet: "Checkbox", Theme: "nope"}); !appErrors.IsCode(err, appErrors.CodeUnknownTheme) {
		t.Fatalf("unknown theme error = %v", err)
	}
}

func TestNewAppCopiesInitialOverrides(t *testing.T) {
	initial := style.Overrides{"checkedBackground": "#000000"}
	h := newHarness(t, Options{Overrides: initial})
	h.app.overrides["checkedBackground"] = "#111111"
	if initial["checkedBackground"] != "#000000" {
		t.Fatal("app mutated caller overrides")
	}
}

func TestEditCommitsOverrideAndRecomputesDependents(t *testing.T) {
	h := newHarness(t, Options{})
	th := style.DefaultTheme()

	h.selectRow(t, "checkedBackground")
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	if !h.app.editing {
		t.Fatal("enter should start editing")
	}
	h.typeText("#FFFFFF")
	h.send(tea.KeyMsg{Type: tea.KeyEnter})

	if h.app.editing {
		t.Fatal("enter should commit the edit")
	}
	if got := h.app.Resolved()["checkedBackground"]; got != "#FFFFFF" {
		t.Fatalf("checkedBackground = %q", got)
	}
	if got := h.app.Resolved()["checked"]; got != th.TextDark {
		t.Fatalf("checked = %q, want contrast against white", got)
	}
	if !h.app.dirty {
		t.Fatal("edit should mark overrides dirty")
	}
}

func TestEditWithEmptyValueClearsOverride(t *testing.T) {
	h := newHarness(t, Options{Overrides: style.Overrides{"checkedBackground": "#000000"}})

	h.selectRow(t, "checkedBackground")
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	if got := h.app.input.Value(); got != "#000000" {
		t.Fatalf("editor prefilled with %q", got)
	}
	h.app.input.SetValue("")
	h.send(tea.KeyMsg{Type: tea.KeyEnter})

	if got := h.app.Resolved()["checkedBackground"]; got != style.DefaultTheme().Primary {
		t.Fatalf("checkedBackground = %q, want theme primary", got)
	}
}

func TestEscapeCancelsEdit(t *testing.T) {
	h := newHarness(t, Options{})
	h.selectRow(t, "checkedBackground")
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	h.typeText("#000000")
	h.send(tea.KeyMsg{Type: tea.KeyEsc})

	if h.app.editing {
		t.Fatal("esc should stop editing")
	}
	if style.HasOverrides(h.app.Overrides()) {
		t.Fatalf("esc should not commit, overrides = %v", h.app.Overrides())
	}
}

func TestResetClearsOverrides(t *testing.T) {
	h := newHarness(t, Options{Overrides: style.Overrides{"label": "#FF0000"}})
	if cmd := h.send(tea.KeyMsg{Type: tea.KeyCtrlR}); cmd == nil {
		t.Fatal("reset should show a toast")
	}
	if style.HasOverrides(h.app.Overrides()) {
		t.Fatalf("overrides after reset = %v", h.app.Overrides())
	}
	if h.app.toast != "Overrides cleared" {
		t.Fatalf("toast = %q", h.app.toast)
	}
}

func TestThemeKeyCyclesAndPersists(t *testing.T) {
	registry := theme.Builtin()
	h := newHarness(t, Options{Themes: registry})
	next := registry.Next(theme.DefaultName)

	h.send(runeKey('t'))

	if h.app.themeName != next {
		t.Fatalf("theme = %q, want %q", h.app.themeName, next)
	}
	if len(h.themes) != 1 || h.themes[0] != next {
		t.Fatalf("saved themes = %v", h.themes)
	}
	detail, _ := registry.Lookup(next)
	if got := h.app.Resolved()["checkedBackground"]; got != detail.Primary {
		t.Fatalf("checkedBackground = %q, want %q", got, detail.Primary)
	}
}

func TestPlatformKeyToggles(t *testing.T) {
	h := newHarness(t, Options{})
	h.send(runeKey('p'))
	if h.app.platform != style.PlatformMobile {
		t.Fatalf("platform = %q", h.app.platform)
	}
	h.send(runeKey('p'))
	if h.app.platform != style.PlatformPC {
		t.Fatalf("platform = %q", h.app.platform)
	}
	if strings.Join(h.platforms, ",") != "mobile,pc" {
		t.Fatalf("saved platforms = %v", h.platforms)
	}
}

func TestPlatformFiltersRows(t *testing.T) {
	h := newHarness(t, Options{Sheet: "MultiSelect"})
	pcRows := len(h.app.rows)
	h.send(runeKey('p'))
	if len(h.app.rows) == pcRows {
		t.Fatalf("platform toggle did not change visible rows (%d)", pcRows)
	}
}

func TestCopyKeyWritesCSS(t *testing.T) {
	h := newHarness(t, Options{})
	h.send(runeKey('c'))
	if !strings.Contains(h.copied, ".checkbox") {
		t.Fatalf("copied CSS = %q", h.copied)
	}
	if !strings.Contains(h.app.toast, "Copied") {
		t.Fatalf("toast = %q", h.app.toast)
	}
}

func TestCopyKeyReportsFailure(t *testing.T) {
	h := newHarness(t, Options{})
	h.app.copyText = func(string) error { return errors.New("no clipboard") }
	h.send(runeKey('c'))
	if !strings.Contains(h.app.toast, "no clipboard") {
		t.Fatalf("toast = %q", h.app.toast)
	}
}

func TestSaveWithoutWidgetShowsHint(t *testing.T) {
	h := newHarness(t, Options{Store: &fakeStore{}})
	h.send(runeKey('s'))
	if !strings.Contains(h.app.toast, "No widget id") {
		t.Fatalf("toast = %q", h.app.toast)
	}
}

func TestSavePersistsOverrides(t *testing.T) {
	store := &fakeStore{}
	h := newHarness(t, Options{Store: store, WidgetID: "w1"})
	h.app.setOverride("label", "#123456")

	cmd := h.send(runeKey('s'))
	if cmd == nil {
		t.Fatal("save should return a command")
	}
	h.send(cmd())

	if store.widget != "w1" || store.sheet != "Checkbox" || store.overrides["label"] != "#123456" {
		t.Fatalf("store got widget=%q sheet=%q overrides=%v", store.widget, store.sheet, store.overrides)
	}
	if h.app.dirty {
		t.Fatal("successful save should clear dirty")
	}
	if h.app.toast != "Saved w1" {
		t.Fatalf("toast = %q", h.app.toast)
	}
}

func TestSaveFailureKeepsDirty(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	h := newHarness(t, Options{Store: store, WidgetID: "w1"})
	h.app.setOverride("label", "#123456")

	h.send(h.send(runeKey('s'))())
	if !h.app.dirty {
		t.Fatal("failed save should keep dirty")
	}
	if !strings.Contains(h.app.toast, "disk full") {
		t.Fatalf("toast = %q", h.app.toast)
	}
}

func TestPickerSwitchesSheet(t *testing.T) {
	h := newHarness(t, Options{Overrides: style.Overrides{"label": "#123456"}})
	h.send(runeKey('/'))
	if !h.app.showPicker {
		t.Fatal("/ should open the picker")
	}
	h.typeText("modal")
	cmd := h.send(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected picker selection")
	}
	h.send(cmd())

	if h.app.showPicker {
		t.Fatal("picker should close after selection")
	}
	if h.app.sheet.Name != "Modal" {
		t.Fatalf("sheet = %q", h.app.sheet.Name)
	}
	if got := h.app.Resolved()["padding"]; got != "20px 30px" {
		t.Fatalf("padding = %q, want widget default", got)
	}
	if style.HasOverrides(h.app.Overrides()) {
		t.Fatal("switching sheets should drop overrides")
	}
}

func TestPickerEscapeKeepsSheet(t *testing.T) {
	h := newHarness(t, Options{})
	h.send(runeKey('/'))
	h.send(h.send(tea.KeyMsg{Type: tea.KeyEsc})())
	if h.app.showPicker || h.app.sheet.Name != "Checkbox" {
		t.Fatalf("picker=%v sheet=%q", h.app.showPicker, h.app.sheet.Name)
	}
}

func TestHelpBlocksOtherKeys(t *testing.T) {
	h := newHarness(t, Options{})
	h.send(runeKey('?'))
	if !strings.Contains(ansi.Strip(h.app.View()), "SWATCH HELP") {
		t.Fatal("help overlay not rendered")
	}
	if cmd := h.send(runeKey('q')); cmd != nil {
		t.Fatal("q should close help, not quit")
	}
	if h.app.showHelp {
		t.Fatal("help still open")
	}
}

func TestQuitKey(t *testing.T) {
	h := newHarness(t, Options{})
	cmd := h.send(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("got %#v", cmd())
	}
}

func TestCursorMovementStaysInBounds(t *testing.T) {
	h := newHarness(t, Options{})
	h.send(runeKey('k'))
	if h.app.cursor != 0 {
		t.Fatalf("cursor = %d", h.app.cursor)
	}
	h.send(runeKey('G'))
	if h.app.cursor != len(h.app.rows)-1 {
		t.Fatalf("cursor = %d, want last row", h.app.cursor)
	}
	h.send(runeKey('j'))
	if h.app.cursor != len(h.app.rows)-1 {
		t.Fatalf("cursor moved past end: %d", h.app.cursor)
	}
	h.send(runeKey('g'))
	if h.app.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", h.app.cursor)
	}
}

func TestScrollFollowsCursor(t *testing.T) {
	h := newHarness(t, Options{Sheet: "Button"})
	h.app.Update(tea.WindowSizeMsg{Width: 100, Height: 8})
	h.send(runeKey('G'))
	if h.app.top == 0 {
		t.Fatalf("expected list to scroll, top = %d for %d rows", h.app.top, len(h.app.rows))
	}
	view := ansi.Strip(h.app.View())
	if !strings.Contains(view, h.app.rows[len(h.app.rows)-1].Name) {
		t.Fatalf("last row not visible:\n%s", view)
	}
}

func TestViewShowsStatusRowsAndPreview(t *testing.T) {
	h := newHarness(t, Options{Ambient: "#101010", WidgetID: "w9", Version: "1.2.3"})
	view := ansi.Strip(h.app.View())
	for _, want := range []string{"SWATCH v1.2.3", "Checkbox", "default", "pc", "on #101010", "widget w9", "checkedBackground"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	h.send(runeKey('v'))
	if !strings.Contains(ansi.Strip(h.app.View()), "Not selected") {
		t.Fatal("preview pane not rendered")
	}
}

func TestViewBeforeWindowSize(t *testing.T) {
	app, err := NewApp(Options{Sheet: "Checkbox"})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	if got := app.View(); got != "Initializing..." {
		t.Fatalf("View = %q", got)
	}
}

func TestToastExpires(t *testing.T) {
	h := newHarness(t, Options{})
	h.app.showToast("hello")
	if cmd := h.send(toastTickMsg{}); cmd == nil {
		t.Fatal("fresh toast should keep ticking")
	}
	h.app.toastStart = time.Now().Add(-toastDuration)
	if cmd := h.send(toastTickMsg{}); cmd != nil || h.app.toast != "" {
		t.Fatalf("expired toast still shown: %q", h.app.toast)
	}
}
