package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"swatch/internal/config"
	"swatch/internal/debug"
	appErrors "swatch/internal/errors"
	"swatch/internal/report"
	"swatch/internal/style"
	"swatch/internal/theme"
)

// OverrideStore persists a widget's overrides.
type OverrideStore interface {
	Save(ctx context.Context, widget, sheet string, overrides style.Overrides) error
}

// Options configures a new inspector.
type Options struct {
	Sheet     string
	Theme     string
	Themes    *theme.Registry
	Platform  style.Platform
	Ambient   string
	Overrides style.Overrides
	Store     OverrideStore
	WidgetID  string
	Version   string
}

// App is the Bubble Tea model for the style inspector.
type App struct {
	keys KeyMap
	help help.Model

	themes    *theme.Registry
	themeName string
	theme     style.ThemeDetail
	platform  style.Platform
	ambient   string

	sheet     style.Sheet
	overrides style.Overrides
	resolved  style.Resolved
	rows      []report.Entry
	dirty     bool

	cursor int
	top    int

	editing bool
	input   textinput.Model

	picker      SheetPicker
	showPicker  bool
	showPreview bool
	showHelp    bool

	toast      string
	toastStart time.Time

	store    OverrideStore
	widgetID string
	version  string

	width  int
	height int
	ready  bool

	copyText     func(string) error
	saveTheme    func(string) error
	savePlatform func(string) error
}

// NewApp builds an inspector for opts.Sheet.
func NewApp(opts Options) (*App, error) {
	sheet, ok := style.LookupSheet(opts.Sheet)
	if !ok {
		return nil, appErrors.New(appErrors.CodeUnknownSheet,
			fmt.Sprintf("unknown style sheet %q", opts.Sheet), nil)
	}
	themes := opts.Themes
	if themes == nil {
		themes = theme.Builtin()
	}
	name := opts.Theme
	if name == "" {
		name = theme.DefaultName
	}
	detail, err := themes.Lookup(name)
	if err != nil {
		return nil, err
	}
	platform := opts.Platform
	if platform == style.PlatformAll {
		platform = style.PlatformPC
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256

	m := &App{
		keys:         DefaultKeyMap(),
		help:         help.New(),
		themes:       themes,
		themeName:    strings.ToLower(name),
		theme:        detail,
		platform:     platform,
		ambient:      opts.Ambient,
		sheet:        sheet,
		overrides:    cloneOverrides(opts.Overrides),
		input:        ti,
		store:        opts.Store,
		widgetID:     opts.WidgetID,
		version:      opts.Version,
		copyText:     clipboard.WriteAll,
		saveTheme:    config.SaveTheme,
		savePlatform: config.SavePlatform,
	}
	m.resolve()
	return m, nil
}

// Init implements tea.Model.
func (m *App) Init() tea.Cmd { return nil }

// Resolved returns the current resolution of the sheet.
func (m *App) Resolved() style.Resolved { return m.resolved }

// Overrides returns the current user overrides.
func (m *App) Overrides() style.Overrides { return m.overrides }

// Update implements tea.Model.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.clampScroll()
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case PickerSelectedMsg:
		m.showPicker = false
		m.switchSheet(msg.Value)
		return m, nil
	case PickerCancelledMsg:
		m.showPicker = false
		return m, nil
	case savedMsg:
		if msg.err != nil {
			debug.Logf("save overrides for %s: %v", msg.widget, msg.err)
			return m, m.showToast("Save failed: " + msg.err.Error())
		}
		m.dirty = false
		return m, m.showToast("Saved " + msg.widget)
	case toastTickMsg:
		if m.toast == "" {
			return m, nil
		}
		if time.Since(m.toastStart) >= toastDuration {
			m.toast = ""
			return m, nil
		}
		return m, scheduleToastTick()
	}
	return m, nil
}

// resolve recomputes the resolution and the visible rows.
func (m *App) resolve() {
	m.resolved = style.ResolveSheet(m.sheet, m.overrides, &m.theme, m.ambient)
	m.rows = report.Build(m.sheet, m.overrides, m.resolved, m.platform, m.themeName, m.ambient).Entries
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampScroll()
	debug.Event("resolved", map[string]any{
		"sheet":    m.sheet.Name,
		"theme":    m.themeName,
		"platform": string(m.platform),
		"entries":  len(m.resolved),
	})
}

func (m *App) switchSheet(name string) {
	sheet, ok := style.LookupSheet(name)
	if !ok || sheet.Name == m.sheet.Name {
		return
	}
	m.sheet = sheet
	m.overrides = style.Overrides{}
	m.dirty = false
	m.cursor = 0
	m.top = 0
	m.resolve()
}

func (m *App) setOverride(name, value string) {
	if m.overrides == nil {
		m.overrides = style.Overrides{}
	}
	m.overrides[name] = strings.TrimSpace(value)
	m.dirty = true
	m.resolve()
}

func (m *App) selected() (report.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return report.Entry{}, false
	}
	return m.rows[m.cursor], true
}

func (m *App) listHeight() int {
	h := m.height - 4
	if m.editing {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m *App) clampScroll() {
	h := m.listHeight()
	if m.cursor < m.top {
		m.top = m.cursor
	}
	if m.cursor >= m.top+h {
		m.top = m.cursor - h + 1
	}
	if m.top < 0 {
		m.top = 0
	}
}

func (m *App) showToast(text string) tea.Cmd {
	m.toast = text
	m.toastStart = time.Now()
	return scheduleToastTick()
}

func cloneOverrides(in style.Overrides) style.Overrides {
	out := make(style.Overrides, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
