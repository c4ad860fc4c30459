package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"swatch/internal/cssgen"
	"swatch/internal/debug"
	appErrors "swatch/internal/errors"
	"swatch/internal/report"
	"swatch/internal/store"
	"swatch/internal/style"
	"swatch/internal/theme"
	"swatch/internal/ui"
)

const (
	formatTable    = "table"
	formatCSS      = "css"
	formatRules    = "rules"
	formatJSON     = "json"
	formatMarkdown = "markdown"

	ambientTerminal = "terminal"
	markdownWidth   = 100
)

type overrideStore interface {
	Load(ctx context.Context, widget string) (style.Overrides, error)
	Save(ctx context.Context, widget, sheet string, overrides style.Overrides) error
	Reset(ctx context.Context, widget string) error
	List(ctx context.Context) ([]store.Widget, error)
	Close() error
}

func run(ctx context.Context, opts runtimeOptions, env environment) error {
	switch {
	case opts.validate:
		return runValidate(env.stdout)
	case opts.themes:
		registry := loadThemes(opts, env)
		return listThemes(env.stdout, registry, opts.theme)
	case opts.list:
		return withStore(ctx, opts, env, func(s overrideStore) error {
			return listWidgets(ctx, env.stdout, s)
		})
	case opts.reset:
		if opts.widget == "" {
			return appErrors.New(appErrors.CodeInvalidOverride, "-reset needs -widget", nil)
		}
		return withStore(ctx, opts, env, func(s overrideStore) error {
			if err := s.Reset(ctx, opts.widget); err != nil {
				return err
			}
			fmt.Fprintf(env.stdout, "Reset overrides for %s\n", opts.widget)
			return nil
		})
	}

	if opts.save && opts.widget == "" {
		return appErrors.New(appErrors.CodeInvalidOverride, "-save needs -widget", nil)
	}
	if opts.widget == "" {
		return resolveAndRender(ctx, opts, env, nil)
	}
	return withStore(ctx, opts, env, func(s overrideStore) error {
		return resolveAndRender(ctx, opts, env, s)
	})
}

func withStore(ctx context.Context, opts runtimeOptions, env environment, fn func(overrideStore) error) error {
	if env.openStore == nil {
		return appErrors.New(appErrors.CodeConfigurationError, "no override store configured", nil)
	}
	s, err := env.openStore(ctx, opts.dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = s.Close()
	}()
	return fn(s)
}

// resolveAndRender resolves the sheet with stored, file and -set overrides
// layered in that order, then renders it or opens the inspector. Stored
// overrides only apply while the widget stays on the sheet they were saved
// for.
func resolveAndRender(ctx context.Context, opts runtimeOptions, env environment, s overrideStore) error {
	if opts.platform != style.PlatformPC && opts.platform != style.PlatformMobile {
		return appErrors.New(appErrors.CodeConfigurationError,
			fmt.Sprintf("unknown platform %q (pc, mobile)", opts.platform), nil)
	}
	registry := loadThemes(opts, env)
	detail, err := registry.Lookup(opts.theme)
	if err != nil {
		return err
	}

	ambient, err := resolveAmbient(opts.ambient, env)
	if err != nil {
		return err
	}

	var file overridesFile
	if opts.overridesFile != "" {
		if file, err = loadOverridesFile(opts.overridesFile); err != nil {
			return err
		}
	}

	var stored style.Overrides
	var prevSheet string
	if s != nil {
		if stored, err = s.Load(ctx, opts.widget); err != nil {
			return err
		}
		if prevSheet, err = storedSheet(ctx, s, opts.widget); err != nil {
			return err
		}
	}

	sheetName := opts.sheet
	if sheetName == "" {
		sheetName = file.Sheet
	}
	if sheetName == "" {
		sheetName = prevSheet
	}
	if sheetName == "" {
		return appErrors.New(appErrors.CodeUnknownSheet, "missing style sheet name", nil)
	}
	sheet, ok := style.LookupSheet(sheetName)
	if !ok {
		return appErrors.New(appErrors.CodeUnknownSheet,
			fmt.Sprintf("unknown style sheet %q (run -validate to list sheets)", sheetName), nil)
	}

	// Stored overrides belong to the widget's previous sheet when it moves to
	// another one.
	if prevSheet != "" && prevSheet != sheet.Name {
		stored = nil
	}

	overrides, err := mergeOverrides(sheet, stored, file.Overrides, opts.sets)
	if err != nil {
		return err
	}

	if opts.tui {
		var saver ui.OverrideStore
		if s != nil {
			saver = s
		}
		app, err := ui.NewApp(ui.Options{
			Sheet:     sheet.Name,
			Theme:     opts.theme,
			Themes:    registry,
			Platform:  opts.platform,
			Ambient:   ambient,
			Overrides: overrides,
			Store:     saver,
			WidgetID:  opts.widget,
			Version:   Version,
		})
		if err != nil {
			return fmt.Errorf("initialize UI: %w", err)
		}
		return runProgram(app, env.programFactory)
	}

	if opts.save {
		if err := s.Save(ctx, opts.widget, sheet.Name, overrides); err != nil {
			return err
		}
	}

	resolved := style.ResolveSheet(sheet, overrides, &detail, ambient)
	debug.Event("resolved", map[string]any{
		"sheet":   sheet.Name,
		"theme":   opts.theme,
		"ambient": ambient,
		"entries": len(resolved),
	})
	return render(env.stdout, opts, sheet, overrides, resolved, ambient)
}

func render(w io.Writer, opts runtimeOptions, sheet style.Sheet, overrides style.Overrides, resolved style.Resolved, ambient string) error {
	rep := report.Build(sheet, overrides, resolved, opts.platform, opts.theme, ambient)
	switch opts.format {
	case formatTable:
		fmt.Fprintln(w, report.Table(rep))
	case formatJSON:
		return report.WriteJSON(w, rep)
	case formatMarkdown:
		renderMarkdown := report.BuildMarkdownRenderer(opts.markdownStyle, markdownWidth)
		fmt.Fprint(w, renderMarkdown(report.Markdown(rep)))
	case formatCSS:
		fmt.Fprint(w, cssgen.CustomProperties(cssgen.Kebab(sheet.Name), resolved))
	case formatRules:
		fmt.Fprint(w, cssgen.Rules(sheet.Name, "", resolved))
	default:
		return appErrors.New(appErrors.CodeConfigurationError,
			fmt.Sprintf("unknown output format %q (table, css, rules, json, markdown)", opts.format), nil)
	}
	return nil
}

func runProgram(app *ui.App, factory programFactory) error {
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

// loadThemes returns the built-in themes plus any YAML themes in the
// configured directory. Broken theme files are reported and skipped.
func loadThemes(opts runtimeOptions, env environment) *theme.Registry {
	registry := theme.Builtin()
	if opts.themesDir == "" {
		return registry
	}
	if _, err := registry.LoadDir(opts.themesDir); err != nil && env.stderr != nil {
		fmt.Fprintf(env.stderr, "Warning: %v\n", err)
	}
	return registry
}

func resolveAmbient(value string, env environment) (string, error) {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, ambientTerminal) {
		if env.terminalBackground == nil {
			return "", nil
		}
		return env.terminalBackground(), nil
	}
	if value != "" && !style.ParseColor(value) {
		return "", appErrors.New(appErrors.CodeInvalidOverride,
			fmt.Sprintf("ambient %q is not a color", value), nil)
	}
	return value, nil
}

func storedSheet(ctx context.Context, s overrideStore, widget string) (string, error) {
	widgets, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	for _, w := range widgets {
		if w.ID == widget {
			return w.Sheet, nil
		}
	}
	return "", nil
}

func runValidate(w io.Writer) error {
	if err := style.ValidateCatalog(); err != nil {
		return err
	}
	sheets := style.Sheets()
	fmt.Fprintf(w, "%d style sheets OK\n", len(sheets))
	for _, name := range sheets {
		sheet, _ := style.LookupSheet(name)
		fmt.Fprintf(w, "  %-22s %d attributes\n", name, len(sheet.Descriptors))
	}
	return nil
}

func listThemes(w io.Writer, registry *theme.Registry, current string) error {
	current = strings.ToLower(strings.TrimSpace(current))
	for _, name := range registry.Available() {
		marker := " "
		if name == current {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\n", marker, name)
	}
	return nil
}

func listWidgets(ctx context.Context, w io.Writer, s overrideStore) error {
	widgets, err := s.List(ctx)
	if err != nil {
		return err
	}
	if len(widgets) == 0 {
		fmt.Fprintln(w, "No stored overrides")
		return nil
	}
	rows := make([][]string, 0, len(widgets))
	for _, wd := range widgets {
		updated := ""
		if !wd.UpdatedAt.IsZero() {
			updated = wd.UpdatedAt.Local().Format(time.DateTime)
		}
		rows = append(rows, []string{wd.ID, wd.Sheet, fmt.Sprint(wd.Count), updated})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("WIDGET", "SHEET", "OVERRIDES", "UPDATED").
		Rows(rows...)
	fmt.Fprintln(w, t.String())
	return nil
}
