package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"swatch/internal/config"
	"swatch/internal/debug"
	"swatch/internal/store"
	"swatch/internal/style"
	"swatch/internal/ui"
)

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	var sets setFlag
	versionFlag := flag.Bool("version", false, "Print version information and exit")
	debugFlag := flag.Bool("debug", false, "Write a debug log to ~/.swatch/debug.log")
	themeFlag := flag.String("theme", config.GetString(config.KeyTheme), "Theme name")
	platformFlag := flag.String("platform", config.GetString(config.KeyPlatform), "Platform whose attributes are shown (pc, mobile)")
	ambientFlag := flag.String("ambient", config.GetString(config.KeyAmbient), "Ambient background color, or \"terminal\" to detect it")
	formatFlag := flag.String("format", config.GetString(config.KeyOutputFormat), "Output format (table, css, rules, json, markdown)")
	overridesFlag := flag.String("overrides", "", "YAML file with sheet and overrides")
	widgetFlag := flag.String("widget", "", "Widget id whose stored overrides are loaded")
	saveFlag := flag.Bool("save", false, "Store the merged overrides for -widget")
	resetFlag := flag.Bool("reset", false, "Delete the stored overrides for -widget")
	listFlag := flag.Bool("list", false, "List widgets with stored overrides")
	themesFlag := flag.Bool("themes", false, "List available themes")
	validateFlag := flag.Bool("validate", false, "Check every style sheet for authoring defects")
	tuiFlag := flag.Bool("tui", false, "Open the interactive inspector")
	flag.Var(&sets, "set", "Override an attribute as name=value (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: swatch [flags] <sheet>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *versionFlag {
		printVersion(os.Stdout)
		os.Exit(0)
	}

	if *debugFlag {
		if err := debug.Init(true); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: debug log unavailable: %v\n", err)
		}
		defer debug.Close()
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	opts := computeRuntimeOptions(runtimeFlags{
		theme:    themeFlag,
		platform: platformFlag,
		ambient:  ambientFlag,
		format:   formatFlag,
	}, visited)
	opts.sheet = strings.TrimSpace(flag.Arg(0))
	opts.sets = sets.values
	opts.overridesFile = strings.TrimSpace(*overridesFlag)
	opts.widget = strings.TrimSpace(*widgetFlag)
	opts.save = *saveFlag
	opts.reset = *resetFlag
	opts.list = *listFlag
	opts.themes = *themesFlag
	opts.validate = *validateFlag
	opts.tui = *tuiFlag

	env := environment{
		stdout: os.Stdout,
		stderr: os.Stderr,
		openStore: func(ctx context.Context, path string) (overrideStore, error) {
			s, err := store.Open(ctx, path)
			if err != nil {
				return nil, err
			}
			return s, nil
		},
		terminalBackground: func() string {
			return ui.TerminalBackground(termenv.NewOutput(os.Stdout))
		},
		programFactory: func(app *ui.App) programRunner {
			return tea.NewProgram(app, tea.WithAltScreen())
		},
	}
	if err := run(context.Background(), opts, env); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		debug.Close()
		os.Exit(1)
	}
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

type runtimeFlags struct {
	theme    *string
	platform *string
	ambient  *string
	format   *string
}

type runtimeOptions struct {
	sheet         string
	theme         string
	platform      style.Platform
	ambient       string
	format        string
	markdownStyle string
	dbPath        string
	themesDir     string

	sets          style.Overrides
	overridesFile string
	widget        string

	save     bool
	reset    bool
	list     bool
	themes   bool
	validate bool
	tui      bool
}

// computeRuntimeOptions starts from config and lets explicitly set flags win.
func computeRuntimeOptions(flags runtimeFlags, visited map[string]struct{}) runtimeOptions {
	pick := func(name, key string, value *string) string {
		v := config.GetString(key)
		if value != nil && flagWasExplicitlySet(name, visited) {
			v = *value
		}
		return strings.TrimSpace(v)
	}

	opts := runtimeOptions{
		theme:         pick("theme", config.KeyTheme, flags.theme),
		platform:      style.Platform(strings.ToLower(pick("platform", config.KeyPlatform, flags.platform))),
		ambient:       pick("ambient", config.KeyAmbient, flags.ambient),
		format:        strings.ToLower(pick("format", config.KeyOutputFormat, flags.format)),
		markdownStyle: strings.TrimSpace(config.GetString(config.KeyMarkdownStyle)),
	}
	if opts.theme == "" {
		opts.theme = config.DefaultTheme
	}
	if opts.platform == style.PlatformAll {
		opts.platform = style.PlatformPC
	}
	if opts.format == "" {
		opts.format = formatTable
	}
	if path, err := config.DatabasePath(); err == nil {
		opts.dbPath = path
	}
	if dir, err := config.ThemesDir(); err == nil {
		opts.themesDir = dir
	}
	return opts
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	if _, ok := visited[name]; ok {
		return true
	}
	f := flag.CommandLine.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.String() != f.DefValue
}

type environment struct {
	stdout             io.Writer
	stderr             io.Writer
	openStore          func(ctx context.Context, path string) (overrideStore, error)
	terminalBackground func() string
	programFactory     programFactory
}
