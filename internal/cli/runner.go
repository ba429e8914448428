package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/databrowser/internal/config"
	"github.com/idilsaglam/databrowser/internal/fetch"
	"github.com/idilsaglam/databrowser/internal/logging"
	"github.com/idilsaglam/databrowser/internal/model"
	"github.com/idilsaglam/databrowser/internal/store"
	"github.com/idilsaglam/databrowser/internal/tui"
	"github.com/idilsaglam/databrowser/internal/ui"
)

// Options carry root flags. Empty values leave the configured setting alone.
type Options struct {
	ConfigPath string
	BaseURL    string
	Theme      string
	Strict     bool // treat non-2xx responses as load failures
	NoColor    bool
	Out        io.Writer // defaults to os.Stdout
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	cmd, a := "browse", []string(nil)
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "browse":
		if len(a) != 0 {
			ui.Fail("usage: databrowser browse")
			return 2
		}
		return doBrowse(opt)

	case "show":
		if len(a) != 1 {
			ui.Fail("usage: databrowser show <users|posts|todos>")
			return 2
		}
		tab, err := model.ParseTab(a[0])
		if err != nil {
			ui.Fail("show: " + err.Error())
			return 2
		}
		return doShow(tab, opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`databrowser - browse users, posts and todos from a JSON API

Usage:
  databrowser [flags] [subcommand]

Subcommands:
  browse             Interactive tab browser (default)
  show <tab>         Print the first %d users, posts or todos and exit
  help               Show this help

Flags:
  -config <path>     TOML config file (default ~/.config/databrowser/config.toml)
  -base-url <url>    API base address (default %s)
  -theme <name>      classic, neon or mono
  -strict            Treat non-2xx responses as failures
  -no-color          Disable colour output

Examples:
  databrowser
  databrowser show todos
  databrowser -theme mono show 2
`, model.PreviewSize, fetch.DefaultBaseURL)
}

// -------------- subcommand impls ----------------

// env is everything a subcommand needs once flags and config are merged.
type env struct {
	cfg    config.Config
	theme  ui.Theme
	log    *logrus.Logger
	client *fetch.Client
	closer io.Closer
}

func setup(opt Options, mode logging.Mode) (*env, error) {
	cfg, err := config.Load(opt.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opt.BaseURL != "" {
		cfg.API.BaseURL = opt.BaseURL
	}
	if opt.Theme != "" {
		cfg.UI.Theme = opt.Theme
	}
	if opt.Strict {
		cfg.API.StrictStatus = true
	}
	if opt.NoColor {
		cfg.UI.NoColor = true
	}

	if err := ui.SetTheme(cfg.UI.Theme); err != nil {
		return nil, err
	}
	ui.SetColorForcing(false, cfg.UI.NoColor)

	log, closer, err := logging.New(cfg.Log.Level, cfg.Log.File, mode)
	if err != nil {
		return nil, err
	}
	client, err := fetch.NewClient(
		fetch.WithBaseURL(cfg.API.BaseURL),
		fetch.WithTimeout(cfg.API.Timeout),
		fetch.WithStrictStatus(cfg.API.StrictStatus),
		fetch.WithLogger(log),
	)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	return &env{cfg: cfg, theme: ui.Current(), log: log, client: client, closer: closer}, nil
}

func doBrowse(opt Options) int {
	e, err := setup(opt, logging.Interactive)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer e.closer.Close()

	e.log.WithField("base_url", e.client.BaseURL()).Debug("Starting browser")
	if err := tui.Run(e.client, e.theme); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doShow(tab model.Tab, opt Options) int {
	e, err := setup(opt, logging.Batch)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer e.closer.Close()

	res := e.client.Load(context.Background())
	s := store.New()
	s.Populate(res.Users, res.Posts, res.Todos)
	s.Finish()
	s.Select(tab)

	out := opt.Out
	if out == nil {
		out = os.Stdout
	}
	lines := []string{
		ui.RenderTab(s, e.theme, ui.Layout{}),
		"",
		e.theme.Muted.Render("Source: " + e.client.BaseURL()),
	}
	if err := ui.Panel(out, e.theme, lines); err != nil {
		ui.Fail("write: " + err.Error())
		return 1
	}
	return 0
}
