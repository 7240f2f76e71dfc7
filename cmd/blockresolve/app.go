// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sbtools/blockresolve/internal/config"
	"github.com/sbtools/blockresolve/internal/issue"
	"github.com/sbtools/blockresolve/pkg/blocks"
	"github.com/sbtools/blockresolve/pkg/language"
)

type (
	// App wires CLI services and shared dependencies. Cobra handlers receive
	// an App reference and read configuration and the registry through it.
	App struct {
		Config ConfigProvider
		stdout io.Writer
		stderr io.Writer

		// cfg is set by the root command before any subcommand runs.
		cfg *config.Config
		// cfgPath is the file cfg was read from, "" for defaults.
		cfgPath string
		// verbose is the effective --verbose / ui.verbose setting.
		verbose bool
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	// This abstraction enables testing with custom config sources.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
		LoadResolved(ctx context.Context, opts config.LoadOptions) (*config.Config, string, error)
	}

	// session is the registry and lookup language of one invocation.
	session struct {
		registry *blocks.Registry
		lang     *language.Table
	}
)

// NewApp creates an App, filling nil dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	return &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
}

// loadConfig reads the configuration once per invocation. A broken config
// file is reported as a warning and defaults apply, so that `config init`
// and `config show` stay usable.
func (a *App) loadConfig(ctx context.Context, cfgFile string) {
	cfg, path, err := a.Config.LoadResolved(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+issue.Describe(err, false))
		cfg, path = config.DefaultConfig(), ""
	}
	a.cfg, a.cfgPath = cfg, path
}

// config returns the loaded configuration, or the defaults before loading.
func (a *App) config() *config.Config {
	if a.cfg == nil {
		return config.DefaultConfig()
	}
	return a.cfg
}

// newSession builds the registry with every configured language pack and
// selects the lookup language. An empty code selects the configured one.
func (a *App) newSession(code string) (*session, error) {
	cfg := a.config()
	if code == "" {
		code = cfg.Language
	}

	extra := make([]*language.Table, 0, len(cfg.LanguagePacks))
	for _, path := range cfg.LanguagePacks {
		tbl, err := language.LoadPack(path)
		if err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load language pack").
				WithResource(path).
				WithIssue(issue.LanguagePackInvalidId).
				WithSuggestion("Check the pack against an embedded one, e.g. locales/de.toml").
				WithSuggestion("Remove the entry from language_packs to continue without it").
				Wrap(err).
				BuildError()
		}
		extra = append(extra, tbl)
	}

	lang, err := selectLanguage(code, extra)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("select language").
			WithResource(code).
			WithIssue(issue.LanguagePackNotFoundId).
			WithSuggestion("Run 'blockresolve languages' to list the available codes").
			Wrap(err).
			BuildError()
	}

	langs := make([]*language.Table, 0, len(extra)+1)
	if !strings.EqualFold(lang.Code, language.EnglishCode) && !containsTable(extra, lang) {
		langs = append(langs, lang)
	}
	langs = append(langs, extra...)

	reg, err := blocks.LoadBuiltin(langs...)
	if err != nil {
		id := issue.RegistryBuildFailedId
		if errors.Is(err, blocks.ErrUnknownID) && len(langs) > 0 {
			id = issue.LanguagePackInvalidId
		}
		return nil, issue.NewErrorContext().
			WithOperation("build block registry").
			WithIssue(id).
			WithSuggestion("Check that every block ID in your language packs exists").
			Wrap(err).
			BuildError()
	}
	slog.Debug("session ready", "language", lang.Code, "languages", reg.Languages(), "blocks", reg.Len())

	return &session{registry: reg, lang: lang}, nil
}

// selectLanguage prefers a user pack over an embedded one with the same code.
func selectLanguage(code string, extra []*language.Table) (*language.Table, error) {
	for _, t := range extra {
		if strings.EqualFold(t.Code, code) {
			return t, nil
		}
	}
	return language.Embedded(code)
}

func containsTable(tables []*language.Table, t *language.Table) bool {
	for _, x := range tables {
		if x == t {
			return true
		}
	}
	return false
}

// glamourStyle maps the configured color scheme to a glamour style name.
func (a *App) glamourStyle() string {
	return a.config().UI.ColorScheme.String()
}

// renderIssue writes the catalogue issue linked to err, if any, to stderr.
// Verbose runs first print the full cause chain.
func (a *App) renderIssue(err error) {
	if a.verbose {
		fmt.Fprintln(a.stderr, SubtitleStyle.Render(issue.Describe(err, true)))
	}
	ae, ok := issue.As(err)
	if !ok || ae.Issue() == nil {
		return
	}
	rendered, renderErr := ae.Issue().Render(a.glamourStyle())
	if renderErr != nil {
		slog.Debug("failed to render issue", "issue", ae.IssueID, "error", renderErr)
		return
	}
	fmt.Fprint(a.stderr, rendered)
}
