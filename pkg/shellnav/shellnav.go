// Package shellnav coordinates activation and navigation for a single-window
// application shell.
//
// An App ties together a page registry, the window, the navigation service,
// the theme selector and the activation pipeline. The host forwards launch and
// activation events to the App; the App decides which page to show and keeps
// the navigation history.
//
//	registry := navigation.NewRegistry().
//	    Register(ChartPage, newChartPage).
//	    Register(SettingsPage, newSettingsPage)
//
//	app, err := shellnav.New(shellnav.Options{
//	    Registry:    registry,
//	    Window:      window,
//	    DefaultPage: ChartPage,
//	})
//	if err != nil {
//	    return err
//	}
//	defer app.Close()
//
//	err = app.OnLaunched(ctx, activation.LaunchEvent{Arguments: "NASDAQ"})
package shellnav

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/activation"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/constants"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/errdefs"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/internal"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/navigation"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/settings"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/theme"
)

// Options configures an App.
type Options struct {
	Registry    *navigation.Registry // Pages the app can show (required)
	Window      activation.Window    // Window hosting the shell (required)
	DefaultPage navigation.Page      // Page shown when an interactive activation finds nothing displayed

	Shell    func(nav *navigation.Service) any // Builds the window root content; nil hosts the frame directly
	Handlers []activation.Handler              // Activation handlers, in precedence order
	Views    []theme.View                      // Views besides Window that receive the theme

	Settings    *settings.Container // Settings store; nil opens SettingsDir
	SettingsDir string              // Directory of settings.toml; empty uses SHELLNAV_SETTINGS_DIR or memory

	LogPath  string // Full path for log file including filename (creates parent directories)
	LogLevel string // Framework log level; empty uses SHELLNAV_LOG_LEVEL
	Language string // Preferred UI language tag; empty uses SHELLNAV_LANGUAGE
}

// App is the entry point for activation events.
type App struct {
	opts     Options
	nav      *navigation.Service
	themes   *theme.Selector
	settings *settings.Container

	activationOnce sync.Once
	activation     *activation.Service
}

// New validates opts and creates the navigation service, settings store and
// theme selector. The activation service is created on first use.
func New(opts Options) (*App, error) {
	if opts.Registry == nil {
		return nil, errdefs.NewArgumentError("Registry")
	}
	if opts.Window == nil {
		return nil, errdefs.NewArgumentError("Window")
	}

	configureLogging(opts)
	configureLanguage(opts.Language)

	store := opts.Settings
	if store == nil {
		var err error
		store, err = settings.OpenContainer(settingsPath(opts.SettingsDir))
		if err != nil {
			return nil, fmt.Errorf("open settings: %w", err)
		}
	}

	themes := theme.NewSelector(store)
	if view, ok := opts.Window.(theme.View); ok {
		themes.AddView(view)
	}
	for _, v := range opts.Views {
		themes.AddView(v)
	}

	return &App{
		opts:     opts,
		nav:      navigation.NewService(opts.Registry),
		themes:   themes,
		settings: store,
	}, nil
}

// OnLaunched handles a launch. Prelaunch activations are ignored.
func (a *App) OnLaunched(ctx context.Context, ev activation.LaunchEvent) error {
	if ev.PrelaunchActivated {
		internal.GetInternalLogger().Debug("Skipping prelaunch activation")
		return nil
	}
	return a.Activation().Activate(ctx, ev)
}

// OnActivated handles any activation event.
func (a *App) OnActivated(ctx context.Context, ev activation.Event) error {
	return a.Activation().Activate(ctx, ev)
}

// Activation returns the activation service, creating it on first use.
func (a *App) Activation() *activation.Service {
	a.activationOnce.Do(func() {
		opts := []activation.Option{
			activation.WithHandlers(a.opts.Handlers...),
			activation.WithInitializer(a.themes.Initialize),
			activation.WithStartup(a.themes.Apply),
		}
		if a.opts.Shell != nil {
			build := a.opts.Shell
			opts = append(opts, activation.WithShell(func() any { return build(a.nav) }))
		}
		a.activation = activation.NewService(a.opts.Window, a.nav, a.opts.DefaultPage, opts...)
	})
	return a.activation
}

// Navigation returns the navigation service of the app.
func (a *App) Navigation() *navigation.Service {
	return a.nav
}

// Themes returns the theme selector of the app.
func (a *App) Themes() *theme.Selector {
	return a.themes
}

// Settings returns the settings store of the app.
func (a *App) Settings() *settings.Container {
	return a.settings
}

// Close releases the log file.
func (a *App) Close() {
	internal.CloseLogger()
}

func configureLogging(opts Options) {
	if opts.LogPath != "" {
		internal.SetLogPath(opts.LogPath)
	} else if path := os.Getenv(constants.LogPathEnvVar); path != "" {
		internal.SetLogPath(path)
	}

	level := opts.LogLevel
	if level == "" {
		level = os.Getenv(constants.LogLevelEnvVar)
	}
	switch {
	case level != "":
		internal.SetInternalLogLevel(internal.ParseLevel(level))
	case constants.IsDevMode():
		internal.SetInternalLogLevel(slog.LevelDebug)
	}
}

func configureLanguage(preferred string) {
	var tags []string
	for _, tag := range []string{preferred, os.Getenv(constants.LanguageEnvVar)} {
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	internal.SetLanguage(tags...)
}

func settingsPath(dir string) string {
	if dir == "" {
		dir = os.Getenv(constants.SettingsDirEnvVar)
	}
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, constants.SettingsFileName)
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before New to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
