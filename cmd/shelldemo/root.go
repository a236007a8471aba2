package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/activation"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/constants"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/input"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/navigation"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/platform/cannoli"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/platform/sdlwindow"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/shell"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/theme"
)

type config struct {
	Symbols     []string
	Theme       string
	SettingsDir string
	BackDevice  string
	LogLevel    string
	Language    string
	Width       int32
	Height      int32
	Cannoli     bool
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:           "shelldemo",
		Short:         "Stock chart shell with activation and back navigation",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg)
		},
	}

	backDevice := os.Getenv(constants.BackDeviceEnvVar)
	if backDevice == "" && !constants.IsDevMode() {
		backDevice = constants.DefaultBackDevicePath
	}

	flags := root.Flags()
	flags.StringSliceVar(&cfg.Symbols, "symbols", []string{"NASDAQ"}, "Symbols to open; the first is the launch argument")
	flags.StringVar(&cfg.Theme, "theme", "", "Theme to apply and save: default|light|dark")
	flags.StringVar(&cfg.SettingsDir, "settings-dir", os.Getenv(constants.SettingsDirEnvVar), "Directory of settings.toml (defaults SHELLNAV_SETTINGS_DIR, memory when empty)")
	flags.StringVar(&cfg.BackDevice, "back-device", backDevice, "evdev device of the hardware back button (defaults SHELLNAV_BACK_DEVICE)")
	flags.StringVar(&cfg.LogLevel, "log-level", os.Getenv(constants.LogLevelEnvVar), "Log level: debug|info|warn|error (defaults SHELLNAV_LOG_LEVEL)")
	flags.StringVar(&cfg.Language, "language", "", "UI language tag, e.g. de (defaults SHELLNAV_LANGUAGE)")
	flags.Int32Var(&cfg.Width, "width", 0, "Window width; 0 uses the display size")
	flags.Int32Var(&cfg.Height, "height", 0, "Window height; 0 uses the display size")
	flags.BoolVar(&cfg.Cannoli, "cannoli", false, "Use the Cannoli firmware palette")

	root.AddCommand(newThemesCmd())
	return root
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range theme.Themes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", t, t.DisplayName())
			}
			return nil
		},
	}
}

func run(ctx context.Context, cfg *config) error {
	if len(cfg.Symbols) == 0 {
		return errors.New("at least one symbol is required")
	}

	winOpts := sdlwindow.Options{
		Title:     "Stocks",
		Width:     cfg.Width,
		Height:    cfg.Height,
		Resizable: true,
		Hidden:    true,
	}
	if cfg.Cannoli {
		p := cannoli.Palettes()
		winOpts.Palettes = &p
		winOpts.Borderless = true
	}

	window, err := sdlwindow.Init(winOpts)
	if err != nil {
		return err
	}
	defer window.Close()

	app, err := shellnav.New(shellnav.Options{
		Registry:    newRegistry(),
		Window:      window,
		DefaultPage: ChartPage,
		Shell:       newShell,
		SettingsDir: cfg.SettingsDir,
		LogLevel:    cfg.LogLevel,
		Language:    cfg.Language,
	})
	if err != nil {
		return err
	}
	defer app.Close()

	logger := shellnav.GetLogger()

	launch := activation.LaunchEvent{Arguments: cfg.Symbols[0], PreviousState: activation.StateNotRunning}
	if err := app.OnLaunched(ctx, launch); err != nil {
		return fmt.Errorf("launch: %w", err)
	}

	for _, symbol := range cfg.Symbols[1:] {
		app.Navigation().Navigate(ChartPage, symbol, navigation.WithTransition(navigation.TransitionDrillIn))
	}

	if cfg.Theme != "" {
		t, err := theme.Parse(cfg.Theme)
		if err != nil {
			return err
		}
		if err := app.Themes().SetTheme(ctx, t); err != nil {
			return err
		}
	}

	view, ok := window.Content().(*shellView)
	if !ok {
		return fmt.Errorf("window content is %T, want *shellView", window.Content())
	}
	s := view.Shell
	window.OnAccelerator(func(_ context.Context, a shell.Accelerator) bool {
		return s.HandleAccelerator(a)
	})

	if cfg.BackDevice != "" {
		listener, err := input.Open(cfg.BackDevice, func(a shell.Accelerator) {
			window.Dispatcher().Post(func() { s.HandleAccelerator(a) })
		})
		if err != nil {
			logger.Warn("Hardware back button unavailable", "device", cfg.BackDevice, "error", err)
		} else {
			defer listener.Close()
			go func() {
				if err := listener.Run(ctx); err != nil && ctx.Err() == nil {
					logger.Warn("Back button listener stopped", "error", err)
				}
			}()
		}
	}

	logger.Info("Shell running", "symbols", cfg.Symbols, "theme", app.Themes().Theme().String())
	err = window.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
