package sdlwindow

import (
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/constants"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/ui"
)

const (
	devWidth  int32 = 1024
	devHeight int32 = 768
)

// Options configures the SDL window.
type Options struct {
	Title  string
	Width  int32 // Zero uses the current display mode
	Height int32

	Borderless        bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable         bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen        bool // Fullscreen mode (SDL_WINDOW_FULLSCREEN)
	FullscreenDesktop bool // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	AlwaysOnTop       bool // Window stays above others (SDL_WINDOW_ALWAYS_ON_TOP)
	Maximized         bool // Start maximized (SDL_WINDOW_MAXIMIZED)
	Hidden            bool // Start hidden until Activate (omits SDL_WINDOW_SHOWN)

	Palettes   *Palettes      // Nil uses DefaultPalettes
	Dispatcher *ui.Dispatcher // Nil creates a new dispatcher
}

// ToSDLFlags converts the window options into SDL window flags.
func (o Options) ToSDLFlags() uint32 {
	var flags uint32

	if !o.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}

	if o.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	if o.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if o.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	if o.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	if o.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	if o.Maximized {
		flags |= sdl.WINDOW_MAXIMIZED
	}

	return flags
}

// devSize returns the window size used in development mode, honoring the
// WINDOW_WIDTH and WINDOW_HEIGHT environment variables.
func devSize(getenv func(string) string) (int32, int32) {
	return envDimension(getenv, constants.WindowWidthEnvVar, devWidth),
		envDimension(getenv, constants.WindowHeightEnvVar, devHeight)
}

func envDimension(getenv func(string) string, name string, fallback int32) int32 {
	v := getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		logger().Warn("Invalid window dimension; using default", "variable", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (o Options) withDefaults() Options {
	if o.Palettes == nil {
		p := DefaultPalettes()
		o.Palettes = &p
	}
	if o.Dispatcher == nil {
		o.Dispatcher = ui.NewDispatcher()
	}
	if constants.IsDevMode() {
		o.Borderless = false
		o.Width, o.Height = devSize(os.Getenv)
	}
	return o
}
