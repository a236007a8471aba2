// Package sdlwindow hosts the application shell in an SDL2 window.
//
// The Window implements the window contract of the activation service and the
// view contract of the theme selector. Its Run loop owns the UI goroutine: it
// pumps SDL events, turns back keys and controller buttons into shell
// accelerators, executes work queued on its dispatcher and paints the content
// with the palette of the requested theme.
//
// SDL must be driven from the main OS thread; call runtime.LockOSThread in an
// init function of the main package.
package sdlwindow

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/constants"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/internal"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/shell"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/theme"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/ui"
)

// Drawable is implemented by content that paints itself every frame.
type Drawable interface {
	Draw(r *sdl.Renderer, p Palette)
}

// AcceleratorFunc handles a key combination on the UI goroutine. ctx is marked
// as belonging to the UI goroutine of the window dispatcher.
type AcceleratorFunc func(ctx context.Context, a shell.Accelerator) bool

type themed interface {
	RequestedTheme() theme.Theme
}

type backEnabled interface {
	IsBackEnabled() bool
}

// Window is an SDL window hosting a single content value.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	opts     Options

	dispatcher  *ui.Dispatcher
	controllers []*sdl.GameController

	mu      sync.RWMutex
	content any
	onAccel AcceleratorFunc

	hasVSync        bool
	lastPresentTime uint64
}

func logger() *slog.Logger {
	return internal.GetInternalLogger()
}

// Init initializes SDL and creates the window.
func Init(opts Options) (*Window, error) {
	opts = opts.withDefaults()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_GAMECONTROLLER); err != nil {
		return nil, fmt.Errorf("init sdl: %w", err)
	}

	width, height := opts.Width, opts.Height
	if width == 0 || height == 0 {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			logger().Warn("Failed to get display mode", "error", err)
			width, height = devWidth, devHeight
		} else {
			width, height = mode.W, mode.H
		}
	}

	x, y := int32(0), int32(0)
	if constants.IsDevMode() {
		x, y = 50, 50
	}

	logger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(opts.Title, x, y, width, height, opts.ToSDLFlags())
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	renderer.SetLogicalSize(width, height)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	w := &Window{
		window:     window,
		renderer:   renderer,
		opts:       opts,
		dispatcher: opts.Dispatcher,
		hasVSync:   vsync,
	}
	w.openControllers()
	return w, nil
}

// Dispatcher returns the dispatcher drained by the window loop.
func (w *Window) Dispatcher() *ui.Dispatcher {
	return w.dispatcher
}

func (w *Window) Content() any {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.content
}

func (w *Window) SetContent(content any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.content = content
}

// Activate shows the window and raises it above other windows.
func (w *Window) Activate(ctx context.Context) error {
	return w.dispatcher.RunAsync(ctx, func() {
		w.window.Show()
		w.window.Raise()
	})
}

// RunOnUI runs fn on the window loop.
func (w *Window) RunOnUI(ctx context.Context, fn func()) error {
	return w.dispatcher.RunAsync(ctx, fn)
}

// OnAccelerator sets the handler for back keys and buttons.
func (w *Window) OnAccelerator(fn AcceleratorFunc) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onAccel = fn
}

// Palette returns the palette for the theme requested by the content.
func (w *Window) Palette() Palette {
	t := theme.Default
	if c, ok := w.Content().(themed); ok {
		t = c.RequestedTheme()
	}
	return w.opts.Palettes.For(t)
}

// Run pumps events and renders until the window is closed or ctx is done.
func (w *Window) Run(ctx context.Context) error {
	if !w.dispatcher.Start() {
		return ui.ErrDispatcherRunning
	}
	defer w.dispatcher.Stop()

	uiCtx := w.dispatcher.UIContext(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				logger().Debug("Window closed")
				return nil
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
					continue
				}
				if a, ok := acceleratorFor(e.Keysym.Sym, e.Keysym.Mod); ok {
					w.accelerate(uiCtx, a)
				}
			case *sdl.ControllerButtonEvent:
				if e.State != sdl.PRESSED {
					continue
				}
				if a, ok := controllerAccelerator(e.Button); ok {
					w.accelerate(uiCtx, a)
				}
			}
		}

		w.dispatcher.Drain()
		w.render()
	}
}

// Close destroys the window and shuts SDL down.
func (w *Window) Close() {
	for _, c := range w.controllers {
		c.Close()
	}
	w.controllers = nil
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}

func (w *Window) accelerate(ctx context.Context, a shell.Accelerator) {
	w.mu.RLock()
	fn := w.onAccel
	w.mu.RUnlock()
	if fn == nil {
		return
	}
	handled := fn(ctx, a)
	logger().Debug("Accelerator", "key", int(a.Key), "modifiers", int(a.Modifiers), "handled", handled)
}

func (w *Window) render() {
	p := w.Palette()
	content := w.Content()

	w.renderer.SetDrawColor(p.BackgroundColor.R, p.BackgroundColor.G, p.BackgroundColor.B, p.BackgroundColor.A)
	w.renderer.Clear()

	if c, ok := content.(backEnabled); ok && c.IsBackEnabled() {
		width, _ := w.window.GetSize()
		w.renderer.SetDrawColor(p.AccentColor.R, p.AccentColor.G, p.AccentColor.B, p.AccentColor.A)
		w.renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: width, H: 4})
	}

	if d, ok := content.(Drawable); ok {
		d.Draw(w.renderer, p)
	}

	w.present()
}

// present swaps the render buffer and enforces frame pacing when VSync is not
// available.
func (w *Window) present() {
	w.renderer.Present()
	if w.hasVSync {
		return
	}
	frame := uint64(constants.DefaultFrameDelay.Milliseconds())
	now := sdl.GetTicks64()
	if elapsed := now - w.lastPresentTime; elapsed < frame {
		sdl.Delay(uint32(frame - elapsed))
	}
	w.lastPresentTime = sdl.GetTicks64()
}

func (w *Window) openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if c := sdl.GameControllerOpen(i); c != nil {
			w.controllers = append(w.controllers, c)
		}
	}
}
