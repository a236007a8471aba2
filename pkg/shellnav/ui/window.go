package ui

import (
	"context"
	"sync"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/errdefs"
)

// Window is a window without a screen. It hosts content, counts activations
// and runs theme and activation callbacks through its dispatcher. It serves
// tests and hosts that render elsewhere.
type Window struct {
	title      string
	dispatcher *Dispatcher

	mu          sync.RWMutex
	content     any
	activations int
}

// WindowOption configures a Window.
type WindowOption func(*Window)

// WithTitle sets the window title.
func WithTitle(title string) WindowOption {
	return func(w *Window) {
		w.title = title
	}
}

// WithDispatcher routes RunOnUI through d. Without a dispatcher callbacks run
// on the calling goroutine.
func WithDispatcher(d *Dispatcher) WindowOption {
	return func(w *Window) {
		w.dispatcher = d
	}
}

// NewWindow creates an empty headless window.
func NewWindow(opts ...WindowOption) *Window {
	w := &Window{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Window) Title() string {
	return w.title
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

// Activate records that the window was brought to the foreground.
func (w *Window) Activate(context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.activations++
	return nil
}

// Activations returns how many times Activate was called.
func (w *Window) Activations() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.activations
}

// RunOnUI runs fn through the window's dispatcher.
func (w *Window) RunOnUI(ctx context.Context, fn func()) error {
	if fn == nil {
		return errdefs.NewArgumentError("fn")
	}
	if w.dispatcher == nil {
		fn()
		return nil
	}
	return w.dispatcher.RunAsync(ctx, fn)
}
