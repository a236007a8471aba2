package input

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/errdefs"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/internal"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/shell"
)

// EventReader is a source of input events, such as an *evdev.InputDevice.
type EventReader interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// AcceleratorFunc receives back accelerators. It is called on the listener's
// goroutine; hand the work to the UI goroutine before touching navigation.
type AcceleratorFunc func(a shell.Accelerator)

// Option configures a Listener.
type Option func(*Listener)

// WithLogger sets the logger used by the listener.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Listener) {
		l.logger = logger
	}
}

// WithAllAccelerators reports every detected accelerator instead of only the
// back accelerators.
func WithAllAccelerators() Option {
	return func(l *Listener) {
		l.all = true
	}
}

// Listener reads key events and reports back accelerators.
type Listener struct {
	reader   EventReader
	onAccel  AcceleratorFunc
	detector Detector
	all      bool

	closeOnce sync.Once
	closeErr  error

	logger *slog.Logger
}

// Open opens the evdev device at path and returns a listener for it.
func Open(path string, fn AcceleratorFunc, opts ...Option) (*Listener, error) {
	if fn == nil {
		return nil, errdefs.NewArgumentError("fn")
	}

	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input device %s: %w", path, err)
	}

	l := NewListener(dev, fn, opts...)
	if name, err := dev.Name(); err == nil {
		l.logger.Debug("Opened input device", "path", path, "name", name)
	}
	return l, nil
}

// NewListener creates a listener over reader.
// It panics with an errdefs.ArgumentError if reader or fn is nil.
func NewListener(reader EventReader, fn AcceleratorFunc, opts ...Option) *Listener {
	if reader == nil {
		panic(errdefs.NewArgumentError("reader"))
	}
	if fn == nil {
		panic(errdefs.NewArgumentError("fn"))
	}

	l := &Listener{
		reader:  reader,
		onAccel: fn,
		logger:  internal.GetInternalLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run reads events until ctx is done or the reader fails. Cancelling ctx
// closes the reader to unblock the pending read.
func (l *Listener) Run(ctx context.Context) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			l.Close()
		case <-stop:
		}
	}()

	for {
		ev, err := l.reader.ReadOne()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return fmt.Errorf("read input event: %w", err)
		}
		if ev == nil {
			continue
		}

		a, ok := l.detector.Feed(*ev)
		if !ok || (!l.all && !a.IsBack()) {
			continue
		}
		l.logger.Debug("Accelerator pressed", "key", int(a.Key), "modifiers", int(a.Modifiers))
		l.onAccel(a)
	}
}

// Close closes the underlying reader. It is safe to call more than once.
func (l *Listener) Close() error {
	l.closeOnce.Do(func() {
		l.closeErr = l.reader.Close()
	})
	return l.closeErr
}
