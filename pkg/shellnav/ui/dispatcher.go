// Package ui provides the UI goroutine dispatcher and a headless window.
//
// Navigation and view state belong to a single UI goroutine. Other goroutines
// hand work to it through a Dispatcher; the goroutine that owns the loop either
// calls Run or, when it already runs its own event pump, Start and Drain.
package ui

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"runtime"
	"strconv"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/errdefs"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/internal"
)

// ErrDispatcherRunning is returned by Run when the dispatcher loop is already
// owned by another caller.
var ErrDispatcherRunning = errors.New("dispatcher already running")

const defaultQueueSize = 64

type task struct {
	fn   func()
	done chan struct{}
}

type uiKey struct{}

// Dispatcher queues functions for execution on the UI goroutine.
type Dispatcher struct {
	tasks   chan task
	running *atomic.Bool
	owner   *atomic.Uint64 // goroutine that started the loop, 0 when stopped
	logger  *slog.Logger
}

// NewDispatcher creates a dispatcher that is not yet running. Until a loop
// starts, RunAsync runs functions on the calling goroutine.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		tasks:   make(chan task, defaultQueueSize),
		running: atomic.NewBool(false),
		owner:   atomic.NewUint64(0),
		logger:  internal.GetInternalLogger(),
	}
}

// Run executes queued functions until ctx is done.
func (d *Dispatcher) Run(ctx context.Context) error {
	if !d.Start() {
		return ErrDispatcherRunning
	}
	defer d.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-d.tasks:
			d.execute(t)
		}
	}
}

// Start marks the calling goroutine as the UI goroutine for loops that pump
// their own events and call Drain. Returns false if the dispatcher is already
// running.
func (d *Dispatcher) Start() bool {
	if !d.running.CompareAndSwap(false, true) {
		return false
	}
	d.owner.Store(goroutineID())
	return true
}

// Stop ends the running state and executes whatever is still queued.
func (d *Dispatcher) Stop() {
	if d.running.CompareAndSwap(true, false) {
		if n := d.Drain(); n > 0 {
			d.logger.Debug("Drained queued UI work on stop", "count", n)
		}
		d.owner.Store(0)
	}
}

// IsRunning reports whether a loop currently owns the dispatcher.
func (d *Dispatcher) IsRunning() bool {
	return d.running.Load()
}

// Drain executes every queued function without blocking and returns how many ran.
func (d *Dispatcher) Drain() int {
	n := 0
	for {
		select {
		case t := <-d.tasks:
			d.execute(t)
			n++
		default:
			return n
		}
	}
}

// Post queues fn without waiting for it. Returns false if the queue is full.
func (d *Dispatcher) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	select {
	case d.tasks <- task{fn: fn}:
		return true
	default:
		return false
	}
}

// RunAsync runs fn on the UI goroutine and waits for it to finish.
//
// fn runs inline when the caller is the UI goroutine, either because ctx was
// derived from UIContext or because the caller is the goroutine that started
// the loop, and when no loop is running. If ctx is done before fn finished,
// RunAsync returns the context error; a queued fn may still run later.
func (d *Dispatcher) RunAsync(ctx context.Context, fn func()) error {
	if fn == nil {
		return errdefs.NewArgumentError("fn")
	}
	if d.OnUI(ctx) || !d.IsRunning() || d.onLoopGoroutine() {
		fn()
		return nil
	}

	done := make(chan struct{})
	select {
	case d.tasks <- task{fn: fn, done: done}:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// UIContext marks ctx as belonging to the UI goroutine of this dispatcher.
// Loops pass it to the callbacks they invoke.
func (d *Dispatcher) UIContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, uiKey{}, d)
}

// OnUI reports whether ctx was derived from UIContext of this dispatcher.
func (d *Dispatcher) OnUI(ctx context.Context) bool {
	owner, _ := ctx.Value(uiKey{}).(*Dispatcher)
	return owner == d
}

func (d *Dispatcher) execute(t task) {
	t.fn()
	if t.done != nil {
		close(t.done)
	}
}

func (d *Dispatcher) onLoopGoroutine() bool {
	owner := d.owner.Load()
	return owner != 0 && owner == goroutineID()
}

// goroutineID parses the id from the "goroutine N [status]:" stack header.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(bytes.TrimPrefix(buf[:n], []byte("goroutine ")))
	if len(fields) == 0 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[0]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
