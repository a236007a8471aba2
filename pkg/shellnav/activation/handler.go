package activation

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/errdefs"
)

// Handler is one link of the activation chain.
//
// CanHandle must be free of side effects. Handle is only called after CanHandle
// returned true for the same event.
type Handler interface {
	CanHandle(ev Event) bool
	Handle(ctx context.Context, ev Event) error
}

// HandlerOption configures a handler created by NewHandler.
type HandlerOption[T Event] func(*typedHandler[T])

// WithPredicate refines which events of type T the handler accepts.
func WithPredicate[T Event](fn func(ev T) bool) HandlerOption[T] {
	return func(h *typedHandler[T]) {
		if fn != nil {
			h.predicate = fn
		}
	}
}

type typedHandler[T Event] struct {
	action    func(ctx context.Context, ev T) error
	predicate func(ev T) bool
}

// NewHandler returns a Handler for events of concrete type T. Events of any
// other type are rejected by CanHandle.
//
// Example:
//
//	toast := activation.NewHandler(func(ctx context.Context, ev activation.ForegroundEvent) error {
//	    nav.Navigate(NotificationsPage, ev.Source)
//	    return nil
//	}, activation.WithPredicate(func(ev activation.ForegroundEvent) bool {
//	    return ev.Source == "toast"
//	}))
//
// It panics with an errdefs.ArgumentError if action is nil.
func NewHandler[T Event](action func(ctx context.Context, ev T) error, opts ...HandlerOption[T]) Handler {
	if action == nil {
		panic(errdefs.NewArgumentError("action"))
	}

	h := &typedHandler[T]{
		action:    action,
		predicate: func(T) bool { return true },
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *typedHandler[T]) CanHandle(ev Event) bool {
	typed, ok := ev.(T)
	if !ok {
		return false
	}
	return h.predicate(typed)
}

func (h *typedHandler[T]) Handle(ctx context.Context, ev Event) error {
	typed, ok := ev.(T)
	if !ok {
		return errdefs.NewArgumentErrorMsg("ev", fmt.Sprintf("unexpected event type %T", ev))
	}
	return h.action(ctx, typed)
}
