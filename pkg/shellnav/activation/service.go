package activation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/errdefs"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/internal"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/navigation"
)

// Window is the application window the activation service prepares and shows.
type Window interface {
	// Content returns the root content of the window, or nil before it is set.
	Content() any
	SetContent(content any)
	// Activate brings the window to the foreground.
	Activate(ctx context.Context) error
}

// Hook runs during interactive activations. Initializers run before the window
// content is ensured; startup hooks run after the window was activated.
type Hook func(ctx context.Context) error

// State is the phase of the most recent activation.
type State int32

const (
	StateIdle State = iota
	StateInitializing
	StateSurfaceReady
	StateDispatching
	StateActivated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateInitializing:
		return "Initializing"
	case StateSurfaceReady:
		return "SurfaceReady"
	case StateDispatching:
		return "Dispatching"
	case StateActivated:
		return "Activated"
	default:
		return "Unknown"
	}
}

// Option configures a Service.
type Option func(*Service)

// WithShell sets the function creating the window's root content. It is called
// at most once, on the first interactive activation that finds the window empty.
// Without a shell the navigation frame becomes the window content.
func WithShell(factory func() any) Option {
	return func(s *Service) {
		s.shellFactory = factory
	}
}

// WithHandlers appends handlers to the chain. Earlier handlers take precedence.
func WithHandlers(handlers ...Handler) Option {
	return func(s *Service) {
		for _, h := range handlers {
			if h != nil {
				s.handlers = append(s.handlers, h)
			}
		}
	}
}

// WithInitializer adds a hook run before the window content is ensured.
func WithInitializer(hook Hook) Option {
	return func(s *Service) {
		if hook != nil {
			s.initializers = append(s.initializers, hook)
		}
	}
}

// WithStartup adds a hook run after the window was activated.
func WithStartup(hook Hook) Option {
	return func(s *Service) {
		if hook != nil {
			s.startups = append(s.startups, hook)
		}
	}
}

// WithLogger sets the logger used by the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

type lastActivation struct {
	ev Event
}

// Service runs the activation pipeline: it prepares the window, routes each
// event through the handler chain and falls back to the default page.
//
// Activations do not overlap. Activate returns errdefs.ErrActivationInProgress
// when called while a previous activation is still running.
type Service struct {
	window       Window
	nav          *navigation.Service
	fallback     *DefaultHandler
	handlers     []Handler
	initializers []Hook
	startups     []Hook

	shellFactory func() any
	shellOnce    sync.Once
	shell        any

	inFlight  *atomic.Bool
	state     *atomic.Int32
	completed *atomic.Int64
	last      atomic.Value

	logger *slog.Logger
}

// NewService creates an activation service for window. Interactive activations
// that find the frame of nav empty navigate to defaultPage.
// It panics with an errdefs.ArgumentError if window or nav is nil.
func NewService(window Window, nav *navigation.Service, defaultPage navigation.Page, opts ...Option) *Service {
	if window == nil {
		panic(errdefs.NewArgumentError("window"))
	}
	if nav == nil {
		panic(errdefs.NewArgumentError("nav"))
	}

	s := &Service{
		window:    window,
		nav:       nav,
		fallback:  NewDefaultHandler(nav, defaultPage),
		inFlight:  atomic.NewBool(false),
		state:     atomic.NewInt32(int32(StateIdle)),
		completed: atomic.NewInt64(0),
		logger:    internal.GetInternalLogger(),
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Activate handles one activation event.
//
// For interactive events the initializers run, the window receives its root
// content if it has none, the first handler accepting the event is invoked, the
// default handler runs if it can handle the event, the window is activated and
// finally the startup hooks run. Background events only go through the handler
// chain; when no handler accepts one, Activate does nothing.
func (s *Service) Activate(ctx context.Context, ev Event) (err error) {
	if ev == nil {
		return errdefs.NewArgumentError("ev")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return errdefs.ErrActivationInProgress
	}
	defer s.inFlight.Store(false)

	logger := s.logger.With("activation", uuid.NewString(), "kind", ev.Kind().String())
	logger.Debug("Activation started")

	defer func() {
		if err != nil {
			s.setState(StateIdle)
			logger.Warn("Activation failed", "error", err)
		}
	}()

	interactive := ev.Kind().Interactive()

	if interactive {
		s.setState(StateInitializing)
		if err := runHooks(ctx, s.initializers); err != nil {
			return fmt.Errorf("initialize: %w", err)
		}

		if s.window.Content() == nil {
			s.window.SetContent(s.surface())
		}
		s.setState(StateSurfaceReady)
	}

	s.setState(StateDispatching)
	if h := s.find(ev); h != nil {
		if err := h.Handle(ctx, ev); err != nil {
			return fmt.Errorf("handle %s activation: %w", ev.Kind(), err)
		}
	} else {
		logger.Debug("No handler accepted the activation")
	}

	if interactive && s.fallback.CanHandle(ev) {
		logger.Debug("Navigating to default page", "page", s.fallback.Page())
		if err := s.fallback.Handle(ctx, ev); err != nil {
			return fmt.Errorf("default handler: %w", err)
		}
	}

	s.last.Store(lastActivation{ev: ev})

	if interactive {
		if err := s.window.Activate(ctx); err != nil {
			return fmt.Errorf("activate window: %w", err)
		}
		if err := runHooks(ctx, s.startups); err != nil {
			return fmt.Errorf("startup: %w", err)
		}
	}

	s.setState(StateActivated)
	s.completed.Inc()
	logger.Debug("Activation completed")
	return nil
}

// State returns the phase reached by the current or most recent activation.
func (s *Service) State() State {
	return State(s.state.Load())
}

// LastActivation returns the most recent event that passed the handler chain.
func (s *Service) LastActivation() (Event, bool) {
	v, ok := s.last.Load().(lastActivation)
	if !ok {
		return nil, false
	}
	return v.ev, true
}

// Completed returns the number of activations that finished successfully.
func (s *Service) Completed() int64 {
	return s.completed.Load()
}

// Shell returns the root content created by the shell factory, or nil if it
// has not been created.
func (s *Service) Shell() any {
	return s.shell
}

func (s *Service) find(ev Event) Handler {
	for _, h := range s.handlers {
		if h.CanHandle(ev) {
			return h
		}
	}
	return nil
}

func (s *Service) surface() any {
	if s.shellFactory == nil {
		return s.nav.Frame()
	}
	s.shellOnce.Do(func() {
		s.shell = s.shellFactory()
	})
	return s.shell
}

func (s *Service) setState(state State) {
	s.state.Store(int32(state))
}

func runHooks(ctx context.Context, hooks []Hook) error {
	for _, hook := range hooks {
		if err := hook(ctx); err != nil {
			return err
		}
	}
	return nil
}
