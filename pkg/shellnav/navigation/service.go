package navigation

import (
	"log/slog"
	"reflect"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/errdefs"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/internal"
)

// Service owns the single navigation Frame of a process and is the entry point
// for every navigation request.
//
// Create exactly one Service per process and pass it to the components that
// navigate. The Service re-broadcasts the events of whichever Frame it currently
// owns; replacing the Frame detaches the Service from the old one.
type Service struct {
	registry    *Registry
	frameSource func() *Frame
	frame       *Frame

	navigatedSub Subscription
	failedSub    Subscription

	lastParamUsed any

	navigated internal.Observers[NavigatedFunc]
	failed    internal.Observers[NavigationFailedFunc]

	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithFrameSource sets the function used to create the Frame on first access.
// By default a new Frame over the service registry is created.
func WithFrameSource(fn func() *Frame) Option {
	return func(s *Service) {
		s.frameSource = fn
	}
}

// WithLogger sets the logger used by the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a navigation service resolving pages through registry.
// It panics with an errdefs.ArgumentError if registry is nil.
func NewService(registry *Registry, opts ...Option) *Service {
	if registry == nil {
		panic(errdefs.NewArgumentError("registry"))
	}

	s := &Service{
		registry: registry,
		logger:   internal.GetInternalLogger(),
	}
	s.frameSource = func() *Frame { return NewFrame(s.registry) }

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry returns the page registry of the service.
func (s *Service) Registry() *Registry {
	return s.registry
}

// Frame returns the active Frame, creating it on first access.
func (s *Service) Frame() *Frame {
	if s.frame == nil {
		s.frame = s.frameSource()
		s.registerFrameEvents()
	}
	return s.frame
}

// SetFrame replaces the active Frame. Handlers registered on the service stop
// receiving events from the previous Frame before they start receiving events
// from the new one.
func (s *Service) SetFrame(frame *Frame) {
	s.unregisterFrameEvents()
	s.frame = frame
	s.registerFrameEvents()
}

func (s *Service) CanGoBack() bool {
	return s.Frame().CanGoBack()
}

func (s *Service) CanGoForward() bool {
	return s.Frame().CanGoForward()
}

// GoBack navigates to the previous page. It is a no-op returning false when
// there is no back history.
func (s *Service) GoBack() bool {
	if !s.CanGoBack() {
		return false
	}
	return s.Frame().GoBack()
}

// GoForward navigates to the next page. It is a no-op returning false when
// there is no forward history.
func (s *Service) GoForward() bool {
	if !s.CanGoForward() {
		return false
	}
	return s.Frame().GoForward()
}

// NavigateOption configures a single navigation.
type NavigateOption func(*navigateConfig)

type navigateConfig struct {
	transition Transition
}

// WithTransition overrides the transition of the navigation.
func WithTransition(t Transition) NavigateOption {
	return func(c *navigateConfig) {
		c.transition = t
	}
}

// Navigate shows page with parameter unless it is already shown.
//
// The navigation happens when the current page differs from page, or when
// parameter is non-nil and differs from the parameter of the last accepted
// navigation. Otherwise the call is a no-op, which keeps repeated requests for
// the visible page (for example repeat taps on the same menu item) from
// rebuilding it. Returns whether a navigation happened.
func (s *Service) Navigate(page Page, parameter any, opts ...NavigateOption) bool {
	cfg := navigateConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	frame := s.Frame()
	if frame.CurrentPage() == page && (parameter == nil || reflect.DeepEqual(parameter, s.lastParamUsed)) {
		s.logger.Debug("Suppressed repeat navigation", "page", page)
		return false
	}

	ok := frame.Navigate(page, parameter, cfg.transition)
	if ok {
		s.lastParamUsed = parameter
	}
	return ok
}

// LastParameter returns the parameter of the most recent accepted navigation.
func (s *Service) LastParameter() any {
	return s.lastParamUsed
}

// OnNavigated registers a handler for completed navigations of the active Frame.
func (s *Service) OnNavigated(fn NavigatedFunc) Subscription {
	return s.navigated.Add(fn)
}

// RemoveNavigated unregisters a Navigated handler.
func (s *Service) RemoveNavigated(id Subscription) bool {
	return s.navigated.Remove(id)
}

// OnNavigationFailed registers a handler for failed navigations of the active Frame.
func (s *Service) OnNavigationFailed(fn NavigationFailedFunc) Subscription {
	return s.failed.Add(fn)
}

// RemoveNavigationFailed unregisters a NavigationFailed handler.
func (s *Service) RemoveNavigationFailed(id Subscription) bool {
	return s.failed.Remove(id)
}

func (s *Service) registerFrameEvents() {
	if s.frame == nil {
		return
	}
	s.navigatedSub = s.frame.OnNavigated(s.frameNavigated)
	s.failedSub = s.frame.OnNavigationFailed(s.frameNavigationFailed)
}

func (s *Service) unregisterFrameEvents() {
	if s.frame == nil {
		return
	}
	s.frame.RemoveNavigated(s.navigatedSub)
	s.frame.RemoveNavigationFailed(s.failedSub)
}

func (s *Service) frameNavigated(sender *Frame, e NavigatedEvent) {
	s.logger.Debug("Navigated", "page", e.Page, "mode", e.Mode.String())
	s.navigated.Each(func(fn NavigatedFunc) { fn(sender, e) })
}

func (s *Service) frameNavigationFailed(sender *Frame, e NavigationFailedEvent) {
	s.logger.Warn("Navigation failed", "page", e.Page, "error", e.Err)
	s.failed.Each(func(fn NavigationFailedFunc) { fn(sender, e) })
}
