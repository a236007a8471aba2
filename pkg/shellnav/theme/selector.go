package theme

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/constants"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/errdefs"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/internal"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/settings"
)

// Themeable is implemented by view content that can change its appearance.
type Themeable interface {
	SetRequestedTheme(t Theme)
}

// View is an open window whose content receives the requested theme.
type View interface {
	// RunOnUI runs fn on the goroutine that owns the view and waits for it.
	RunOnUI(ctx context.Context, fn func()) error
	Content() any
}

// Option configures a Selector.
type Option func(*Selector)

// WithViews registers the views the theme is applied to.
func WithViews(views ...View) Option {
	return func(s *Selector) {
		for _, v := range views {
			if v != nil {
				s.views = append(s.views, v)
			}
		}
	}
}

// WithLogger sets the logger used by the selector.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Selector) {
		s.logger = logger
	}
}

// Selector owns the requested theme, persists it in a settings container and
// applies it to the registered views.
type Selector struct {
	store *settings.Container

	mu    sync.RWMutex
	theme Theme
	views []View

	logger *slog.Logger
}

// NewSelector creates a selector persisting to store. The theme is Default
// until Initialize loads the stored value.
// It panics with an errdefs.ArgumentError if store is nil.
func NewSelector(store *settings.Container, opts ...Option) *Selector {
	if store == nil {
		panic(errdefs.NewArgumentError("store"))
	}

	s := &Selector{
		store:  store,
		theme:  Default,
		logger: internal.GetInternalLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddView registers another view to apply the theme to.
func (s *Selector) AddView(v View) {
	if v == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views = append(s.views, v)
}

// Theme returns the current requested theme.
func (s *Selector) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Initialize loads the stored theme. A missing or unreadable value leaves the
// theme at Default.
func (s *Selector) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t := s.load(ctx)

	s.mu.Lock()
	s.theme = t
	s.mu.Unlock()
	return nil
}

// SetTheme applies t to every view and then persists it.
func (s *Selector) SetTheme(ctx context.Context, t Theme) error {
	s.mu.Lock()
	s.theme = t
	s.mu.Unlock()

	if err := s.Apply(ctx); err != nil {
		return err
	}
	if err := settings.Save(ctx, s.store, constants.ThemeSettingsKey, t.String()); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// Apply sets the current theme on the content of every registered view, on
// that view's UI goroutine. Content that is not Themeable is skipped.
func (s *Selector) Apply(ctx context.Context) error {
	s.mu.RLock()
	t := s.theme
	views := make([]View, len(s.views))
	copy(views, s.views)
	s.mu.RUnlock()

	for _, v := range views {
		view := v
		err := view.RunOnUI(ctx, func() {
			if themeable, ok := view.Content().(Themeable); ok {
				themeable.SetRequestedTheme(t)
			}
		})
		if err != nil {
			return fmt.Errorf("apply theme: %w", err)
		}
	}
	return nil
}

func (s *Selector) load(ctx context.Context) Theme {
	name, err := settings.Read[string](ctx, s.store, constants.ThemeSettingsKey)
	if err != nil {
		s.logger.Warn("Failed to read theme setting", "error", err)
		return Default
	}
	if name == "" {
		return Default
	}

	t, err := Parse(name)
	if err != nil {
		s.logger.Warn("Ignoring stored theme", "value", name, "error", err)
		return Default
	}
	return t
}
