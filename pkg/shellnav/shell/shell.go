// Package shell is the view model of the application shell: the menu, the back
// button and the header around the navigation frame.
//
// A Shell takes over the frame of the navigation service when it is created and
// keeps its state in sync with every completed navigation. Presentation layers
// read its properties and subscribe to OnPropertyChanged.
package shell

import (
	"log/slog"
	"reflect"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/errdefs"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/internal"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/navigation"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/theme"
)

// Property names a Shell property for change notifications.
type Property string

const (
	PropertyIsBackEnabled    Property = "IsBackEnabled"
	PropertySelected         Property = "Selected"
	PropertyHeader           Property = "Header"
	PropertyAlwaysShowHeader Property = "AlwaysShowHeader"
	PropertyRequestedTheme   Property = "RequestedTheme"
)

// PropertyChangedFunc handles a property change of the shell.
type PropertyChangedFunc func(sender *Shell, property Property)

// FailurePolicy decides what happens when a navigation fails.
type FailurePolicy func(e navigation.NavigationFailedEvent)

// PanicOnFailure is the default FailurePolicy. A page that cannot be shown is
// a programming error, so it panics with the navigation error.
func PanicOnFailure(e navigation.NavigationFailedEvent) {
	panic(e.Err)
}

// Option configures a Shell.
type Option func(*Shell)

// WithMenuItems sets the menu items in display order.
func WithMenuItems(items ...*MenuItem) Option {
	return func(s *Shell) {
		for _, item := range items {
			if item != nil {
				s.items = append(s.items, item)
			}
		}
	}
}

// WithSettingsPage adds the settings entry, shown apart from the menu items.
func WithSettingsPage(page navigation.Page) Option {
	return func(s *Shell) {
		s.settingsItem = &MenuItem{TitleKey: "Shell_Settings", Page: page}
	}
}

// WithDefaultHeader sets the header shown for pages without their own.
func WithDefaultHeader(header any) Option {
	return func(s *Shell) {
		s.defaultHeader = header
	}
}

// WithFailurePolicy replaces PanicOnFailure.
func WithFailurePolicy(policy FailurePolicy) Option {
	return func(s *Shell) {
		if policy != nil {
			s.onFailure = policy
		}
	}
}

// WithLogger sets the logger used by the shell.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		s.logger = logger
	}
}

// Shell tracks the menu selection, back button and header for the frame it
// hosts. It is owned by the UI goroutine.
type Shell struct {
	nav          *navigation.Service
	frame        *navigation.Frame
	items        []*MenuItem
	settingsItem *MenuItem

	isBackEnabled    bool
	selected         *MenuItem
	defaultHeader    any
	header           any
	alwaysShowHeader bool
	requestedTheme   theme.Theme

	navigatedSub navigation.Subscription
	failedSub    navigation.Subscription
	changed      internal.Observers[PropertyChangedFunc]
	onFailure    FailurePolicy

	logger *slog.Logger
}

// New creates a shell, installs a new frame as the frame of nav and starts
// tracking its navigations.
// It panics with an errdefs.ArgumentError if nav is nil.
func New(nav *navigation.Service, opts ...Option) *Shell {
	if nav == nil {
		panic(errdefs.NewArgumentError("nav"))
	}

	s := &Shell{
		nav:              nav,
		frame:            navigation.NewFrame(nav.Registry()),
		alwaysShowHeader: true,
		onFailure:        PanicOnFailure,
		logger:           internal.GetInternalLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.header = s.defaultHeader

	nav.SetFrame(s.frame)
	s.navigatedSub = nav.OnNavigated(s.frameNavigated)
	s.failedSub = nav.OnNavigationFailed(s.frameNavigationFailed)
	return s
}

// Close stops tracking navigations. The frame stays installed in the service.
func (s *Shell) Close() {
	s.nav.RemoveNavigated(s.navigatedSub)
	s.nav.RemoveNavigationFailed(s.failedSub)
}

// Frame returns the frame hosted by the shell.
func (s *Shell) Frame() *navigation.Frame {
	return s.frame
}

// MenuItems returns the menu items in display order.
func (s *Shell) MenuItems() []*MenuItem {
	items := make([]*MenuItem, len(s.items))
	copy(items, s.items)
	return items
}

// SettingsItem returns the settings entry, or nil if none was configured.
func (s *Shell) SettingsItem() *MenuItem {
	return s.settingsItem
}

// IsBackEnabled reports whether the back button should be enabled.
func (s *Shell) IsBackEnabled() bool {
	return s.isBackEnabled
}

// Selected returns the menu item of the current page, or nil if the page has
// no menu item.
func (s *Shell) Selected() *MenuItem {
	return s.selected
}

// Header returns the header for the current page, or nil when hidden.
func (s *Shell) Header() any {
	return s.header
}

// AlwaysShowHeader reports whether the header is shown in every layout.
func (s *Shell) AlwaysShowHeader() bool {
	return s.alwaysShowHeader
}

// RequestedTheme returns the theme last applied to the shell.
func (s *Shell) RequestedTheme() theme.Theme {
	return s.requestedTheme
}

// SetRequestedTheme applies t to the shell.
func (s *Shell) SetRequestedTheme(t theme.Theme) {
	set(s, &s.requestedTheme, t, PropertyRequestedTheme)
}

// InvokeItem navigates to the page of item. Returns whether a navigation happened.
func (s *Shell) InvokeItem(item *MenuItem) (bool, error) {
	if item == nil {
		return false, errdefs.NewArgumentError("item")
	}
	return s.nav.Navigate(item.Page, nil), nil
}

// InvokeTitle navigates to the page of the first menu item with the given
// localized title.
func (s *Shell) InvokeTitle(title string) (bool, error) {
	if s.settingsItem != nil && s.settingsItem.Title() == title {
		return s.InvokeItem(s.settingsItem)
	}
	for _, item := range s.items {
		if item.Title() == title {
			return s.InvokeItem(item)
		}
	}
	return false, errdefs.NewArgumentErrorMsg("title", "no menu item titled "+title)
}

// RequestBack handles the back button. Returns whether a navigation happened.
func (s *Shell) RequestBack() bool {
	return s.nav.GoBack()
}

// HandleAccelerator navigates back for the back accelerators. Returns whether
// the accelerator was handled.
func (s *Shell) HandleAccelerator(a Accelerator) bool {
	if !a.IsBack() {
		return false
	}
	return s.nav.GoBack()
}

// OnPropertyChanged registers a handler for property changes.
func (s *Shell) OnPropertyChanged(fn PropertyChangedFunc) navigation.Subscription {
	return s.changed.Add(fn)
}

// RemovePropertyChanged unregisters a property change handler.
func (s *Shell) RemovePropertyChanged(id navigation.Subscription) bool {
	return s.changed.Remove(id)
}

func (s *Shell) frameNavigated(_ *navigation.Frame, e navigation.NavigatedEvent) {
	set(s, &s.isBackEnabled, s.nav.CanGoBack(), PropertyIsBackEnabled)
	s.updateHeader(e.Content)

	if s.settingsItem != nil && e.Page == s.settingsItem.Page {
		set(s, &s.selected, s.settingsItem, PropertySelected)
		return
	}
	set(s, &s.selected, s.itemFor(e.Page), PropertySelected)
}

func (s *Shell) frameNavigationFailed(_ *navigation.Frame, e navigation.NavigationFailedEvent) {
	s.logger.Warn("Shell navigation failed", "page", e.Page, "error", e.Err)
	s.onFailure(e)
}

func (s *Shell) itemFor(page navigation.Page) *MenuItem {
	for _, item := range s.items {
		if item.Page == page {
			return item
		}
	}
	return nil
}

func (s *Shell) updateHeader(content any) {
	mode := HeaderAlways
	var pageHeader any
	if provider, ok := content.(HeaderProvider); ok {
		mode = provider.HeaderMode()
		pageHeader = provider.HeaderContext()
	}

	if mode == HeaderNever {
		s.setHeader(nil)
		set(s, &s.alwaysShowHeader, false, PropertyAlwaysShowHeader)
		return
	}

	header := pageHeader
	if header == nil {
		header = s.defaultHeader
	}
	s.setHeader(header)
	set(s, &s.alwaysShowHeader, mode == HeaderAlways, PropertyAlwaysShowHeader)
}

// setHeader compares by value since headers may hold uncomparable types.
func (s *Shell) setHeader(header any) {
	if reflect.DeepEqual(s.header, header) {
		return
	}
	s.header = header
	s.changed.Each(func(fn PropertyChangedFunc) { fn(s, PropertyHeader) })
}

// set stores value and notifies observers when it differs from the current one.
func set[T comparable](s *Shell, field *T, value T, property Property) {
	if *field == value {
		return
	}
	*field = value
	s.changed.Each(func(fn PropertyChangedFunc) { fn(s, property) })
}
