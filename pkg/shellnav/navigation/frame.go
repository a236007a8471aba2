package navigation

import (
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/errdefs"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/internal"
)

// Frame is the display surface: it hosts the content of the current page and
// keeps the back and forward history.
//
// Navigated fires after every successful navigation, whether it was requested
// through a Service or directly on the Frame. NavigationFailed fires when the
// page is not registered or its factory fails; the frame state is left unchanged.
//
// A Frame is not safe for concurrent use; it belongs to the UI goroutine.
type Frame struct {
	registry *Registry
	current  *Entry
	content  any
	back     *Stack
	forward  *Stack
	cache    *pageCache

	navigated internal.Observers[NavigatedFunc]
	failed    internal.Observers[NavigationFailedFunc]
}

// NewFrame creates an empty frame that resolves pages through registry.
// It panics with an errdefs.ArgumentError if registry is nil.
func NewFrame(registry *Registry) *Frame {
	if registry == nil {
		panic(errdefs.NewArgumentError("registry"))
	}
	return &Frame{
		registry: registry,
		back:     NewStack(),
		forward:  NewStack(),
		cache:    newPageCache(),
	}
}

// Content returns the content of the current page, or nil when nothing is shown.
func (f *Frame) Content() any {
	return f.content
}

// CurrentPage returns the page currently shown, or "" when nothing is shown.
func (f *Frame) CurrentPage() Page {
	if f.current == nil {
		return ""
	}
	return f.current.Page
}

// Current returns the entry currently shown.
func (f *Frame) Current() (Entry, bool) {
	if f.current == nil {
		return Entry{}, false
	}
	return *f.current, true
}

func (f *Frame) CanGoBack() bool {
	return !f.back.IsEmpty()
}

func (f *Frame) CanGoForward() bool {
	return !f.forward.IsEmpty()
}

// BackStackDepth returns the number of entries behind the current page.
func (f *Frame) BackStackDepth() int {
	return f.back.Len()
}

// ForwardStackDepth returns the number of entries ahead of the current page.
func (f *Frame) ForwardStackDepth() int {
	return f.forward.Len()
}

// SetCacheSize changes how many cached pages the frame keeps alive.
// Shrinking the cache evicts the least recently used pages.
func (f *Frame) SetCacheSize(size int) {
	f.cache.resize(size)
}

// Navigate constructs page with parameter and shows it, pushing the current page
// onto the back history and clearing the forward history.
// Returns false if the page could not be constructed.
func (f *Frame) Navigate(page Page, parameter any, transition Transition) bool {
	content, err := f.resolve(page, parameter)
	if err != nil {
		f.fail(page, err)
		return false
	}

	if f.current != nil {
		f.back.Push(*f.current)
	}
	f.forward.Clear()

	f.show(Entry{Page: page, Parameter: parameter, Transition: transition}, content, ModeNew)
	return true
}

// GoBack restores the previous history entry.
// Returns false if there is no back history or the page could not be constructed.
func (f *Frame) GoBack() bool {
	return f.restore(f.back, f.forward, ModeBack)
}

// GoForward restores the next history entry.
// Returns false if there is no forward history or the page could not be constructed.
func (f *Frame) GoForward() bool {
	return f.restore(f.forward, f.back, ModeForward)
}

// OnNavigated registers a handler for completed navigations.
func (f *Frame) OnNavigated(fn NavigatedFunc) Subscription {
	return f.navigated.Add(fn)
}

// RemoveNavigated unregisters a Navigated handler.
func (f *Frame) RemoveNavigated(id Subscription) bool {
	return f.navigated.Remove(id)
}

// OnNavigationFailed registers a handler for failed navigations.
func (f *Frame) OnNavigationFailed(fn NavigationFailedFunc) Subscription {
	return f.failed.Add(fn)
}

// RemoveNavigationFailed unregisters a NavigationFailed handler.
func (f *Frame) RemoveNavigationFailed(id Subscription) bool {
	return f.failed.Remove(id)
}

func (f *Frame) restore(from, to *Stack, mode Mode) bool {
	next := from.Peek()
	if next == nil {
		return false
	}

	content, err := f.resolve(next.Page, next.Parameter)
	if err != nil {
		f.fail(next.Page, err)
		return false
	}

	entry := *from.Pop()
	if f.current != nil {
		to.Push(*f.current)
	}

	f.show(entry, content, mode)
	return true
}

func (f *Frame) show(entry Entry, content any, mode Mode) {
	f.current = &entry
	f.content = content

	e := NavigatedEvent{
		Page:       entry.Page,
		Parameter:  entry.Parameter,
		Content:    content,
		Mode:       mode,
		Transition: entry.Transition,
	}
	f.navigated.Each(func(fn NavigatedFunc) { fn(f, e) })
}

func (f *Frame) resolve(page Page, parameter any) (any, error) {
	spec, err := f.registry.lookup(page)
	if err != nil {
		return nil, err
	}

	if !spec.cached {
		return f.registry.construct(page, parameter)
	}

	if content, ok := f.cache.get(page, parameter); ok {
		return content, nil
	}

	content, err := f.registry.construct(page, parameter)
	if err != nil {
		return nil, err
	}
	f.cache.set(page, parameter, content)
	return content, nil
}

func (f *Frame) fail(page Page, err error) {
	e := NavigationFailedEvent{
		Page: page,
		Err:  errdefs.NewNavigationError(string(page), err),
	}
	f.failed.Each(func(fn NavigationFailedFunc) { fn(f, e) })
}
