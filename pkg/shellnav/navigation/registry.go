package navigation

import (
	"fmt"
	"sort"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/errdefs"
)

// Page is a type-safe identifier for a navigable screen.
// Applications should define their own Page constants.
//
// Example:
//
//	const (
//	    ChartPage    navigation.Page = "ChartPage"
//	    SettingsPage navigation.Page = "SettingsPage"
//	)
type Page string

// PageFunc constructs the content of a page for the given navigation parameter.
// The parameter is nil when the navigation carried none.
type PageFunc func(parameter any) (content any, err error)

// PageOption configures how a registered page is constructed.
type PageOption func(*pageSpec)

// WithCache keeps the constructed content of the page in the frame's page cache,
// so navigating back to the same page and parameter reuses it.
func WithCache() PageOption {
	return func(s *pageSpec) {
		s.cached = true
	}
}

type pageSpec struct {
	fn     PageFunc
	cached bool
}

// Registry maps pages to the functions that construct them.
// A Frame resolves every navigation through its Registry.
type Registry struct {
	pages map[Page]pageSpec
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		pages: make(map[Page]pageSpec),
	}
}

// Register adds a page to the registry, replacing any previous registration.
func (r *Registry) Register(page Page, fn PageFunc, opts ...PageOption) *Registry {
	spec := pageSpec{fn: fn}
	for _, opt := range opts {
		opt(&spec)
	}
	r.pages[page] = spec
	return r
}

// IsRegistered reports whether a factory exists for the page.
func (r *Registry) IsRegistered(page Page) bool {
	_, ok := r.pages[page]
	return ok
}

// Pages returns the registered pages in lexical order.
func (r *Registry) Pages() []Page {
	pages := make([]Page, 0, len(r.pages))
	for p := range r.pages {
		pages = append(pages, p)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i] < pages[j] })
	return pages
}

func (r *Registry) lookup(page Page) (pageSpec, error) {
	spec, ok := r.pages[page]
	if !ok || spec.fn == nil {
		return pageSpec{}, fmt.Errorf("%w: %q", errdefs.ErrPageNotRegistered, page)
	}
	return spec, nil
}

func (r *Registry) construct(page Page, parameter any) (any, error) {
	spec, err := r.lookup(page)
	if err != nil {
		return nil, err
	}

	content, err := spec.fn(parameter)
	if err != nil {
		return nil, fmt.Errorf("construct page %q: %w", page, err)
	}
	if content == nil {
		return nil, fmt.Errorf("construct page %q: factory returned no content", page)
	}
	return content, nil
}
