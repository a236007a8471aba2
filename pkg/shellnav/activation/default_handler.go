package activation

import (
	"context"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/errdefs"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/navigation"
)

// DefaultHandler shows the default page when an interactive activation finds
// the navigation frame empty.
type DefaultHandler struct {
	nav  *navigation.Service
	page navigation.Page
}

// NewDefaultHandler creates a handler navigating nav to page.
// It panics with an errdefs.ArgumentError if nav is nil.
func NewDefaultHandler(nav *navigation.Service, page navigation.Page) *DefaultHandler {
	if nav == nil {
		panic(errdefs.NewArgumentError("nav"))
	}
	return &DefaultHandler{nav: nav, page: page}
}

// Page returns the configured default page.
func (h *DefaultHandler) Page() navigation.Page {
	return h.page
}

// CanHandle is true for interactive events when a default page is configured
// and the frame has no content.
func (h *DefaultHandler) CanHandle(ev Event) bool {
	if ev == nil || !ev.Kind().Interactive() || h.page == "" {
		return false
	}
	return h.nav.Frame().Content() == nil
}

// Handle navigates to the default page. The argument of a LaunchEvent becomes
// the navigation parameter; every other event navigates without one.
//
// A failed navigation is reported through the service's NavigationFailed event,
// not as an error.
func (h *DefaultHandler) Handle(_ context.Context, ev Event) error {
	h.nav.Navigate(h.page, argument(ev))
	return nil
}
