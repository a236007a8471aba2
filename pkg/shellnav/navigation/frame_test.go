package navigation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/errdefs"
)

const (
	chartPage    Page = "ChartPage"
	settingsPage Page = "SettingsPage"
	brokenPage   Page = "BrokenPage"
)

type testPage struct {
	page  Page
	param any
}

// newTestRegistry returns a registry of chart, settings and broken pages and a
// map counting how often each page was constructed.
func newTestRegistry() (*Registry, map[Page]int) {
	built := map[Page]int{}
	factory := func(p Page) PageFunc {
		return func(param any) (any, error) {
			built[p]++
			return &testPage{page: p, param: param}, nil
		}
	}

	r := NewRegistry().
		Register(chartPage, factory(chartPage)).
		Register(settingsPage, factory(settingsPage)).
		Register(brokenPage, func(any) (any, error) {
			built[brokenPage]++
			return nil, errors.New("template missing")
		})
	return r, built
}

func TestNewFrameNilRegistryPanics(t *testing.T) {
	assert.PanicsWithError(t, `shellnav: invalid argument "registry"`, func() {
		NewFrame(nil)
	})
}

func TestFrameStartsEmpty(t *testing.T) {
	r, _ := newTestRegistry()
	f := NewFrame(r)

	assert.Nil(t, f.Content())
	assert.Equal(t, Page(""), f.CurrentPage())
	assert.False(t, f.CanGoBack())
	assert.False(t, f.CanGoForward())
	assert.False(t, f.GoBack())
	assert.False(t, f.GoForward())

	_, ok := f.Current()
	assert.False(t, ok)
}

func TestFrameNavigateBuildsHistory(t *testing.T) {
	r, _ := newTestRegistry()
	f := NewFrame(r)

	require.True(t, f.Navigate(chartPage, "NASDAQ", TransitionDefault))
	require.True(t, f.Navigate(settingsPage, nil, TransitionDrillIn))

	assert.Equal(t, settingsPage, f.CurrentPage())
	assert.True(t, f.CanGoBack())
	assert.Equal(t, 1, f.BackStackDepth())

	require.True(t, f.GoBack())
	assert.Equal(t, chartPage, f.CurrentPage())
	assert.Equal(t, "NASDAQ", f.Content().(*testPage).param)
	assert.True(t, f.CanGoForward())

	require.True(t, f.GoForward())
	assert.Equal(t, settingsPage, f.CurrentPage())
	entry, ok := f.Current()
	require.True(t, ok)
	assert.Equal(t, TransitionDrillIn, entry.Transition)
}

func TestFrameNavigateClearsForwardHistory(t *testing.T) {
	r, _ := newTestRegistry()
	f := NewFrame(r)

	f.Navigate(chartPage, nil, TransitionDefault)
	f.Navigate(settingsPage, nil, TransitionDefault)
	f.GoBack()
	require.True(t, f.CanGoForward())

	f.Navigate(chartPage, "DOW", TransitionDefault)

	assert.False(t, f.CanGoForward())
	assert.Equal(t, 0, f.ForwardStackDepth())
	assert.Equal(t, 1, f.BackStackDepth())
}

func TestFrameNavigatedEventModes(t *testing.T) {
	r, _ := newTestRegistry()
	f := NewFrame(r)

	var modes []Mode
	f.OnNavigated(func(sender *Frame, e NavigatedEvent) {
		assert.Same(t, f, sender)
		assert.NotNil(t, e.Content)
		modes = append(modes, e.Mode)
	})

	f.Navigate(chartPage, nil, TransitionDefault)
	f.Navigate(settingsPage, nil, TransitionDefault)
	f.GoBack()
	f.GoForward()

	assert.Equal(t, []Mode{ModeNew, ModeNew, ModeBack, ModeForward}, modes)
}

func TestFrameNavigateUnregisteredPageFails(t *testing.T) {
	r, _ := newTestRegistry()
	f := NewFrame(r)
	f.Navigate(chartPage, nil, TransitionDefault)

	var failure *NavigationFailedEvent
	f.OnNavigationFailed(func(_ *Frame, e NavigationFailedEvent) {
		failure = &e
	})
	navigated := 0
	f.OnNavigated(func(*Frame, NavigatedEvent) { navigated++ })

	assert.False(t, f.Navigate("MissingPage", nil, TransitionDefault))

	require.NotNil(t, failure)
	assert.Equal(t, Page("MissingPage"), failure.Page)
	assert.True(t, errdefs.IsNavigationFailed(failure.Err))
	assert.ErrorIs(t, failure.Err, errdefs.ErrPageNotRegistered)
	assert.Equal(t, 0, navigated)
	assert.Equal(t, chartPage, f.CurrentPage())
	assert.False(t, f.CanGoBack())
}

func TestFrameFactoryErrorFails(t *testing.T) {
	r, built := newTestRegistry()
	f := NewFrame(r)

	var failure error
	f.OnNavigationFailed(func(_ *Frame, e NavigationFailedEvent) {
		failure = e.Err
	})

	assert.False(t, f.Navigate(brokenPage, nil, TransitionDefault))
	assert.Equal(t, 1, built[brokenPage])
	require.Error(t, failure)
	assert.Contains(t, failure.Error(), "template missing")
	assert.Nil(t, f.Content())
}

func TestFrameNilContentFails(t *testing.T) {
	r := NewRegistry().Register("Empty", func(any) (any, error) { return nil, nil })
	f := NewFrame(r)

	failed := false
	f.OnNavigationFailed(func(*Frame, NavigationFailedEvent) { failed = true })

	assert.False(t, f.Navigate("Empty", nil, TransitionDefault))
	assert.True(t, failed)
}

func TestFrameGoBackFailureKeepsHistory(t *testing.T) {
	fail := false
	r := NewRegistry().
		Register(chartPage, func(any) (any, error) {
			if fail {
				return nil, errors.New("chart data unavailable")
			}
			return &testPage{page: chartPage}, nil
		}).
		Register(settingsPage, func(any) (any, error) { return &testPage{page: settingsPage}, nil })
	f := NewFrame(r)

	f.Navigate(chartPage, nil, TransitionDefault)
	f.Navigate(settingsPage, nil, TransitionDefault)

	fail = true
	assert.False(t, f.GoBack())
	assert.Equal(t, settingsPage, f.CurrentPage())
	assert.True(t, f.CanGoBack())

	fail = false
	assert.True(t, f.GoBack())
	assert.Equal(t, chartPage, f.CurrentPage())
}

func TestFrameCachedPagesAreReused(t *testing.T) {
	built := 0
	r := NewRegistry().
		Register(chartPage, func(param any) (any, error) {
			built++
			return &testPage{page: chartPage, param: param}, nil
		}, WithCache()).
		Register(settingsPage, func(any) (any, error) { return &testPage{page: settingsPage}, nil })
	f := NewFrame(r)

	f.Navigate(chartPage, "MSFT", TransitionDefault)
	first := f.Content()
	f.Navigate(settingsPage, nil, TransitionDefault)
	f.GoBack()

	assert.Equal(t, 1, built)
	assert.Same(t, first, f.Content())

	f.Navigate(chartPage, "AAPL", TransitionDefault)
	assert.Equal(t, 2, built)
}

func TestFrameUncachedPagesAreRebuilt(t *testing.T) {
	r, built := newTestRegistry()
	f := NewFrame(r)

	f.Navigate(chartPage, nil, TransitionDefault)
	f.Navigate(settingsPage, nil, TransitionDefault)
	f.GoBack()

	assert.Equal(t, 2, built[chartPage])
}

func TestFrameSetCacheSizeZeroDisablesCache(t *testing.T) {
	built := 0
	r := NewRegistry().Register(chartPage, func(any) (any, error) {
		built++
		return &testPage{}, nil
	}, WithCache())
	f := NewFrame(r)
	f.SetCacheSize(0)

	f.Navigate(chartPage, nil, TransitionDefault)
	f.Navigate(chartPage, nil, TransitionDefault)

	assert.Equal(t, 2, built)
}

func TestFrameRemoveNavigated(t *testing.T) {
	r, _ := newTestRegistry()
	f := NewFrame(r)

	hits := 0
	id := f.OnNavigated(func(*Frame, NavigatedEvent) { hits++ })
	f.Navigate(chartPage, nil, TransitionDefault)
	require.True(t, f.RemoveNavigated(id))
	f.Navigate(settingsPage, nil, TransitionDefault)

	assert.Equal(t, 1, hits)
}
