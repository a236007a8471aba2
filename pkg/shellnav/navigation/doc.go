// Package navigation provides single-surface page navigation with history.
//
// A Registry maps Page identifiers to the functions that construct them. A Frame
// is the one display surface: it shows the current page and keeps the back and
// forward history. A Service owns the Frame, suppresses redundant navigation to
// the page already shown, and re-broadcasts the Frame's lifecycle events.
//
// # Basic Usage
//
//	const (
//	    ChartPage    navigation.Page = "ChartPage"
//	    SettingsPage navigation.Page = "SettingsPage"
//	)
//
//	registry := navigation.NewRegistry().
//	    Register(ChartPage, func(param any) (any, error) {
//	        symbol, _ := param.(string)
//	        return newChart(symbol), nil
//	    }).
//	    Register(SettingsPage, func(any) (any, error) {
//	        return newSettings(), nil
//	    }, navigation.WithCache())
//
//	nav := navigation.NewService(registry)
//
//	nav.OnNavigated(func(_ *navigation.Frame, e navigation.NavigatedEvent) {
//	    backButton.SetEnabled(nav.CanGoBack())
//	})
//
//	nav.Navigate(ChartPage, "NASDAQ") // true
//	nav.Navigate(ChartPage, "NASDAQ") // false, already shown
//	nav.Navigate(SettingsPage, nil)   // true
//	nav.GoBack()                      // back to the NASDAQ chart
//
// # Redundant Navigation
//
// Navigate is a no-op when the requested page is already current and the
// parameter is nil or equal to the parameter of the last accepted navigation.
// Navigating the Frame directly bypasses this check.
//
// # Threading
//
// Frames and Services are owned by the UI goroutine and are not safe for
// concurrent use. Marshal work from other goroutines through a ui.Dispatcher.
package navigation
