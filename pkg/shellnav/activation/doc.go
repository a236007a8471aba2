// Package activation routes external activation events to the code that should
// respond to them.
//
// An activation is any external event that brings the application to the
// foreground or asks it to do work: a launch, a notification tap, a background
// task. The Service prepares the window for interactive events and walks an
// ordered chain of Handlers; the first handler whose CanHandle returns true is
// invoked. Independently, a DefaultHandler navigates to the default page when an
// interactive event finds the navigation frame empty.
//
// # Basic Usage
//
//	nav := navigation.NewService(registry)
//
//	toast := activation.NewHandler(func(ctx context.Context, ev activation.ForegroundEvent) error {
//	    nav.Navigate(AlertsPage, ev.Source)
//	    return nil
//	})
//
//	svc := activation.NewService(window, nav, ChartPage,
//	    activation.WithHandlers(toast),
//	    activation.WithInitializer(themes.Initialize),
//	    activation.WithStartup(themes.Apply),
//	)
//
//	err := svc.Activate(ctx, activation.LaunchEvent{Arguments: "NASDAQ"})
//
// # Ordering
//
// A matched handler and the DefaultHandler may both run for the same event.
// The default handler only acts when nothing is displayed, so a handler that
// navigates first keeps it from firing.
package activation
