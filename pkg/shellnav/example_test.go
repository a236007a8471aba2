package shellnav_test

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/activation"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/navigation"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/shell"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/ui"
)

const (
	ChartPage    navigation.Page = "ChartPage"
	SettingsPage navigation.Page = "SettingsPage"
)

// Example demonstrates launching into the default page and navigating with the
// shell menu and back accelerator.
func Example() {
	registry := navigation.NewRegistry().
		Register(ChartPage, func(param any) (any, error) { return fmt.Sprint("chart ", param), nil }).
		Register(SettingsPage, func(any) (any, error) { return "settings", nil })

	window := ui.NewWindow()
	app, err := shellnav.New(shellnav.Options{
		Registry:    registry,
		Window:      window,
		DefaultPage: ChartPage,
		Shell: func(nav *navigation.Service) any {
			return shell.New(nav,
				shell.WithMenuItems(&shell.MenuItem{TitleKey: "Shell_Chart", Page: ChartPage}),
				shell.WithSettingsPage(SettingsPage),
			)
		},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer app.Close()

	ctx := context.Background()
	_ = app.OnLaunched(ctx, activation.LaunchEvent{Arguments: "NASDAQ"})

	s := window.Content().(*shell.Shell)
	fmt.Println(app.Navigation().Frame().Content(), s.Selected().Title(), s.IsBackEnabled())

	_, _ = s.InvokeItem(s.SettingsItem())
	fmt.Println(app.Navigation().Frame().Content(), s.Selected().Title(), s.IsBackEnabled())

	s.HandleAccelerator(shell.Accelerator{Key: shell.KeyLeft, Modifiers: shell.ModAlt})
	fmt.Println(app.Navigation().Frame().Content(), s.Selected().Title(), s.IsBackEnabled())

	// Output:
	// chart NASDAQ Chart false
	// settings Settings true
	// chart NASDAQ Chart false
}
