package activation

import (
	"context"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/navigation"
)

const (
	chartPage    navigation.Page = "ChartPage"
	settingsPage navigation.Page = "SettingsPage"
)

type chart struct {
	symbol any
}

type fakeWindow struct {
	content     any
	activations int
	err         error
}

func (w *fakeWindow) Content() any { return w.content }

func (w *fakeWindow) SetContent(content any) { w.content = content }

func (w *fakeWindow) Activate(context.Context) error {
	w.activations++
	return w.err
}

// newNav returns a navigation service and a counter of constructed charts.
func newNav() (*navigation.Service, *int) {
	built := 0
	registry := navigation.NewRegistry().
		Register(chartPage, func(p any) (any, error) {
			built++
			return &chart{symbol: p}, nil
		}).
		Register(settingsPage, func(any) (any, error) {
			return struct{}{}, nil
		})
	return navigation.NewService(registry), &built
}
