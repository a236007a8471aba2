package ui

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/activation"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/navigation"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/theme"
)

var (
	_ activation.Window = (*Window)(nil)
	_ theme.View        = (*Window)(nil)
)

func TestWindowContentAndActivation(t *testing.T) {
	w := NewWindow(WithTitle("Stocks"))

	assert.Equal(t, "Stocks", w.Title())
	assert.Nil(t, w.Content())

	w.SetContent("shell")
	require.NoError(t, w.Activate(context.Background()))
	require.NoError(t, w.Activate(context.Background()))

	assert.Equal(t, "shell", w.Content())
	assert.Equal(t, 2, w.Activations())
}

func TestWindowRunOnUIWithoutDispatcher(t *testing.T) {
	w := NewWindow()
	ran := false

	require.NoError(t, w.RunOnUI(context.Background(), func() { ran = true }))
	assert.True(t, ran)
	assert.Error(t, w.RunOnUI(context.Background(), nil))
}

func TestWindowRunOnUIThroughDispatcher(t *testing.T) {
	d := NewDispatcher()
	startLoop(t, d)
	w := NewWindow(WithDispatcher(d))

	done := false
	require.NoError(t, w.RunOnUI(context.Background(), func() { done = true }))
	assert.True(t, done)
}

func TestActivationOnRunningLoop(t *testing.T) {
	d := NewDispatcher()
	startLoop(t, d)
	w := NewWindow(WithDispatcher(d))

	registry := navigation.NewRegistry().
		Register("ChartPage", func(p any) (any, error) { return p, nil })
	nav := navigation.NewService(registry)

	applied := 0
	svc := activation.NewService(w, nav, "ChartPage",
		activation.WithStartup(func(ctx context.Context) error {
			return w.RunOnUI(ctx, func() { applied++ })
		}),
	)

	finished := make(chan error, 2)
	for i := 0; i < 2; i++ {
		require.True(t, d.Post(func() {
			finished <- svc.Activate(context.Background(), activation.LaunchEvent{Arguments: "NASDAQ"})
		}))
	}

	for i := 0; i < 2; i++ {
		select {
		case err := <-finished:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("activation on the UI loop did not complete")
		}
	}

	assert.Equal(t, 2, w.Activations())
	assert.Equal(t, 2, applied)
	assert.EqualValues(t, 2, svc.Completed())
	assert.Equal(t, navigation.Page("ChartPage"), nav.Frame().CurrentPage())
}
