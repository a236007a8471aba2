package activation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/errdefs"
)

func TestKindInteractive(t *testing.T) {
	assert.True(t, KindLaunch.Interactive())
	assert.True(t, KindForeground.Interactive())
	assert.False(t, KindBackground.Interactive())
	assert.Equal(t, "Foreground", KindForeground.String())
	assert.Equal(t, "Unknown", Kind(42).String())
}

func TestNewHandlerNilActionPanics(t *testing.T) {
	assert.Panics(t, func() { NewHandler[LaunchEvent](nil) })
}

func TestTypedHandlerRejectsOtherEventTypes(t *testing.T) {
	h := NewHandler(func(context.Context, ForegroundEvent) error { return nil })

	assert.True(t, h.CanHandle(ForegroundEvent{Source: "toast"}))
	assert.False(t, h.CanHandle(LaunchEvent{}))
	assert.False(t, h.CanHandle(BackgroundEvent{}))
	assert.False(t, h.CanHandle(nil))
}

func TestTypedHandlerPredicate(t *testing.T) {
	h := NewHandler(
		func(context.Context, ForegroundEvent) error { return nil },
		WithPredicate(func(ev ForegroundEvent) bool { return ev.Source == "toast" }),
	)

	assert.True(t, h.CanHandle(ForegroundEvent{Source: "toast"}))
	assert.False(t, h.CanHandle(ForegroundEvent{Source: "share"}))
}

func TestTypedHandlerHandle(t *testing.T) {
	var got BackgroundEvent
	boom := errors.New("boom")
	h := NewHandler(func(_ context.Context, ev BackgroundEvent) error {
		got = ev
		return boom
	})

	err := h.Handle(context.Background(), BackgroundEvent{Task: "sync"})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "sync", got.Task)
}

func TestTypedHandlerHandleWrongType(t *testing.T) {
	called := false
	h := NewHandler(func(context.Context, BackgroundEvent) error {
		called = true
		return nil
	})

	err := h.Handle(context.Background(), LaunchEvent{})
	require.Error(t, err)
	assert.True(t, errdefs.IsInvalidArgument(err))
	assert.False(t, called)
}

func TestArgumentOnlyFromLaunch(t *testing.T) {
	assert.Equal(t, "NASDAQ", argument(LaunchEvent{Arguments: "NASDAQ"}))
	assert.Nil(t, argument(LaunchEvent{}))
	assert.Nil(t, argument(ForegroundEvent{Source: "NASDAQ"}))
}
