package input

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/shell"
)

// scriptedReader returns its events in order, then blocks until closed.
type scriptedReader struct {
	mu     sync.Mutex
	events []evdev.InputEvent
	closed chan struct{}
	once   sync.Once
	closes int
}

func newScriptedReader(events ...evdev.InputEvent) *scriptedReader {
	return &scriptedReader{events: events, closed: make(chan struct{})}
}

func (r *scriptedReader) ReadOne() (*evdev.InputEvent, error) {
	r.mu.Lock()
	if len(r.events) > 0 {
		ev := r.events[0]
		r.events = r.events[1:]
		r.mu.Unlock()
		return &ev, nil
	}
	r.mu.Unlock()

	<-r.closed
	return nil, io.EOF
}

func (r *scriptedReader) Close() error {
	r.mu.Lock()
	r.closes++
	r.mu.Unlock()
	r.once.Do(func() { close(r.closed) })
	return nil
}

func TestNewListenerNilArguments(t *testing.T) {
	assert.Panics(t, func() { NewListener(nil, func(shell.Accelerator) {}) })
	assert.Panics(t, func() { NewListener(newScriptedReader(), nil) })
}

func TestListenerReportsBackAccelerators(t *testing.T) {
	reader := newScriptedReader(
		key(evdev.KEY_LEFT, 1),
		key(evdev.KEY_BACK, 1),
		key(evdev.KEY_LEFTALT, 1),
		key(evdev.KEY_LEFT, 1),
	)

	got := make(chan shell.Accelerator, 4)
	l := NewListener(reader, func(a shell.Accelerator) { got <- a })

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()

	assert.Equal(t, shell.Accelerator{Key: shell.KeyGoBack}, <-got)
	assert.Equal(t, shell.Accelerator{Key: shell.KeyLeft, Modifiers: shell.ModAlt}, <-got)

	cancel()
	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("listener did not stop")
	}
	assert.Empty(t, got)
}

func TestListenerAllAccelerators(t *testing.T) {
	reader := newScriptedReader(key(evdev.KEY_LEFT, 1))

	got := make(chan shell.Accelerator, 1)
	l := NewListener(reader, func(a shell.Accelerator) { got <- a }, WithAllAccelerators())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = l.Run(ctx) }()

	assert.Equal(t, shell.Accelerator{Key: shell.KeyLeft}, <-got)
}

type failingReader struct{}

func (failingReader) ReadOne() (*evdev.InputEvent, error) { return nil, errors.New("device gone") }
func (failingReader) Close() error                        { return nil }

func TestListenerReadError(t *testing.T) {
	l := NewListener(failingReader{}, func(shell.Accelerator) {})

	err := l.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device gone")
}

func TestListenerCloseOnce(t *testing.T) {
	reader := newScriptedReader()
	l := NewListener(reader, func(shell.Accelerator) {})

	require.NoError(t, l.Close())
	require.NoError(t, l.Close())
	assert.Equal(t, 1, reader.closes)
}

func TestOpenMissingDevice(t *testing.T) {
	_, err := Open("/nonexistent/input/event99", func(shell.Accelerator) {})
	assert.Error(t, err)

	_, err = Open("/nonexistent/input/event99", nil)
	assert.Error(t, err)
}
