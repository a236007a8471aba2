package ui

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/errdefs"
)

// startLoop runs d on its own goroutine and stops it when the test ends.
func startLoop(t *testing.T, d *Dispatcher) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		_ = d.Run(ctx)
	}()
	require.Eventually(t, d.IsRunning, time.Second, time.Millisecond)
	t.Cleanup(func() {
		cancel()
		<-stopped
	})
}

func TestRunAsyncInlineWhenNotRunning(t *testing.T) {
	d := NewDispatcher()
	ran := false

	require.NoError(t, d.RunAsync(context.Background(), func() { ran = true }))
	assert.True(t, ran)
}

func TestRunAsyncNilFunc(t *testing.T) {
	err := NewDispatcher().RunAsync(context.Background(), nil)
	assert.True(t, errdefs.IsInvalidArgument(err))
}

func TestRunAsyncExecutesOnLoop(t *testing.T) {
	d := NewDispatcher()
	startLoop(t, d)

	var mu sync.Mutex
	order := []int{}
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, d.RunAsync(context.Background(), func() {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
			}))
		}(i)
	}
	wg.Wait()

	assert.Len(t, order, 10)
}

func TestRunAsyncInlineOnUIContext(t *testing.T) {
	d := NewDispatcher()
	require.True(t, d.Start())
	defer d.Stop()

	ctx := d.UIContext(context.Background())
	ran := false
	require.NoError(t, d.RunAsync(ctx, func() { ran = true }))

	assert.True(t, ran)
	assert.True(t, d.OnUI(ctx))
	assert.False(t, NewDispatcher().OnUI(ctx))
	assert.False(t, d.OnUI(context.Background()))
}

func TestRunAsyncContextDone(t *testing.T) {
	d := NewDispatcher()
	require.True(t, d.Start())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	ran := false
	errs := make(chan error, 1)
	go func() {
		errs <- d.RunAsync(ctx, func() { ran = true })
	}()
	assert.ErrorIs(t, <-errs, context.DeadlineExceeded)
	assert.False(t, ran)

	d.Stop()
	assert.True(t, ran)
}

func TestRunAsyncInlineFromLoopWork(t *testing.T) {
	d := NewDispatcher()
	startLoop(t, d)

	finished := make(chan error, 1)
	nested := false
	require.True(t, d.Post(func() {
		finished <- d.RunAsync(context.Background(), func() { nested = true })
	}))

	select {
	case err := <-finished:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("nested RunAsync on the loop goroutine did not return")
	}
	assert.True(t, nested)
}

func TestRunAsyncInlineOnStartingGoroutine(t *testing.T) {
	d := NewDispatcher()
	require.True(t, d.Start())
	defer d.Stop()

	ran := false
	require.NoError(t, d.RunAsync(context.Background(), func() { ran = true }))
	assert.True(t, ran)
	assert.Equal(t, 0, d.Drain())
}

func TestGoroutineID(t *testing.T) {
	id := goroutineID()
	assert.NotZero(t, id)
	assert.Equal(t, id, goroutineID())

	other := make(chan uint64)
	go func() { other <- goroutineID() }()
	assert.NotEqual(t, id, <-other)
}

func TestRunTwice(t *testing.T) {
	d := NewDispatcher()
	startLoop(t, d)

	assert.ErrorIs(t, d.Run(context.Background()), ErrDispatcherRunning)
	assert.False(t, d.Start())
}

func TestRunReturnsContextError(t *testing.T) {
	d := NewDispatcher()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, d.Run(ctx), context.Canceled)
	assert.False(t, d.IsRunning())
}

func TestPostAndDrain(t *testing.T) {
	d := NewDispatcher()
	var got []int

	assert.True(t, d.Post(func() { got = append(got, 1) }))
	assert.True(t, d.Post(func() { got = append(got, 2) }))
	assert.False(t, d.Post(nil))

	assert.Equal(t, 2, d.Drain())
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 0, d.Drain())
}

func TestPostQueueFull(t *testing.T) {
	d := NewDispatcher()
	for i := 0; i < defaultQueueSize; i++ {
		require.True(t, d.Post(func() {}))
	}

	assert.False(t, d.Post(func() {}))
	assert.Equal(t, defaultQueueSize, d.Drain())
}
