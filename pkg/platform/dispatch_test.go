package platform

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/safearea/pkg/errors"
)

func startLooper(t *testing.T) *Looper {
	t.Helper()
	l := NewLooper()
	go func() { _ = l.Run(context.Background()) }()
	t.Cleanup(func() {
		l.Close()
		<-l.Done()
	})
	return l
}

func TestLooperRunsInOrder(t *testing.T) {
	l := startLooper(t)

	var mu sync.Mutex
	var got []int
	for i := range 50 {
		require.NoError(t, l.Dispatch(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		}))
	}
	require.NoError(t, DispatchSync(context.Background(), l, func() {}))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 50)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestLooperRejectsAfterClose(t *testing.T) {
	l := NewLooper()
	done := make(chan error, 1)
	go func() { done <- l.Run(context.Background()) }()

	ran := make(chan struct{})
	require.NoError(t, l.Dispatch(func() { close(ran) }))
	l.Close()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Close")
	}
	<-ran

	assert.ErrorIs(t, l.Dispatch(func() {}), ErrClosed)
	assert.ErrorIs(t, DispatchSync(context.Background(), l, func() {}), ErrClosed)
}

func TestLooperStopsOnContextCancel(t *testing.T) {
	l := NewLooper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.ErrorIs(t, l.Dispatch(func() {}), ErrClosed)
}

func TestLooperRecoversPanics(t *testing.T) {
	var captured *errors.PanicError
	var mu sync.Mutex
	errors.SetHandler(&panicRecorder{fn: func(p *errors.PanicError) {
		mu.Lock()
		captured = p
		mu.Unlock()
	}})
	t.Cleanup(func() { errors.SetHandler(nil) })

	l := startLooper(t)
	require.NoError(t, l.Dispatch(func() { panic("boom") }))
	require.NoError(t, DispatchSync(context.Background(), l, func() {}))

	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, captured)
	assert.Equal(t, "platform.Looper", captured.Op)
	assert.Equal(t, "boom", captured.Value)
}

func TestDispatchSyncHonorsContext(t *testing.T) {
	// A looper that never runs its queue.
	l := NewLooper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, DispatchSync(ctx, l, func() {}), context.DeadlineExceeded)
}

func TestImmediateDispatcher(t *testing.T) {
	ran := false
	require.NoError(t, Immediate.Dispatch(func() { ran = true }))
	assert.True(t, ran)
	assert.NoError(t, Immediate.Dispatch(nil))
}

type panicRecorder struct {
	fn func(*errors.PanicError)
}

func (p *panicRecorder) HandleError(*errors.Error) {}

func (p *panicRecorder) HandlePanic(err *errors.PanicError) { p.fn(err) }
