package platform

import (
	"context"
	"sync"

	"github.com/go-drift/safearea/pkg/errors"
)

// Dispatcher schedules callbacks on the UI thread. Dispatch returns an
// error when the callback cannot be scheduled; a nil return means the
// callback will run exactly once.
type Dispatcher interface {
	Dispatch(callback func()) error
}

// DispatchFunc adapts a function to Dispatcher.
type DispatchFunc func(callback func()) error

// Dispatch calls f(callback).
func (f DispatchFunc) Dispatch(callback func()) error {
	return f(callback)
}

// Immediate runs callbacks inline on the calling goroutine. Useful for
// tests and hosts whose caller already is the UI thread.
var Immediate Dispatcher = DispatchFunc(func(callback func()) error {
	if callback != nil {
		callback()
	}
	return nil
})

// DispatchSync schedules callback on d and waits until it has run.
// If ctx ends first, ctx.Err() is returned; the callback may still run later.
func DispatchSync(ctx context.Context, d Dispatcher, callback func()) error {
	done := make(chan struct{})
	if err := d.Dispatch(func() {
		defer close(done)
		callback()
	}); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Looper is a serial task queue drained by a single goroutine, standing in
// for a platform main thread. Callbacks run in dispatch order.
type Looper struct {
	mu     sync.Mutex
	queue  []func()
	closed bool
	wake   chan struct{}
	done   chan struct{}
}

// NewLooper creates a looper. Call Run to start draining it.
func NewLooper() *Looper {
	return &Looper{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Dispatch enqueues callback. It returns ErrClosed once the looper has
// been closed. A nil callback is ignored.
func (l *Looper) Dispatch(callback func()) error {
	if callback == nil {
		return nil
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	l.queue = append(l.queue, callback)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return nil
}

// Run drains the queue until Close is called or ctx ends. Callbacks that
// were accepted before shutdown still run. Run returns nil after Close and
// ctx.Err() after cancellation.
func (l *Looper) Run(ctx context.Context) error {
	defer close(l.done)
	var exitErr error
	for {
		l.drain()

		l.mu.Lock()
		closed := l.closed
		l.mu.Unlock()
		if closed {
			l.drain()
			return exitErr
		}

		select {
		case <-l.wake:
		case <-ctx.Done():
			exitErr = ctx.Err()
			l.Close()
		}
	}
}

func (l *Looper) drain() {
	for {
		l.mu.Lock()
		tasks := l.queue
		l.queue = nil
		l.mu.Unlock()
		if len(tasks) == 0 {
			return
		}
		for _, task := range tasks {
			runTask(task)
		}
	}
}

func runTask(task func()) {
	defer errors.Recover("platform.Looper")
	task()
}

// Close stops accepting callbacks. Already queued callbacks still run.
func (l *Looper) Close() {
	l.mu.Lock()
	already := l.closed
	l.closed = true
	l.mu.Unlock()
	if !already {
		select {
		case l.wake <- struct{}{}:
		default:
		}
	}
}

// Done is closed when Run has returned.
func (l *Looper) Done() <-chan struct{} {
	return l.done
}
