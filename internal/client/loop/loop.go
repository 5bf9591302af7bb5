// Package loop provides a single-goroutine event loop with asynchronous
// tasks whose continuations run back on the loop.
//
// Everything that touches UI state is posted to the loop and therefore runs
// serially on one goroutine. Blocking work (network I/O) is started with
// Await: the work function runs on its own goroutine, and its result is
// handed to a continuation that is queued on the loop once the work returns.
// The loop never waits for a task, so a slow request only delays its own
// continuation.
package loop

import (
	"context"
	"sync"
)

// Loop is an unbounded FIFO of callbacks executed by Run or Drain.
// Run and Drain must not be called concurrently.
type Loop struct {
	mu          sync.Mutex
	queue       []func()
	outstanding int
	wake        chan struct{}
}

func New() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post queues fn to run on the loop. Safe to call from any goroutine,
// including from a callback already running on the loop.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
	l.signal()
}

// Await runs work on a new goroutine and posts then(result, err) to l when
// it returns. The task counts as outstanding until then has been queued.
func Await[T any](l *Loop, ctx context.Context, work func(context.Context) (T, error), then func(T, error)) {
	l.mu.Lock()
	l.outstanding++
	l.mu.Unlock()

	go func() {
		v, err := work(ctx)

		l.mu.Lock()
		l.queue = append(l.queue, func() { then(v, err) })
		l.outstanding--
		l.mu.Unlock()
		l.signal()
	}()
}

// Outstanding reports how many Await tasks have not delivered their result yet.
func (l *Loop) Outstanding() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.outstanding
}

// Run executes queued callbacks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if l.runQueued() {
			continue
		}
		select {
		case <-l.wake:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Drain executes callbacks until the queue is empty and no task is
// outstanding, or ctx is done.
func (l *Loop) Drain(ctx context.Context) error {
	for {
		if l.runQueued() {
			continue
		}
		if l.Outstanding() == 0 && l.queueLen() == 0 {
			return nil
		}
		select {
		case <-l.wake:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// runQueued executes the callbacks queued so far and reports whether it ran any.
func (l *Loop) runQueued() bool {
	l.mu.Lock()
	batch := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch) > 0
}

func (l *Loop) queueLen() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}
