package travis

import (
	"sync"
)

// Executor schedules completion callbacks onto a caller-chosen delivery
// context. The transport layer invokes each request's callback exactly once
// through the executor supplied with the request, never inline.
type Executor interface {
	Execute(fn func())
}

// GoExecutor runs each callback on its own goroutine.
type GoExecutor struct{}

// Execute implements Executor.
func (GoExecutor) Execute(fn func()) {
	go fn()
}

// SerialExecutor delivers callbacks one at a time, in submission order, on a
// single background goroutine. Close stops the executor; callbacks already
// submitted are still delivered.
type SerialExecutor struct {
	queue chan func()
	done  chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewSerialExecutor creates a running serial executor.
func NewSerialExecutor() *SerialExecutor {
	e := &SerialExecutor{
		queue: make(chan func(), 64),
		done:  make(chan struct{}),
	}

	go func() {
		defer close(e.done)

		for fn := range e.queue {
			fn()
		}
	}()

	return e
}

// Execute implements Executor. Callbacks submitted after Close are dropped.
func (e *SerialExecutor) Execute(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	e.queue <- fn
}

// Close stops the executor after draining already-submitted callbacks and
// waits for the last one to finish.
func (e *SerialExecutor) Close() {
	e.mu.Lock()
	if !e.closed {
		e.closed = true
		close(e.queue)
	}
	e.mu.Unlock()

	<-e.done
}
