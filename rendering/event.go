// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendering

import "sync"

// Event is the one-shot completion signal of a submitted task tree.
//
// An event is signalled exactly once, either by the worker that ran the task
// or by Cancel. Listeners registered with OnFinish run exactly once, from
// whichever goroutine signals first.
type Event struct {
	mu        sync.Mutex
	done      chan struct{}
	finished  bool
	success   bool
	cancelled bool
	listeners []func(success bool)
}

// NewEvent creates an unsignalled event.
func NewEvent() *Event {
	return &Event{done: make(chan struct{})}
}

// Signal marks the event finished with the given outcome.
// Calls after the first are no-ops.
func (e *Event) Signal(success bool) {
	e.mu.Lock()
	if e.finished {
		e.mu.Unlock()
		return
	}
	e.finished = true
	e.success = success
	listeners := e.listeners
	e.listeners = nil
	e.mu.Unlock()

	// Listeners run before done closes, so a waiter observing completion
	// also observes everything the listeners did.
	for _, fn := range listeners {
		fn(success)
	}
	close(e.done)
}

// Cancel signals the event unsuccessfully and marks it cancelled so workers
// skip its task. Cancellation is best-effort: a task already running still
// completes, and its late Signal is dropped.
func (e *Event) Cancel() {
	e.mu.Lock()
	e.cancelled = true
	e.mu.Unlock()
	e.Signal(false)
}

// Wait blocks until the event is signalled.
func (e *Event) Wait() {
	<-e.done
}

// Done returns a channel closed when the event is signalled.
func (e *Event) Done() <-chan struct{} {
	return e.done
}

// Finished reports whether the event has been signalled.
func (e *Event) Finished() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.finished
}

// Cancelled reports whether Cancel has been called.
func (e *Event) Cancelled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cancelled
}

// Success reports the outcome. Only meaningful once Finished.
func (e *Event) Success() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.finished && e.success
}

// OnFinish registers fn to run when the event is signalled, with the
// outcome. If the event is already finished, fn runs immediately on the
// calling goroutine.
func (e *Event) OnFinish(fn func(success bool)) {
	e.mu.Lock()
	if !e.finished {
		e.listeners = append(e.listeners, fn)
		e.mu.Unlock()
		return
	}
	success := e.success
	e.mu.Unlock()
	fn(success)
}
