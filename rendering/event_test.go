// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendering

import (
	"sync"
	"sync/atomic"
	"testing"
)

// TestEventSignalOnce tests that only the first signal wins.
func TestEventSignalOnce(t *testing.T) {
	ev := NewEvent()
	var calls atomic.Int32
	ev.OnFinish(func(success bool) {
		calls.Add(1)
		if !success {
			t.Error("listener got success=false, want true")
		}
	})

	ev.Signal(true)
	ev.Signal(false)
	ev.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("listener ran %d times, want 1", got)
	}
	if !ev.Finished() || !ev.Success() {
		t.Errorf("Finished=%v Success=%v, want true/true", ev.Finished(), ev.Success())
	}
}

// TestEventCancel tests cancellation semantics.
func TestEventCancel(t *testing.T) {
	ev := NewEvent()
	ev.Cancel()
	ev.Wait()

	if !ev.Cancelled() {
		t.Error("Cancelled = false after Cancel")
	}
	if ev.Success() {
		t.Error("Success = true after Cancel")
	}

	// A late signal from a worker that already ran is dropped.
	ev.Signal(true)
	if ev.Success() {
		t.Error("late Signal overrode cancellation")
	}
}

// TestEventOnFinishAfterSignal tests immediate listener invocation.
func TestEventOnFinishAfterSignal(t *testing.T) {
	ev := NewEvent()
	ev.Signal(true)

	ran := false
	ev.OnFinish(func(success bool) {
		ran = true
		if !success {
			t.Error("late listener got success=false")
		}
	})
	if !ran {
		t.Error("listener on finished event did not run immediately")
	}
}

// TestEventListenersBeforeWait ensures Wait observes listener effects.
func TestEventListenersBeforeWait(t *testing.T) {
	ev := NewEvent()
	done := make(chan struct{})
	var value atomic.Int32
	ev.OnFinish(func(bool) { value.Store(42) })

	go func() {
		ev.Wait()
		if got := value.Load(); got != 42 {
			t.Errorf("waiter observed %d, want 42", got)
		}
		close(done)
	}()

	ev.Signal(true)
	<-done
}

// TestEventConcurrentSignal hammers Signal from several goroutines.
func TestEventConcurrentSignal(t *testing.T) {
	ev := NewEvent()
	var calls atomic.Int32
	ev.OnFinish(func(bool) { calls.Add(1) })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(success bool) {
			defer wg.Done()
			ev.Signal(success)
		}(i%2 == 0)
	}
	wg.Wait()
	ev.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("listener ran %d times, want 1", got)
	}
}
