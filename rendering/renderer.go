// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendering

import (
	"log/slog"

	"github.com/inkwell2d/inkwell"
)

// Renderer executes render task trees on a worker pool and signals their
// completion events. It is the task runner behind the tile cache: the
// scheduler hands it cloned trees bound to tile surfaces, and cancellation
// works through the events, never by reaching into a running task.
//
// All methods are safe for concurrent use.
type Renderer struct {
	pool *workerPool
}

// NewRenderer starts a renderer with the given number of workers.
// Non-positive counts default to GOMAXPROCS.
func NewRenderer(workers int) *Renderer {
	return &Renderer{pool: newWorkerPool(workers)}
}

// EnqueueTask submits a task tree for execution. The event is signalled
// exactly once: with the run's outcome, or unsuccessfully if the event is
// cancelled first. A cancelled event's task is skipped when a worker picks
// it up.
//
// deepClone asks the runner to clone the tree before running it, for callers
// that keep using the tree they submitted. The scheduler clones per tile
// itself and passes false.
func (r *Renderer) EnqueueTask(task *Task, ev *Event, deepClone bool) {
	if task == nil || ev == nil {
		if ev != nil {
			ev.Signal(false)
		}
		return
	}
	if deepClone {
		task = task.CloneRecursive()
	}
	r.pool.submit(func() {
		if ev.Cancelled() {
			return
		}
		err := task.Run()
		if err != nil {
			inkwell.Logger().Warn("render task failed",
				slog.String("task", task.Desc),
				slog.Any("error", err))
		}
		ev.Signal(err == nil)
	})
}

// Cancel cancels the tasks behind the given events. Best-effort: tasks
// already running still finish, and their late signals are dropped by the
// events.
func (r *Renderer) Cancel(events []*Event) {
	for _, ev := range events {
		if ev != nil {
			ev.Cancel()
		}
	}
	if len(events) > 0 {
		inkwell.Logger().Debug("render tasks cancelled",
			slog.Int("count", len(events)))
	}
}

// Close finishes queued work and stops the workers.
func (r *Renderer) Close() {
	r.pool.close()
}

// Workers returns the number of pool workers.
func (r *Renderer) Workers() int {
	return r.pool.workers
}
