// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendering

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// workerPool runs submitted closures on a fixed set of goroutines.
//
// Each worker pulls from its own queue first and steals from the others when
// idle, which keeps the pool balanced when tile tasks vary widely in cost.
type workerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// newWorkerPool starts a pool with the given number of workers.
// Non-positive counts default to GOMAXPROCS.
func newWorkerPool(workers int) *workerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &workerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}
	return p
}

func (p *workerPool) worker(id int) {
	defer p.wg.Done()
	myQueue := p.queues[id]

	for {
		select {
		case <-p.done:
			p.drain(myQueue)
			return
		case work := <-myQueue:
			if work != nil {
				work()
			}
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			// Nothing to steal; block on the own queue.
			select {
			case <-p.done:
				p.drain(myQueue)
				return
			case work := <-myQueue:
				if work != nil {
					work()
				}
			}
		}
	}
}

// drain executes everything left in a queue before the worker exits, so
// pending events are still signalled during shutdown.
func (p *workerPool) drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			if work != nil {
				work()
			}
		default:
			return
		}
	}
}

// steal takes one work item from another worker's queue, or returns nil.
func (p *workerPool) steal(myID int) func() {
	for i := 0; i < p.workers; i++ {
		if i == myID {
			continue
		}
		select {
		case work := <-p.queues[i]:
			return work
		default:
		}
	}
	return nil
}

// submit queues one work item on the shortest queue.
// A closed pool discards the work.
func (p *workerPool) submit(fn func()) {
	if fn == nil || !p.running.Load() {
		return
	}
	minIdx := 0
	minLen := len(p.queues[0])
	for i := 1; i < p.workers; i++ {
		if l := len(p.queues[i]); l < minLen {
			minLen, minIdx = l, i
		}
	}
	select {
	case p.queues[minIdx] <- fn:
	case <-p.done:
	}
}

// close stops accepting work, finishes everything queued, and joins the
// workers. Safe to call more than once.
func (p *workerPool) close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}
