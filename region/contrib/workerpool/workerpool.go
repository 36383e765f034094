// Copyright 2026 The go-region Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for sorting
// disjoint sub-regions in parallel.
//
// Recursive divide-and-conquer code cannot block waiting for a worker: every
// worker may itself be waiting on the sub-problems it handed out. TryGo
// therefore only succeeds when a worker is idle right now, and the caller
// runs the work inline otherwise.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	var wg sync.WaitGroup
//	wg.Add(1)
//	task := func() { defer wg.Done(); sortLeft() }
//	if !pool.TryGo(task) {
//	    task()
//	}
//	sortRight()
//	wg.Wait()
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int

	// workC is unbuffered: a send only completes when a worker is idle.
	workC chan func()

	mu     sync.RWMutex
	closed bool
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan func()),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for fn := range p.workC {
		fn()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. Work already handed to a worker
// completes. Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	close(p.workC)
}

// TryGo runs fn on an idle worker and reports true, or reports false without
// running fn when no worker is idle, the pool is closed, or p is nil.
// It never blocks.
func (p *Pool) TryGo(fn func()) bool {
	if p == nil {
		return false
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return false
	}

	select {
	case p.workC <- fn:
		return true
	default:
		return false
	}
}

// ParallelForAtomic executes fn for each index in [0, n) using atomic work
// stealing. This provides better load balancing when work per item varies.
// Blocks until all work completes.
//
// The calling goroutine takes part in the work, so ParallelForAtomic makes
// progress even when every worker is busy.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	var nextIdx atomic.Int64
	drain := func() {
		for {
			idx := int(nextIdx.Add(1)) - 1
			if idx >= n {
				return
			}
			fn(idx)
		}
	}

	helpers := 0
	if p != nil {
		helpers = min(p.numWorkers, n-1)
	}

	var wg sync.WaitGroup
	for range helpers {
		wg.Add(1)
		if !p.TryGo(func() { defer wg.Done(); drain() }) {
			wg.Done()
			break
		}
	}

	drain()
	wg.Wait()
}
