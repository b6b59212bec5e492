// Package parallel runs independent draw jobs on a fixed set of goroutines.
package parallel

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines for rendering draw items whose target
// regions do not overlap.
//
// Work is handed out over a single shared queue; ExecuteAll blocks until
// every submitted job has finished, so a caller can treat a batch as one
// synchronous step.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queue   chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		queue:   make(chan func(), workers*4),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			p.drain()
			return
		case job := <-p.queue:
			job()
		}
	}
}

// drain runs jobs that were queued before Close.
func (p *WorkerPool) drain() {
	for {
		select {
		case job := <-p.queue:
			job()
		default:
			return
		}
	}
}

// ExecuteAll runs every job and waits for all of them to finish.
//
// If a job panics, the panic is recovered on the worker and re-raised in
// the caller after the whole batch has completed. If the pool is closed,
// jobs run on the calling goroutine.
func (p *WorkerPool) ExecuteAll(jobs []func()) {
	if len(jobs) == 0 {
		return
	}
	if len(jobs) == 1 || !p.running.Load() {
		for _, job := range jobs {
			job()
		}
		return
	}

	var (
		wg       sync.WaitGroup
		panicMu  sync.Mutex
		panicked any
	)
	wg.Add(len(jobs))

	for _, job := range jobs {
		wrapped := func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panicMu.Lock()
					if panicked == nil {
						panicked = r
					}
					panicMu.Unlock()
				}
			}()
			job()
		}

		select {
		case p.queue <- wrapped:
		case <-p.done:
			wrapped()
		}
	}

	wg.Wait()
	if panicked != nil {
		panic(fmt.Sprintf("parallel: job panicked: %v", panicked))
	}
}

// Close stops the workers after their current job. Close is safe to call
// multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still dispatches to workers.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
