// Package parallel provides a worker pool for parallel scanline rendering.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines for parallel rendering.
//
// The pool distributes work items across multiple workers, each with their own
// queue. Workers can steal work from other workers when their own queue is empty.
// This helps balance load when some row bands are slower than others (the
// uncovered-pixel test can make band costs uneven).
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// workQueues holds per-worker work queues.
	// Each worker primarily pulls from its own queue but can steal from others.
	workQueues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Buffer size: 2-4x workers helps hide latency
	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}

	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]

	for {
		select {
		case <-p.done:
			// Drain remaining work before exiting
			p.drainQueue(myQueue)
			return

		case work := <-myQueue:
			if work != nil {
				work()
			}

		default:
			// Try to steal work from another worker
			if stolen := p.steal(id); stolen != nil {
				stolen()
			} else {
				// No work available anywhere, block on own queue
				select {
				case <-p.done:
					p.drainQueue(myQueue)
					return
				case work := <-myQueue:
					if work != nil {
						work()
					}
				}
			}
		}
	}
}

// drainQueue executes all remaining work in a queue.
func (p *WorkerPool) drainQueue(queue chan func()) {
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

// steal attempts to take work from another worker's queue.
// Returns nil if no work is available.
func (p *WorkerPool) steal(myID int) func() {
	for i := range p.workers {
		if i == myID {
			continue
		}

		select {
		case work := <-p.workQueues[i]:
			return work
		default:
			// Queue is empty, try next
		}
	}
	return nil
}

// ExecuteAll distributes work across workers and waits for all to complete.
// This is the primary method for parallel processing.
// If the pool is closed, this is a no-op.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 || !p.running.Load() {
		return
	}

	var completionWG sync.WaitGroup
	completionWG.Add(len(work))

	for i, fn := range work {
		workerID := i % p.workers
		workFn := fn // Capture for closure

		wrappedWork := func() {
			defer completionWG.Done()
			workFn()
		}

		select {
		case p.workQueues[workerID] <- wrappedWork:
			// Successfully queued
		case <-p.done:
			// Pool is closing, skip remaining work
			completionWG.Done()
		}
	}

	completionWG.Wait()
}

// Close gracefully shuts down the pool.
// It stops accepting new work, waits for all queued work to complete,
// and then stops all workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		// Already closed
		return
	}

	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
