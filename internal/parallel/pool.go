// Package parallel runs independent batch items on a fixed set of goroutines.
package parallel

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrPanic wraps a panic raised by a batch item.
var ErrPanic = errors.New("parallel: item panicked")

// WorkerPool is a pool of goroutines for batch items.
//
// Items are dealt round-robin to per-worker queues. A worker that runs out of
// items steals from the other queues, which keeps the pool busy when some
// items are much larger than others.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup

	// mu orders dispatch against Close, so no item is queued after the
	// workers have drained.
	mu      sync.RWMutex
	running atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	depth := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), depth)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		if work := p.next(id); work != nil {
			work()
			continue
		}
		select {
		case work := <-own:
			work()
		case <-p.done:
			for {
				select {
				case work := <-own:
					work()
				default:
					return
				}
			}
		}
	}
}

// next returns queued work for worker id without blocking: its own queue
// first, then any other.
func (p *WorkerPool) next(id int) func() {
	for k := range p.workers {
		select {
		case work := <-p.queues[(id+k)%p.workers]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll runs every function and waits for all of them to return.
// On a closed pool the functions run sequentially on the calling goroutine.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		for _, fn := range work {
			fn()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(work))
	for i, fn := range work {
		p.queues[i%p.workers] <- func() {
			defer wg.Done()
			fn()
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// Run calls fn(i) for every i in [0, n) and returns the per-item errors,
// indexed like the items. A panicking item is reported as an error wrapping
// ErrPanic; the other items still run.
func (p *WorkerPool) Run(n int, fn func(i int) error) []error {
	if n <= 0 {
		return nil
	}
	errs := make([]error, n)
	work := make([]func(), n)
	for i := range work {
		work[i] = func() {
			defer func() {
				if r := recover(); r != nil {
					errs[i] = fmt.Errorf("%w: %v", ErrPanic, r)
				}
			}()
			errs[i] = fn(i)
		}
	}
	p.ExecuteAll(work)
	return errs
}

// Close stops the workers after the queued work has run.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still dispatches to its workers.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
