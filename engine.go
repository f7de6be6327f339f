package compose

import (
	"errors"
	"sync"

	"github.com/gogpu/gg-compose/internal/parallel"
)

// Progress describes one finished batch item.
type Progress struct {
	// Op names the operation, for example "transform".
	Op string

	// Index is the item's position in the schedule.
	Index int

	// Done counts the items of this call finished so far, Total is the
	// schedule length.
	Done, Total int

	// Err is the item's error, nil on success.
	Err error
}

// Observer receives progress notifications. Calls are serialized by the
// Engine, so implementations need no locking.
type Observer interface {
	Observe(Progress)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Progress)

// Observe calls f(p).
func (f ObserverFunc) Observe(p Progress) { f(p) }

// Engine runs composition operations on a pool of worker goroutines.
//
// An Engine holds no per-call state; it is safe to run operations from
// several goroutines at once.
type Engine struct {
	opts engineOptions
	pool *parallel.WorkerPool
	mu   sync.Mutex // serializes observer calls
}

// New creates an Engine. Call Close to stop its workers.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine{
		opts: o,
		pool: parallel.NewWorkerPool(o.workers),
	}
	Logger().Info("compose: engine started", "workers", e.pool.Workers(), "minSize", o.minSize)
	return e
}

// Close stops the worker pool. Operations called afterwards still complete,
// running on the caller's goroutine. Close is safe to call multiple times.
func (e *Engine) Close() {
	e.pool.Close()
}

// MinSize returns the fallback canvas edge.
func (e *Engine) MinSize() int {
	return e.opts.minSize
}

// run executes fn for each of n schedule slots and collects the results in
// order. Failed slots keep the zero value of T; their errors are joined.
func run[T any](e *Engine, op string, n int, fn func(i int) (T, error)) ([]T, error) {
	log := Logger()
	if n == 0 {
		log.Warn("compose: empty batch", "op", op)
		return []T{}, nil
	}

	out := make([]T, n)
	done := 0
	errs := e.pool.Run(n, func(i int) error {
		v, err := fn(i)
		if err != nil {
			err = &ItemError{Op: op, Index: i, Err: classify(err)}
		} else {
			out[i] = v
		}
		e.notify(op, i, n, &done, err)
		return err
	})

	var failed []error
	for i, err := range errs {
		if err == nil {
			continue
		}
		var ie *ItemError
		if !errors.As(err, &ie) {
			// panics are reported by the pool itself
			err = &ItemError{Op: op, Index: i, Err: err}
			e.notify(op, i, n, &done, err)
		}
		log.Warn("compose: item failed", "op", op, "index", i, "err", err)
		failed = append(failed, err)
	}
	return out, errors.Join(failed...)
}

func (e *Engine) notify(op string, i, n int, done *int, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	*done++
	Logger().Debug("compose: item done", "op", op, "index", i, "done", *done, "total", n)
	if e.opts.observer != nil {
		e.opts.observer.Observe(Progress{Op: op, Index: i, Done: *done, Total: n, Err: err})
	}
}
