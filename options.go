package compose

// DefaultMinSize is the canvas edge used when no operand defines a size.
const DefaultMinSize = 512

// Option configures an Engine during creation.
//
// Example:
//
//	e := compose.New(
//	    compose.WithWorkers(8),
//	    compose.WithObserver(compose.ObserverFunc(func(p compose.Progress) {
//	        fmt.Printf("%s %d/%d\n", p.Op, p.Done, p.Total)
//	    })),
//	)
type Option func(*engineOptions)

type engineOptions struct {
	workers  int
	observer Observer
	minSize  int
	seed     uint64
}

func defaultOptions() engineOptions {
	return engineOptions{
		workers: 0, // GOMAXPROCS
		minSize: DefaultMinSize,
	}
}

// WithWorkers sets the number of goroutines that process batch items.
// Zero or a negative value uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *engineOptions) {
		o.workers = n
	}
}

// WithObserver installs a progress observer, called once per finished item.
func WithObserver(obs Observer) Option {
	return func(o *engineOptions) {
		o.observer = obs
	}
}

// WithMinSize sets the canvas edge used when an operation has no operand
// and no explicit size. Values below 1 are ignored.
func WithMinSize(n int) Option {
	return func(o *engineOptions) {
		if n > 0 {
			o.minSize = n
		}
	}
}

// WithSeed seeds the noise source of Stereogram. Item i of a batch draws
// from a stream derived from the seed and i, so results do not depend on
// scheduling.
func WithSeed(seed uint64) Option {
	return func(o *engineOptions) {
		o.seed = seed
	}
}
