// Package broadcast aligns independently sized parameter sequences into one
// per-item schedule.
//
// The schedule length is the length of the longest sequence. Shorter
// sequences are extended on the right by repeating their last element; they
// never wrap around to the start. Any empty sequence means there is no work.
package broadcast

// Cloner is implemented by values that must not be shared between padded
// slots, such as pixel buffers.
type Cloner[T any] interface {
	Clone() T
}

// Length returns the schedule length for sequences of the given lengths:
// the maximum, or 0 if any sequence is empty or none is given.
func Length(lens ...int) int {
	n := 0
	for _, l := range lens {
		if l == 0 {
			return 0
		}
		n = max(n, l)
	}
	return n
}

// Pick returns the element of s used by schedule slot i.
// Slots past the end of s reuse its last element; if that element implements
// Cloner the caller receives a private copy. An empty s yields the zero value.
func Pick[T any](s []T, i int) T {
	if len(s) == 0 {
		var zero T
		return zero
	}
	if i < len(s) {
		return s[i]
	}
	last := s[len(s)-1]
	if c, ok := any(last).(Cloner[T]); ok {
		return c.Clone()
	}
	return last
}

// Default substitutes a one-element sequence holding def for a nil s.
// A non-nil empty s is returned as is so it still signals "no work".
func Default[T any](s []T, def T) []T {
	if s == nil {
		return []T{def}
	}
	return s
}

// Zip broadcasts same-typed sequences into tuples, one per schedule slot.
func Zip[T any](seqs ...[]T) [][]T {
	lens := make([]int, len(seqs))
	for i, s := range seqs {
		lens[i] = len(s)
	}
	n := Length(lens...)

	out := make([][]T, n)
	for i := range n {
		tuple := make([]T, len(seqs))
		for k, s := range seqs {
			tuple[k] = Pick(s, i)
		}
		out[i] = tuple
	}
	return out
}

// Gather flattens an open-ended run of same-typed inputs into one ordered
// list. Nil runs are skipped; nil elements are kept so positions stay stable.
func Gather[T any](runs ...[]T) []T {
	total := 0
	for _, r := range runs {
		total += len(r)
	}
	out := make([]T, 0, total)
	for _, r := range runs {
		out = append(out, r...)
	}
	return out
}
