package lazy

import (
	"iter"
	"slices"

	"github.com/kbukum/linqkit/linq"
)

// Iterator provides pull-based sequential access to a stream of values.
// A *Sequence is itself an Iterator, so sequences compose with custom sources.
type Iterator[T any] interface {
	// Next returns the next value, or (zero, false) when exhausted.
	Next() (T, bool)
	// Close releases any resources held by the iterator.
	Close() error
}

// State is the lifecycle state of a Sequence.
type State int

const (
	// Active means pulling is legal and may still produce values.
	Active State = iota
	// Exhausted is terminal: every further pull reports end of sequence.
	Exhausted
)

func (s State) String() string {
	if s == Exhausted {
		return "exhausted"
	}
	return "active"
}

// Sequence is a single-pass cursor over a source.
//
// Sequences derived from it (Where, Select, Take, ...) pull from the same
// cursor, so an element consumed through one is never produced again through
// another. Inspecting terminals (Count, First, Min, ...) work on a Snapshot
// and leave the cursor where it was. Terminals answerable from a prefix
// (First, Any, All, ElementAt, Single, Contains) pull only that prefix.
// ToSlice, Materialize, Values and Next
// consume it.
type Sequence[T any] struct {
	source Iterator[T]
	state  State
}

// --- Constructors ---

// FromIterator creates a sequence that pulls from it.
func FromIterator[T any](it Iterator[T]) *Sequence[T] {
	return &Sequence[T]{source: it}
}

// From creates a sequence over a copy of items.
func From[T any](items []T) *Sequence[T] {
	return FromIterator[T](&sliceIter[T]{items: slices.Clone(items)})
}

// Of creates a sequence over the given values.
func Of[T any](items ...T) *Sequence[T] {
	return From(items)
}

// FromSeq creates a sequence pulling from a push iterator.
// The iterator is stopped when it is exhausted or the sequence is closed.
func FromSeq[T any](values iter.Seq[T]) *Sequence[T] {
	next, stop := iter.Pull(values)
	return FromIterator[T](&seqIter[T]{next: next, stop: stop})
}

// FromFunc creates a sequence from a generator that reports false once it
// has no more values.
func FromFunc[T any](next func() (T, bool)) *Sequence[T] {
	return FromIterator[T](&funcIter[T]{next: next})
}

// Range creates the sequence start, start+1, ..., start+count-1 without
// allocating it.
func Range(start, count int) *Sequence[int] {
	i := 0
	return FromFunc(func() (int, bool) {
		if i >= count {
			return 0, false
		}
		i++
		return start + i - 1, true
	})
}

// --- Cursor ---

// Next pulls the next value. The first pull that finds no value moves the
// sequence to Exhausted; there is no way back to Active.
func (s *Sequence[T]) Next() (T, bool) {
	if s.state == Exhausted {
		var zero T
		return zero, false
	}
	v, ok := s.source.Next()
	if !ok {
		s.state = Exhausted
	}
	return v, ok
}

// Close moves the sequence to Exhausted and releases its source.
func (s *Sequence[T]) Close() error {
	s.state = Exhausted
	return s.source.Close()
}

// State returns the current lifecycle state.
func (s *Sequence[T]) State() State {
	return s.state
}

// Snapshot drains the remaining values, re-seats the receiver on a replay of
// them and returns an independent sequence over the same values. Neither
// sequence observes pulls made through the other.
func (s *Sequence[T]) Snapshot() *Sequence[T] {
	buf := s.remaining()
	if s.state == Active {
		s.source = &sliceIter[T]{items: buf}
	}
	return FromIterator[T](&sliceIter[T]{items: buf})
}

// snapshotUntil pulls values until stop reports true for the latest one or
// the source runs out, then re-seats the receiver on the pulled prefix
// followed by the rest of the source. The prefix is returned read-only.
func (s *Sequence[T]) snapshotUntil(stop func(T) bool) []T {
	if s.state == Exhausted {
		return nil
	}
	var buf []T
	drained := false
	for {
		v, ok := s.source.Next()
		if !ok {
			drained = true
			break
		}
		buf = append(buf, v)
		if stop(v) {
			break
		}
	}
	if drained {
		s.source = &sliceIter[T]{items: buf}
	} else {
		s.source = &concatIter[T]{iters: []Iterator[T]{&sliceIter[T]{items: buf}, s.source}}
	}
	return buf
}

// snapshotN is snapshotUntil bounded to the first n values.
func (s *Sequence[T]) snapshotN(n int) []T {
	if n <= 0 {
		return nil
	}
	pulled := 0
	return s.snapshotUntil(func(T) bool {
		pulled++
		return pulled == n
	})
}

// remaining pulls every value left in the source without changing state.
func (s *Sequence[T]) remaining() []T {
	if s.state == Exhausted {
		return nil
	}
	var buf []T
	for {
		v, ok := s.source.Next()
		if !ok {
			return buf
		}
		buf = append(buf, v)
	}
}

// peek returns the remaining values as an eager sequence without consuming
// the cursor.
func (s *Sequence[T]) peek() *linq.Sequence[T] {
	return s.Snapshot().Materialize()
}

// --- Consuming terminals ---

// Values returns an iterator that pulls from the cursor. Breaking out of the
// loop leaves the unpulled values in place.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// ToSlice pulls every remaining value, leaving the sequence Exhausted.
func (s *Sequence[T]) ToSlice() []T {
	var out []T
	for v := range s.Values() {
		out = append(out, v)
	}
	return out
}

// Materialize pulls every remaining value into an eager sequence.
func (s *Sequence[T]) Materialize() *linq.Sequence[T] {
	return linq.FromSeq(s.Values())
}

// String renders the remaining values as Sequence<e1, e2, ...> without
// consuming them.
func (s *Sequence[T]) String() string {
	return s.peek().String()
}
