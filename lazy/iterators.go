package lazy

import "slices"

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next() (T, bool) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false
	}
	val := it.items[it.index]
	it.index++
	return val, true
}

func (it *sliceIter[T]) Close() error {
	it.index = len(it.items)
	return nil
}

type funcIter[T any] struct {
	next func() (T, bool)
	done bool
}

func (it *funcIter[T]) Next() (T, bool) {
	if !it.done {
		if v, ok := it.next(); ok {
			return v, true
		}
		it.done = true
	}
	var zero T
	return zero, false
}

func (it *funcIter[T]) Close() error {
	it.done = true
	return nil
}

// seqIter adapts iter.Pull; stop is called once the source is exhausted.
type seqIter[T any] struct {
	next func() (T, bool)
	stop func()
}

func (it *seqIter[T]) Next() (T, bool) {
	v, ok := it.next()
	if !ok {
		it.stop()
	}
	return v, ok
}

func (it *seqIter[T]) Close() error {
	it.stop()
	return nil
}

type filterIter[T any] struct {
	source Iterator[T]
	fn     func(T) bool
}

func (it *filterIter[T]) Next() (T, bool) {
	for {
		val, ok := it.source.Next()
		if !ok || it.fn(val) {
			return val, ok
		}
	}
}

func (it *filterIter[T]) Close() error { return it.source.Close() }

type mapIter[I, O any] struct {
	source Iterator[I]
	fn     func(I) O
}

func (it *mapIter[I, O]) Next() (O, bool) {
	val, ok := it.source.Next()
	if !ok {
		var zero O
		return zero, false
	}
	return it.fn(val), true
}

func (it *mapIter[I, O]) Close() error { return it.source.Close() }

// takeIter stops pulling from its source once n values were produced.
type takeIter[T any] struct {
	source    Iterator[T]
	remaining int
}

func (it *takeIter[T]) Next() (T, bool) {
	if it.remaining <= 0 {
		var zero T
		return zero, false
	}
	val, ok := it.source.Next()
	if ok {
		it.remaining--
	}
	return val, ok
}

func (it *takeIter[T]) Close() error { return it.source.Close() }

type distinctIter[T any, K comparable] struct {
	source Iterator[T]
	key    func(T) K
	seen   map[K]struct{}
}

func (it *distinctIter[T, K]) Next() (T, bool) {
	for {
		val, ok := it.source.Next()
		if !ok {
			return val, false
		}
		k := it.key(val)
		if _, dup := it.seen[k]; !dup {
			it.seen[k] = struct{}{}
			return val, true
		}
	}
}

func (it *distinctIter[T, K]) Close() error { return it.source.Close() }

// sortIter drains and stably sorts its source on the first pull.
type sortIter[T any] struct {
	source  Iterator[T]
	compare func(a, b T) int
	sorted  *sliceIter[T]
}

func (it *sortIter[T]) Next() (T, bool) {
	if it.sorted == nil {
		var buf []T
		for {
			v, ok := it.source.Next()
			if !ok {
				break
			}
			buf = append(buf, v)
		}
		slices.SortStableFunc(buf, it.compare)
		it.sorted = &sliceIter[T]{items: buf}
	}
	return it.sorted.Next()
}

func (it *sortIter[T]) Close() error { return it.source.Close() }

type concatIter[T any] struct {
	iters []Iterator[T]
	index int
}

func (it *concatIter[T]) Next() (T, bool) {
	for it.index < len(it.iters) {
		if val, ok := it.iters[it.index].Next(); ok {
			return val, true
		}
		it.index++
	}
	var zero T
	return zero, false
}

func (it *concatIter[T]) Close() error {
	var firstErr error
	for _, iter := range it.iters {
		if err := iter.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
