package lazy

import "cmp"

// derive wraps an iterator pulling from s.
func derive[T any](it Iterator[T]) *Sequence[T] {
	return &Sequence[T]{source: it}
}

// Where keeps the values for which pred holds. A nil pred keeps all.
func (s *Sequence[T]) Where(pred func(T) bool) *Sequence[T] {
	if pred == nil {
		pred = func(T) bool { return true }
	}
	return derive[T](&filterIter[T]{source: s, fn: pred})
}

// Select maps each value through project.
func Select[T, U any](s *Sequence[T], project func(T) U) *Sequence[U] {
	return derive[U](&mapIter[T, U]{source: s, fn: project})
}

// Take yields at most n values. It never pulls past the n-th value, so the
// rest stays available on s.
func (s *Sequence[T]) Take(n int) *Sequence[T] {
	return derive[T](&takeIter[T]{source: s, remaining: n})
}

// Distinct yields each value the first time it is seen.
func Distinct[T comparable](s *Sequence[T]) *Sequence[T] {
	return DistinctBy(s, func(v T) T { return v })
}

// DistinctBy yields each value whose key has not been seen before.
func DistinctBy[T any, K comparable](s *Sequence[T], key func(T) K) *Sequence[T] {
	return derive[T](&distinctIter[T, K]{source: s, key: key, seen: make(map[K]struct{})})
}

// Sort orders the values naturally. Nothing is pulled until the result is.
func Sort[T cmp.Ordered](s *Sequence[T], descending bool) *Sequence[T] {
	return s.OrderByFunc(cmp.Compare[T], descending)
}

// OrderBy orders the values by key, keeping equal keys in input order.
func OrderBy[T any, K cmp.Ordered](s *Sequence[T], key func(T) K, descending bool) *Sequence[T] {
	return s.OrderByFunc(func(a, b T) int { return cmp.Compare(key(a), key(b)) }, descending)
}

// OrderByFunc orders the values by compare, keeping equal values in input
// order. The source is drained and sorted on the first pull.
func (s *Sequence[T]) OrderByFunc(compare func(a, b T) int, descending bool) *Sequence[T] {
	if descending {
		asc := compare
		compare = func(a, b T) int { return asc(b, a) }
	}
	return derive[T](&sortIter[T]{source: s, compare: compare})
}

// Concat yields the values of s followed by those of each of others.
func (s *Sequence[T]) Concat(others ...*Sequence[T]) *Sequence[T] {
	iters := make([]Iterator[T], 0, len(others)+1)
	iters = append(iters, s)
	for _, o := range others {
		iters = append(iters, o)
	}
	return derive[T](&concatIter[T]{iters: iters})
}
