package linq

import (
	"cmp"
	"slices"
)

// Reverse reverses the sequence in place and returns the receiver.
// It is the only operator that mutates its receiver; use Copy().Reverse()
// to keep the original.
func (s *Sequence[T]) Reverse() *Sequence[T] {
	slices.Reverse(s.items)
	return s
}

// Sort returns the elements in their natural order.
// The sort is stable.
func Sort[T cmp.Ordered](s *Sequence[T], descending bool) *Sequence[T] {
	return s.OrderByFunc(cmp.Compare[T], descending)
}

// OrderBy returns the elements ordered by key. Elements with equal keys keep
// their relative input order.
func OrderBy[T any, K cmp.Ordered](s *Sequence[T], key func(T) K, descending bool) *Sequence[T] {
	return s.OrderByFunc(func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}, descending)
}

// OrderByFunc returns the elements ordered by compare, which follows the
// slices.SortFunc contract. Composite keys are expressed with cmp.Or:
//
//	s.OrderByFunc(func(a, b P) int {
//		return cmp.Or(cmp.Compare(a.X, b.X), cmp.Compare(a.Y, b.Y))
//	}, false)
func (s *Sequence[T]) OrderByFunc(compare func(a, b T) int, descending bool) *Sequence[T] {
	out := slices.Clone(s.items)
	if descending {
		slices.SortStableFunc(out, func(a, b T) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(out, compare)
	}
	return wrap(out)
}
