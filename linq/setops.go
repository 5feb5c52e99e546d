package linq

import (
	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/go-softwarelab/common/pkg/types"
)

// Concat appends the elements of others after the receiver's.
// Neither the receiver nor others are modified.
func (s *Sequence[T]) Concat(others ...*Sequence[T]) *Sequence[T] {
	parts := make([][]T, 0, len(others)+1)
	parts = append(parts, s.items)
	for _, o := range others {
		if o != nil {
			parts = append(parts, o.items)
		}
	}
	values := make([]T, 0, totalLen(parts))
	for _, p := range parts {
		values = append(values, p...)
	}
	return wrap(values)
}

func totalLen[T any](parts [][]T) int {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	return n
}

// DefaultIfEmpty returns [def] if the sequence is empty, otherwise a copy.
func (s *Sequence[T]) DefaultIfEmpty(def T) *Sequence[T] {
	if len(s.items) == 0 {
		return Of(def)
	}
	return s.Copy()
}

// Distinct removes duplicates, keeping the first occurrence of each element.
func Distinct[T comparable](s *Sequence[T]) *Sequence[T] {
	return FromSeq(seq.Uniq(s.Values()))
}

// DistinctBy removes elements whose key was already seen, keeping the first
// occurrence of each key.
func DistinctBy[T any, K comparable](s *Sequence[T], key func(T) K) *Sequence[T] {
	return FromSeq(seq.UniqBy(s.Values(), key))
}

// Except keeps the elements of s that do not occur in other.
// Duplicates in s are preserved.
func Except[T comparable](s, other *Sequence[T]) *Sequence[T] {
	return ExceptBy(s, other, Identity[T])
}

// ExceptBy keeps the elements of s whose key is not the key of any element
// of other.
func ExceptBy[T any, K comparable](s, other *Sequence[T], key func(T) K) *Sequence[T] {
	excluded := keySet(other, key)
	return s.Where(func(v T) bool {
		_, found := excluded[key(v)]
		return !found
	})
}

// Intersect keeps the distinct elements of s that also occur in other.
func Intersect[T comparable](s, other *Sequence[T]) *Sequence[T] {
	return IntersectBy(s, other, Identity[T])
}

// IntersectBy keeps the elements of s whose key is the key of some element
// of other, de-duplicated by key.
func IntersectBy[T any, K comparable](s, other *Sequence[T], key func(T) K) *Sequence[T] {
	included := keySet(other, key)
	matched := seq.Filter(s.Values(), func(v T) bool {
		_, found := included[key(v)]
		return found
	})
	return FromSeq(seq.UniqBy(matched, key))
}

// Union returns the distinct elements of s followed by the distinct
// elements of other not already present.
func Union[T comparable](s, other *Sequence[T]) *Sequence[T] {
	return UnionBy(s, other, Identity[T])
}

// UnionBy is Union with distinctness decided by key.
func UnionBy[T any, K comparable](s, other *Sequence[T], key func(T) K) *Sequence[T] {
	return FromSeq(seq.UniqBy(seq.Concat(s.Values(), other.Values()), key))
}

// Zip pairs elements at the same index, up to the shorter length.
func Zip[T, U any](s *Sequence[T], other *Sequence[U]) *Sequence[types.Pair[T, U]] {
	return ZipWith(s, other, func(a T, b U) types.Pair[T, U] {
		return types.Pair[T, U]{Left: a, Right: b}
	})
}

// ZipWith combines elements at the same index, up to the shorter length.
func ZipWith[T, U, R any](s *Sequence[T], other *Sequence[U], combine func(T, U) R) *Sequence[R] {
	n := min(len(s.items), len(other.items))
	out := make([]R, n)
	for i := range n {
		out[i] = combine(s.items[i], other.items[i])
	}
	return wrap(out)
}

func keySet[T any, K comparable](s *Sequence[T], key func(T) K) map[K]struct{} {
	set := make(map[K]struct{}, len(s.items))
	for _, v := range s.items {
		set[key(v)] = struct{}{}
	}
	return set
}
