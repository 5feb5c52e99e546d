package linq

import (
	"slices"

	"github.com/go-softwarelab/common/pkg/seq"

	apperrors "github.com/kbukum/linqkit/errors"
)

// --- Filtering ---

// Where keeps the elements for which pred holds. A nil pred keeps all.
func (s *Sequence[T]) Where(pred func(T) bool) *Sequence[T] {
	if pred == nil {
		return s.Copy()
	}
	return FromSeq(seq.Filter(s.Values(), pred))
}

// WhereIn keeps the elements that appear in candidates.
func WhereIn[T comparable](s *Sequence[T], candidates []T) *Sequence[T] {
	return WhereInBy(s, candidates, Identity[T])
}

// WhereInBy keeps the elements whose key appears in candidates.
func WhereInBy[T any, K comparable](s *Sequence[T], candidates []K, key func(T) K) *Sequence[T] {
	set := make(map[K]struct{}, len(candidates))
	for _, c := range candidates {
		set[c] = struct{}{}
	}
	return s.Where(func(v T) bool {
		_, ok := set[key(v)]
		return ok
	})
}

// --- Projection ---

// Select maps each element through project.
func Select[T, U any](s *Sequence[T], project func(T) U) *Sequence[U] {
	return FromSeq(seq.Map(s.Values(), project))
}

// SelectIndexed maps each element through project, which also receives the
// element's index.
func SelectIndexed[T, U any](s *Sequence[T], project func(int, T) U) *Sequence[U] {
	out := make([]U, len(s.items))
	for i, v := range s.items {
		out[i] = project(i, v)
	}
	return wrap(out)
}

// SelectMany maps each element to a slice and flattens the results one level.
func SelectMany[T, U any](s *Sequence[T], project func(T) []U) *Sequence[U] {
	var out []U
	for _, v := range s.items {
		out = append(out, project(v)...)
	}
	return wrap(out)
}

// SelectManyIndexed flattens a sequence of slices and maps every inner
// element through project together with its position in the flattened
// output.
func SelectManyIndexed[T, U any](s *Sequence[[]T], project func(int, T) U) *Sequence[U] {
	return SelectIndexed(Flatten(s), project)
}

// Flatten concatenates a sequence of slices.
func Flatten[T any](s *Sequence[[]T]) *Sequence[T] {
	return SelectMany(s, Identity[[]T])
}

// --- Slicing ---

// Take returns the first min(n, Len()) elements.
func (s *Sequence[T]) Take(n int) *Sequence[T] {
	return FromSeq(seq.Take(s.Values(), n))
}

// TakeWhile returns the longest prefix whose elements satisfy pred.
// A nil pred returns the whole sequence.
func (s *Sequence[T]) TakeWhile(pred func(T) bool) *Sequence[T] {
	if pred == nil {
		return s.Copy()
	}
	return FromSeq(seq.TakeWhile(s.Values(), pred))
}

// TakeWhileIndexed is TakeWhile with the element index passed to pred.
func (s *Sequence[T]) TakeWhileIndexed(pred func(int, T) bool) *Sequence[T] {
	if pred == nil {
		return s.Copy()
	}
	n := 0
	for n < len(s.items) && pred(n, s.items[n]) {
		n++
	}
	return From(s.items[:n])
}

// Skip drops the first n elements. Unlike Take it does not clamp: it fails
// with ErrOutOfRange when n is negative or greater than Len().
func (s *Sequence[T]) Skip(n int) (*Sequence[T], error) {
	if n < 0 || n > len(s.items) {
		return nil, apperrors.OutOfRange("Skip", n, len(s.items))
	}
	return FromSeq(seq.Skip(s.Values(), n)), nil
}

// SkipWhile drops the longest prefix whose elements satisfy pred.
// A nil pred drops nothing.
func (s *Sequence[T]) SkipWhile(pred func(T) bool) *Sequence[T] {
	if pred == nil {
		return s.Copy()
	}
	return FromSeq(seq.SkipWhile(s.Values(), pred))
}

// SkipWhileIndexed is SkipWhile with the element index passed to pred.
func (s *Sequence[T]) SkipWhileIndexed(pred func(int, T) bool) *Sequence[T] {
	if pred == nil {
		return s.Copy()
	}
	n := 0
	for n < len(s.items) && pred(n, s.items[n]) {
		n++
	}
	return wrap(slices.Clone(s.items[n:]))
}
